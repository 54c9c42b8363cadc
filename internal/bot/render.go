package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/redTeamHero/discord/internal/catalog"
)

const (
	embedColor  = 0x3498DB
	embedFooter = "Everyday Winners Tradeline Bot"
)

// bankSelectComponents builds the bank picker, capped at the platform's
// 25-option select menu limit.
func bankSelectComponents(banks []string) []discordgo.MessageComponent {
	if len(banks) > maxBankOptions {
		banks = banks[:maxBankOptions]
	}

	options := make([]discordgo.SelectMenuOption, 0, len(banks))
	for _, bank := range banks {
		options = append(options, discordgo.SelectMenuOption{
			Label: bank,
			Value: bank,
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    idBankSelect,
					Placeholder: "Pick a bank",
					Options:     options,
				},
			},
		},
	}
}

// filterComponents builds the three range selectors plus the apply row
func filterComponents(sess *Session) []discordgo.MessageComponent {
	ageOptions := []discordgo.SelectMenuOption{
		{Label: "Any age", Value: optAny, Default: sess.Age == catalog.AgeAny},
		{Label: "Before 2016", Value: optAgePre2016, Default: sess.Age == catalog.AgePre2016},
		{Label: "2016 - 2019", Value: optAge2016, Default: sess.Age == catalog.Age2016To2019},
		{Label: "2020 - 2022", Value: optAge2020, Default: sess.Age == catalog.Age2020To2022},
		{Label: "2023 - 2024", Value: optAge2023, Default: sess.Age == catalog.Age2023To2024},
		{Label: "2025", Value: optAge2025, Default: sess.Age == catalog.Age2025},
	}
	priceOptions := []discordgo.SelectMenuOption{
		{Label: "Any price", Value: optAny, Default: sess.Price == catalog.PriceAny},
		{Label: "Under $500", Value: optPriceUnder500, Default: sess.Price == catalog.PriceUnder500},
		{Label: "$500 - $1,000", Value: optPrice500, Default: sess.Price == catalog.Price500To1000},
		{Label: "$1,000 - $2,000", Value: optPrice1000, Default: sess.Price == catalog.Price1000To2000},
		{Label: "$2,000+", Value: optPrice2000, Default: sess.Price == catalog.Price2000Plus},
	}
	limitOptions := []discordgo.SelectMenuOption{
		{Label: "Any limit", Value: optAny, Default: sess.Limit == catalog.LimitAny},
		{Label: "$0 - $2,500", Value: optLimitLow, Default: sess.Limit == catalog.LimitUpTo2500},
		{Label: "$2,501 - $5,000", Value: optLimitMid, Default: sess.Limit == catalog.Limit2501To5000},
		{Label: "$5,001 - $10,000", Value: optLimitHigh, Default: sess.Limit == catalog.Limit5001To10000},
		{Label: "$10,001+", Value: optLimitTop, Default: sess.Limit == catalog.Limit10001Plus},
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{CustomID: idAgeSelect, Placeholder: "Account age", Options: ageOptions},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{CustomID: idPriceSelect, Placeholder: "Price range", Options: priceOptions},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{CustomID: idLimitSelect, Placeholder: "Credit limit", Options: limitOptions},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{CustomID: idApply, Label: "Show tradelines", Style: discordgo.PrimaryButton},
			discordgo.Button{CustomID: idBack, Label: "Back", Style: discordgo.SecondaryButton},
		}},
	}
}

// resultEmbeds renders the current page of records, one embed each,
// with its checkout link embedded. links is index-aligned with page.
func resultEmbeds(page []catalog.Record, links []string) []*discordgo.MessageEmbed {
	embeds := make([]*discordgo.MessageEmbed, 0, len(page))
	for i, rec := range page {
		embeds = append(embeds, &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("%s - $%s Limit", rec.Bank, formatLimit(rec.Limit)),
			Description: rec.Summary,
			Color:       embedColor,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Price", Value: "$" + rec.Price.StringFixed(2), Inline: true},
				{Name: "Checkout", Value: fmt.Sprintf("[Buy Now](%s)", links[i]), Inline: true},
			},
			Footer: &discordgo.MessageEmbedFooter{Text: embedFooter},
		})
	}
	return embeds
}

// resultComponents builds the pager navigation row
func resultComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{CustomID: idPrevPage, Label: "◀ Prev", Style: discordgo.SecondaryButton},
			discordgo.Button{CustomID: idBack, Label: "Banks", Style: discordgo.SecondaryButton},
			discordgo.Button{CustomID: idNextPage, Label: "Next ▶", Style: discordgo.SecondaryButton},
		}},
	}
}

// resultContent is the text line above the page embeds
func resultContent(sess *Session) string {
	return fmt.Sprintf("**%s**: %d match(es), page %d/%d",
		sess.Bank, len(sess.Results), sess.Page+1, sess.PageCount())
}

func formatLimit(limit int) string {
	s := fmt.Sprintf("%d", limit)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
