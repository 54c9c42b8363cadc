// Package bot adapts the catalog browse flow and alert feed onto Discord.
package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/redTeamHero/discord/internal/catalog"
	"github.com/redTeamHero/discord/internal/checkout"
	"github.com/redTeamHero/discord/logger"
	apperrors "github.com/redTeamHero/discord/pkg/errors"
)

const (
	commandName   = "tradelines"
	janitorPeriod = 30 * time.Second
	renderTimeout = 15 * time.Second
)

// Bot owns the Discord session, the browse state machine, and the
// alert output channel.
type Bot struct {
	discord   *discordgo.Session
	store     *catalog.Store
	checkout  *checkout.Generator
	sessions  *SessionStore
	channelID string
	log       *logger.Logger
}

// New creates a Bot; the Discord connection opens on Start
func New(token, channelID string, store *catalog.Store, gen *checkout.Generator) (*Bot, error) {
	discord, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, apperrors.NewConfiguration("invalid Discord token", err)
	}
	discord.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	b := &Bot{
		discord:   discord,
		store:     store,
		checkout:  gen,
		sessions:  NewSessionStore(),
		channelID: channelID,
		log:       logger.ForBot(),
	}
	discord.AddHandler(b.onReady)
	discord.AddHandler(b.onInteraction)
	return b, nil
}

// Start opens the gateway connection and runs the session janitor
// until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.discord.Open(); err != nil {
		return apperrors.NewPlatform("bot", "failed to open gateway connection", err)
	}

	if _, err := b.discord.ApplicationCommandCreate(b.discord.State.User.ID, "", &discordgo.ApplicationCommand{
		Name:        commandName,
		Description: "Browse tradelines by bank, age, price, and credit limit",
	}); err != nil {
		// Command registration failing leaves alerts still functional
		b.log.Error().Err(err).Msg("slash command registration failed")
	}

	go b.janitor(ctx)
	return nil
}

// Close shuts down the gateway connection
func (b *Bot) Close() error {
	return b.discord.Close()
}

// SendAlert posts one alert message to the configured channel.
// Satisfies the alerts.Sender interface.
func (b *Bot) SendAlert(title, summary, link string) error {
	msg := fmt.Sprintf("**%s**\n%s\n%s", title, summary, link)
	if _, err := b.discord.ChannelMessageSend(b.channelID, msg); err != nil {
		return apperrors.NewPlatform("bot", "channel send failed", err)
	}
	return nil
}

// janitor drops timed-out browse sessions
func (b *Bot) janitor(ctx context.Context) {
	ticker := time.NewTicker(janitorPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if purged := b.sessions.PurgeExpired(); purged > 0 {
				b.log.Debug().Int("purged", purged).Msg("expired sessions dropped")
			}
		}
	}
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info().
		Str("user", r.User.Username).
		Int("guilds", len(r.Guilds)).
		Msg("logged in")
}

// onInteraction dispatches slash commands and component interactions
func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name == commandName {
			b.handleCommand(i)
		}
	case discordgo.InteractionMessageComponent:
		data := i.MessageComponentData()
		event, ok := ParseEvent(data.CustomID, data.Values)
		if !ok {
			return
		}
		b.handleEvent(i, event)
	}
}

// handleCommand starts a browse session at bank selection
func (b *Bot) handleCommand(i *discordgo.InteractionCreate) {
	banks := b.store.Banks()
	if len(banks) == 0 {
		b.respondEphemeral(i, "The catalog is still loading, try again in a minute.")
		return
	}

	b.sessions.Start(interactionUserID(i))

	err := b.discord.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    "Select a bank:",
			Components: bankSelectComponents(banks),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		b.logPlatformError("command response failed", err)
	}
}

// handleEvent advances the state machine for one component interaction
func (b *Bot) handleEvent(i *discordgo.InteractionCreate, event Event) {
	userID := interactionUserID(i)
	sess, ok := b.sessions.Get(userID)
	if !ok {
		b.respondEphemeral(i, "Session expired. Run /"+commandName+" to start over.")
		return
	}

	switch event.Type {
	case EventPickBank:
		sess.Bank = event.Value
		sess.Age, sess.Price, sess.Limit = catalog.AgeAny, catalog.PriceAny, catalog.LimitAny
		sess.State = StateFilterSelect
		b.updateMessage(i, "Filter **"+sess.Bank+"** tradelines:", filterComponents(sess), nil)

	case EventSetAge:
		sess.Age = ageRangeFor(event.Value)
		b.acknowledge(i)

	case EventSetPrice:
		sess.Price = priceRangeFor(event.Value)
		b.acknowledge(i)

	case EventSetLimit:
		sess.Limit = limitRangeFor(event.Value)
		b.acknowledge(i)

	case EventApplyFilters:
		b.showResults(i, sess)

	case EventNextPage:
		if sess.State == StateResults {
			sess.NextPage()
			b.renderPage(i, sess)
		}

	case EventPrevPage:
		if sess.State == StateResults {
			sess.PrevPage()
			b.renderPage(i, sess)
		}

	case EventBack:
		sess.State = StateBankSelect
		sess.Results, sess.Page = nil, 0
		b.updateMessage(i, "Select a bank:", bankSelectComponents(b.store.Banks()), nil)
	}
}

// showResults evaluates the filter and enters the results state.
// An empty result is terminal: the session is dropped.
func (b *Bot) showResults(i *discordgo.InteractionCreate, sess *Session) {
	results := catalog.Filter(b.store.Records(), sess.Selector())
	if len(results) == 0 {
		b.sessions.Delete(sess.UserID)
		b.updateMessage(i, "No tradelines match those filters for "+sess.Bank+".", []discordgo.MessageComponent{}, nil)
		return
	}

	sess.Results = results
	sess.Page = 0
	sess.State = StateResults
	b.renderPage(i, sess)
}

// renderPage rebuilds the current page. Checkout links are generated
// fresh per render; sessions are cheap and idempotent enough that
// caching them per record is not worth the bookkeeping.
func (b *Bot) renderPage(i *discordgo.InteractionCreate, sess *Session) {
	ctx, cancel := context.WithTimeout(context.Background(), renderTimeout)
	defer cancel()

	page := sess.CurrentPage()
	links := b.checkout.LinksFor(ctx, page)

	b.updateMessage(i, resultContent(sess), resultComponents(), resultEmbeds(page, links))
}

// updateMessage replaces the interaction's message in place
func (b *Bot) updateMessage(i *discordgo.InteractionCreate, content string, components []discordgo.MessageComponent, embeds []*discordgo.MessageEmbed) {
	err := b.discord.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: components,
			Embeds:     embeds,
		},
	})
	if err != nil {
		b.logPlatformError("message update failed", err)
	}
}

// acknowledge accepts a component interaction without changing the message
func (b *Bot) acknowledge(i *discordgo.InteractionCreate) {
	err := b.discord.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		b.logPlatformError("interaction ack failed", err)
	}
}

// respondEphemeral sends a private reply visible only to the requester
func (b *Bot) respondEphemeral(i *discordgo.InteractionCreate, content string) {
	err := b.discord.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		b.logPlatformError("ephemeral response failed", err)
	}
}

func (b *Bot) logPlatformError(msg string, err error) {
	b.log.Error().Err(apperrors.NewPlatform("bot", msg, err)).Msg("interaction error")
}

// interactionUserID resolves the acting user in guild and DM contexts
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
