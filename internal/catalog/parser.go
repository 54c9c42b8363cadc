package catalog

import (
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	"github.com/redTeamHero/discord/helpers"
	apperrors "github.com/redTeamHero/discord/pkg/errors"
)

// priceRegex matches the first dollar amount in a price cell, with
// optional thousands separators and optional cents.
var priceRegex = regexp.MustCompile(`\$\s?(\d+(?:,\d{3})*(?:\.\d{2})?)`)

// nonDigitRegex strips everything but digits from the raw credit limit
var nonDigitRegex = regexp.MustCompile(`[^\d]`)

// ParseResult holds the outcome of one catalog parse
type ParseResult struct {
	Records []Record
	Banks   []string // distinct, ascending
	Years   []int    // distinct, descending
	Skipped int      // rows dropped for missing cells or unparseable price
}

// Parse extracts tradeline records from the pricing page HTML.
// A row qualifies only if it carries both a product data cell and a
// product price cell; malformed rows are skipped and counted, never fatal.
// Duplicate rows are kept as distinct records.
func Parse(body io.Reader) (*ParseResult, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, apperrors.NewParsing("catalog", "failed to build document", err)
	}

	result := &ParseResult{}
	bankSet := make(map[string]struct{})
	yearSet := make(map[int]struct{})

	doc.Find("tr").Each(func(i int, row *goquery.Selection) {
		rec, ok := parseRow(row)
		if !ok {
			result.Skipped++
			return
		}
		if rec == nil {
			// Row is not a product row at all; not counted as a skip.
			return
		}

		result.Records = append(result.Records, *rec)
		bankSet[rec.Bank] = struct{}{}
		if year, ok := openedYear(rec.Opened); ok {
			yearSet[year] = struct{}{}
		}
	})

	for bank := range bankSet {
		result.Banks = append(result.Banks, bank)
	}
	sort.Strings(result.Banks)

	for year := range yearSet {
		result.Years = append(result.Years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(result.Years)))

	return result, nil
}

// parseRow extracts one record from a table row.
// Returns (nil, true) for rows that are not product rows,
// (nil, false) for product rows that fail extraction,
// and (rec, true) on success.
func parseRow(row *goquery.Selection) (*Record, bool) {
	productCell := row.Find("td.product_data")
	priceCell := row.Find("td.product_price")
	if productCell.Length() == 0 || priceCell.Length() == 0 {
		return nil, true
	}

	bank := strings.TrimSpace(productCell.AttrOr("data-bankname", ""))

	rawLimit := strings.TrimSpace(productCell.AttrOr("data-creditlimit", ""))
	limitDigits := nonDigitRegex.ReplaceAllString(rawLimit, "")
	limit := 0
	if limitDigits != "" {
		limit, _ = strconv.Atoi(limitDigits)
	}

	match := priceRegex.FindStringSubmatch(priceCell.Text())
	if match == nil {
		return nil, false
	}
	base, err := decimal.NewFromString(strings.ReplaceAll(match[1], ",", ""))
	if err != nil {
		return nil, false
	}

	rec := &Record{
		Bank:         bank,
		Price:        FinalPrice(base),
		Limit:        limit,
		Opened:       strings.TrimSpace(productCell.AttrOr("data-dateopened", "")),
		Deadline:     strings.TrimSpace(productCell.AttrOr("data-purchasebydate", "")),
		Reporting:    strings.TrimSpace(productCell.AttrOr("data-reportingperiod", "")),
		Availability: strings.TrimSpace(productCell.AttrOr("data-availability", "")),
		Bucket:       BucketFor(limit),
	}
	rec.Summary = formatSummary(rec)

	return rec, true
}

// openedYear parses the leading token of a date-opened value as a year
func openedYear(opened string) (int, bool) {
	token, err := helpers.GetSplitPart(strings.TrimSpace(opened), " ", 0)
	if err != nil || token == "" {
		return 0, false
	}
	year, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return year, true
}
