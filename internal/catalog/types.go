package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Bucket labels grouping records by credit limit
const (
	BucketLow  = "0-2500"
	BucketMid  = "2501-5000"
	BucketHigh = "5001-10000"
	BucketTop  = "10001+"
)

// Buckets lists the bucket labels in ascending limit order
var Buckets = []string{BucketLow, BucketMid, BucketHigh, BucketTop}

// Record represents one priced tradeline listing scraped from the pricing page
type Record struct {
	Bank         string          `json:"bank"`
	Price        decimal.Decimal `json:"price"`
	Limit        int             `json:"limit"`
	Opened       string          `json:"opened"`
	Deadline     string          `json:"deadline"`
	Reporting    string          `json:"reporting"`
	Availability string          `json:"availability"`
	Summary      string          `json:"text"`
	Bucket       string          `json:"bucket"`
}

// BucketFor classifies a credit limit into its bucket label
func BucketFor(limit int) string {
	switch {
	case limit <= 2500:
		return BucketLow
	case limit <= 5000:
		return BucketMid
	case limit <= 10000:
		return BucketHigh
	default:
		return BucketTop
	}
}

var (
	surchargeSmall = decimal.NewFromInt(100)
	surchargeMid   = decimal.NewFromInt(200)
	surchargeLarge = decimal.NewFromInt(300)

	priceLow  = decimal.NewFromInt(500)
	priceHigh = decimal.NewFromInt(1000)
)

// FinalPrice applies the resale surcharge to a base listed price
// and rounds to cents: +100 below $500, +200 from $500 to $1000,
// +300 above $1000.
func FinalPrice(base decimal.Decimal) decimal.Decimal {
	var surcharge decimal.Decimal
	switch {
	case base.LessThan(priceLow):
		surcharge = surchargeSmall
	case base.LessThanOrEqual(priceHigh):
		surcharge = surchargeMid
	default:
		surcharge = surchargeLarge
	}
	return base.Add(surcharge).Round(2)
}

// formatSummary builds the card body text shown for a record
func formatSummary(r *Record) string {
	return fmt.Sprintf(
		"🏦 Bank: %s\n"+
			"💳 Credit Limit: $%s\n"+
			"📅 Date Opened: %s\n"+
			"🛒 Purchase Deadline: %s\n"+
			"📈 Reporting Period: %s\n"+
			"📦 Availability: %s\n"+
			"💰 Price: $%s",
		r.Bank,
		formatThousands(r.Limit),
		r.Opened,
		r.Deadline,
		r.Reporting,
		r.Availability,
		r.Price.StringFixed(2),
	)
}

// formatThousands renders an integer with comma separators
func formatThousands(n int) string {
	s := fmt.Sprintf("%d", n)
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
