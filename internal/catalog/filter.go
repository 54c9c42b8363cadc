package catalog

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// AgeRange selects records by the year their tradeline was opened
type AgeRange int

const (
	AgeAny AgeRange = iota
	AgePre2016
	Age2016To2019
	Age2020To2022
	Age2023To2024
	Age2025
)

// PriceRange selects records by final price
type PriceRange int

const (
	PriceAny PriceRange = iota
	PriceUnder500
	Price500To1000
	Price1000To2000
	Price2000Plus
)

// LimitRange selects records by credit limit bucket boundaries
type LimitRange int

const (
	LimitAny LimitRange = iota
	LimitUpTo2500
	Limit2501To5000
	Limit5001To10000
	Limit10001Plus
)

// Selector is one transient filter query. Bank is an exact match and
// required; range criteria default to their Any value.
type Selector struct {
	Bank  string
	Age   AgeRange
	Price PriceRange
	Limit LimitRange
}

var (
	filter500  = decimal.NewFromInt(500)
	filter1000 = decimal.NewFromInt(1000)
	filter2000 = decimal.NewFromInt(2000)
)

// Filter returns the records matching all four criteria, preserving
// input order. A bank absent from records simply yields nothing.
func Filter(records []Record, sel Selector) []Record {
	var matched []Record
	for _, rec := range records {
		if rec.Bank != sel.Bank {
			continue
		}
		if !matchAge(rec.Opened, sel.Age) {
			continue
		}
		if !matchPrice(rec.Price, sel.Price) {
			continue
		}
		if !matchLimit(rec.Limit, sel.Limit) {
			continue
		}
		matched = append(matched, rec)
	}
	return matched
}

// matchAge parses the leading token of the date-opened text as a year.
// An unparseable year fails every age filter except AgeAny.
func matchAge(opened string, age AgeRange) bool {
	if age == AgeAny {
		return true
	}

	fields := strings.Fields(opened)
	if len(fields) == 0 {
		return false
	}
	year, err := strconv.Atoi(fields[0])
	if err != nil {
		return false
	}

	switch age {
	case AgePre2016:
		return year < 2016
	case Age2016To2019:
		return year >= 2016 && year <= 2019
	case Age2020To2022:
		return year >= 2020 && year <= 2022
	case Age2023To2024:
		return year >= 2023 && year <= 2024
	case Age2025:
		return year == 2025
	default:
		return false
	}
}

func matchPrice(price decimal.Decimal, pr PriceRange) bool {
	switch pr {
	case PriceAny:
		return true
	case PriceUnder500:
		return price.LessThan(filter500)
	case Price500To1000:
		return price.GreaterThanOrEqual(filter500) && price.LessThanOrEqual(filter1000)
	case Price1000To2000:
		return price.GreaterThan(filter1000) && price.LessThanOrEqual(filter2000)
	case Price2000Plus:
		return price.GreaterThan(filter2000)
	default:
		return false
	}
}

func matchLimit(limit int, lr LimitRange) bool {
	switch lr {
	case LimitAny:
		return true
	case LimitUpTo2500:
		return limit <= 2500
	case Limit2501To5000:
		return limit >= 2501 && limit <= 5000
	case Limit5001To10000:
		return limit >= 5001 && limit <= 10000
	case Limit10001Plus:
		return limit >= 10001
	default:
		return false
	}
}
