package bot

import "github.com/redTeamHero/discord/internal/catalog"

// EventType enumerates the UI interactions the state machine handles
type EventType int

const (
	EventPickBank EventType = iota
	EventSetAge
	EventSetPrice
	EventSetLimit
	EventApplyFilters
	EventNextPage
	EventPrevPage
	EventBack
)

// Event is one typed UI interaction, decoupled from Discord's
// component custom IDs.
type Event struct {
	Type  EventType
	Value string
}

// Component custom IDs used on interactive widgets
const (
	idBankSelect  = "tl_bank"
	idAgeSelect   = "tl_age"
	idPriceSelect = "tl_price"
	idLimitSelect = "tl_limit"
	idApply       = "tl_apply"
	idNextPage    = "tl_next"
	idPrevPage    = "tl_prev"
	idBack        = "tl_back"
)

// ParseEvent maps a component interaction onto a typed event.
// Returns false for custom IDs this bot does not own.
func ParseEvent(customID string, values []string) (Event, bool) {
	value := ""
	if len(values) > 0 {
		value = values[0]
	}

	switch customID {
	case idBankSelect:
		return Event{Type: EventPickBank, Value: value}, true
	case idAgeSelect:
		return Event{Type: EventSetAge, Value: value}, true
	case idPriceSelect:
		return Event{Type: EventSetPrice, Value: value}, true
	case idLimitSelect:
		return Event{Type: EventSetLimit, Value: value}, true
	case idApply:
		return Event{Type: EventApplyFilters}, true
	case idNextPage:
		return Event{Type: EventNextPage}, true
	case idPrevPage:
		return Event{Type: EventPrevPage}, true
	case idBack:
		return Event{Type: EventBack}, true
	default:
		return Event{}, false
	}
}

// Select menu option values for the range filters
const (
	optAny = "any"

	optAgePre2016 = "pre2016"
	optAge2016    = "2016-2019"
	optAge2020    = "2020-2022"
	optAge2023    = "2023-2024"
	optAge2025    = "2025"

	optPriceUnder500 = "lt500"
	optPrice500      = "500-1000"
	optPrice1000     = "1000-2000"
	optPrice2000     = "2000plus"

	optLimitLow  = "0-2500"
	optLimitMid  = "2501-5000"
	optLimitHigh = "5001-10000"
	optLimitTop  = "10001plus"
)

// ageRangeFor maps a select value to its filter enum; unknown values
// fall back to any.
func ageRangeFor(value string) catalog.AgeRange {
	switch value {
	case optAgePre2016:
		return catalog.AgePre2016
	case optAge2016:
		return catalog.Age2016To2019
	case optAge2020:
		return catalog.Age2020To2022
	case optAge2023:
		return catalog.Age2023To2024
	case optAge2025:
		return catalog.Age2025
	default:
		return catalog.AgeAny
	}
}

func priceRangeFor(value string) catalog.PriceRange {
	switch value {
	case optPriceUnder500:
		return catalog.PriceUnder500
	case optPrice500:
		return catalog.Price500To1000
	case optPrice1000:
		return catalog.Price1000To2000
	case optPrice2000:
		return catalog.Price2000Plus
	default:
		return catalog.PriceAny
	}
}

func limitRangeFor(value string) catalog.LimitRange {
	switch value {
	case optLimitLow:
		return catalog.LimitUpTo2500
	case optLimitMid:
		return catalog.Limit2501To5000
	case optLimitHigh:
		return catalog.Limit5001To10000
	case optLimitTop:
		return catalog.Limit10001Plus
	default:
		return catalog.LimitAny
	}
}
