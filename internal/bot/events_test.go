package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redTeamHero/discord/internal/catalog"
)

func TestParseEvent(t *testing.T) {
	cases := []struct {
		customID string
		values   []string
		expected Event
	}{
		{idBankSelect, []string{"Chase"}, Event{Type: EventPickBank, Value: "Chase"}},
		{idAgeSelect, []string{optAge2020}, Event{Type: EventSetAge, Value: optAge2020}},
		{idPriceSelect, []string{optPrice500}, Event{Type: EventSetPrice, Value: optPrice500}},
		{idLimitSelect, []string{optLimitMid}, Event{Type: EventSetLimit, Value: optLimitMid}},
		{idApply, nil, Event{Type: EventApplyFilters}},
		{idNextPage, nil, Event{Type: EventNextPage}},
		{idPrevPage, nil, Event{Type: EventPrevPage}},
		{idBack, nil, Event{Type: EventBack}},
	}

	for _, c := range cases {
		event, ok := ParseEvent(c.customID, c.values)
		require.True(t, ok, "custom ID %s", c.customID)
		assert.Equal(t, c.expected, event)
	}
}

func TestParseEventForeignCustomID(t *testing.T) {
	_, ok := ParseEvent("someone_elses_widget", nil)
	assert.False(t, ok)
}

func TestRangeMappings(t *testing.T) {
	assert.Equal(t, catalog.AgePre2016, ageRangeFor(optAgePre2016))
	assert.Equal(t, catalog.Age2025, ageRangeFor(optAge2025))
	assert.Equal(t, catalog.AgeAny, ageRangeFor(optAny))
	assert.Equal(t, catalog.AgeAny, ageRangeFor("garbage"))

	assert.Equal(t, catalog.PriceUnder500, priceRangeFor(optPriceUnder500))
	assert.Equal(t, catalog.Price2000Plus, priceRangeFor(optPrice2000))
	assert.Equal(t, catalog.PriceAny, priceRangeFor(optAny))

	assert.Equal(t, catalog.Limit10001Plus, limitRangeFor(optLimitTop))
	assert.Equal(t, catalog.LimitAny, limitRangeFor(optAny))
}
