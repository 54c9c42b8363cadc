package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"

	"github.com/redTeamHero/discord/internal/catalog"
	"github.com/redTeamHero/discord/internal/checkout"
	"github.com/redTeamHero/discord/logger"
	"github.com/redTeamHero/discord/services/cache"
)

// testPricingPage mimics the pricing table this bot scrapes
const testPricingPage = `
<!DOCTYPE html>
<html>
<body>
<table>
  <tr><th>Tradeline</th><th>Price</th></tr>
  <tr>
    <td class="product_data"
        data-bankname="Chase"
        data-creditlimit="$3,000"
        data-dateopened="2022 09"
        data-purchasebydate="Sep 15"
        data-reportingperiod="Sep 20 - Sep 25"
        data-availability="5"></td>
    <td class="product_price">$450.00</td>
  </tr>
  <tr>
    <td class="product_data"
        data-bankname="Amex"
        data-creditlimit="12,000"
        data-dateopened="2015 03"
        data-purchasebydate="Sep 10"
        data-reportingperiod="Sep 18 - Sep 22"
        data-availability="2"></td>
    <td class="product_price">$1,250.50</td>
  </tr>
  <tr>
    <td class="product_data" data-bankname="Junk"></td>
    <td class="product_price">contact us</td>
  </tr>
</table>
</body>
</html>
`

// stubSessions fakes the payment API session endpoint
type stubSessions struct{}

func (stubSessions) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return &stripe.CheckoutSession{URL: "https://checkout.test/" + *params.LineItems[0].PriceData.ProductData.Name}, nil
}

// TestCatalogPipeline walks the full refresh-filter-checkout path
// against a local pricing page.
func TestCatalogPipeline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(testPricingPage))
	}))
	defer server.Close()

	fetcher := catalog.NewFetcher(server.URL, cache.NewMemoryService())
	store := catalog.NewStore(fetcher.Fetch, logger.ForCatalog())

	require.NoError(t, store.Refresh(context.Background()))

	records := store.Records()
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Amex", "Chase"}, store.Banks())
	assert.Equal(t, []int{2022, 2015}, store.Years())

	chase := records[0]
	assert.Equal(t, "Chase", chase.Bank)
	assert.Equal(t, 3000, chase.Limit)
	assert.Equal(t, catalog.BucketMid, chase.Bucket)
	assert.Equal(t, "550.00", chase.Price.StringFixed(2))

	// Filter down to the Chase record and generate its checkout link
	matches := catalog.Filter(records, catalog.Selector{
		Bank:  "Chase",
		Age:   catalog.Age2020To2022,
		Price: catalog.Price500To1000,
		Limit: catalog.Limit2501To5000,
	})
	require.Len(t, matches, 1)

	gen := checkout.NewWithCreator(stubSessions{}, "https://example.com")
	links := gen.LinksFor(context.Background(), matches)
	assert.Equal(t, []string{"https://checkout.test/Chase"}, links)
}
