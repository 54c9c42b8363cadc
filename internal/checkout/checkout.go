// Package checkout turns catalog records into hosted payment links.
package checkout

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"golang.org/x/time/rate"

	"github.com/redTeamHero/discord/internal/catalog"
	"github.com/redTeamHero/discord/logger"
	apperrors "github.com/redTeamHero/discord/pkg/errors"
)

// PlaceholderLink is substituted when a checkout session cannot be created
const PlaceholderLink = "#"

// SessionCreator is the seam over the payment API's session endpoint
type SessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// Generator creates one hosted checkout session per displayed record.
// Sessions are not cached; pagination bounds the fan-out to one page
// of records per render.
type Generator struct {
	sessions SessionCreator
	baseURL  string
	limiter  *rate.Limiter
	log      *logger.Logger
}

var cents = decimal.NewFromInt(100)

// New creates a Generator backed by the Stripe API
func New(apiKey, baseURL string) *Generator {
	api := client.New(apiKey, nil)
	return NewWithCreator(api.CheckoutSessions, baseURL)
}

// NewWithCreator creates a Generator with a custom session creator
func NewWithCreator(sessions SessionCreator, baseURL string) *Generator {
	return &Generator{
		sessions: sessions,
		baseURL:  baseURL,
		limiter:  rate.NewLimiter(rate.Limit(10), 5),
		log:      logger.ForCheckout(),
	}
}

// LinkFor requests a checkout session for one record and returns its
// redirect URL. Any failure yields the placeholder link; rendering the
// rest of the page must never be aborted by one bad session.
func (g *Generator) LinkFor(ctx context.Context, rec catalog.Record) string {
	if err := g.limiter.Wait(ctx); err != nil {
		return PlaceholderLink
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(rec.Price.Mul(cents).Round(0).IntPart()),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(rec.Bank),
						Description: stripe.String(fmt.Sprintf("Credit limit $%d, opened %s", rec.Limit, rec.Opened)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(g.baseURL + "/success"),
		CancelURL:  stripe.String(g.baseURL + "/cancel"),
	}
	params.Context = ctx

	sess, err := g.sessions.New(params)
	if err != nil {
		g.log.Warn().
			Err(apperrors.NewPayment("checkout", "session creation failed for "+rec.Bank, err)).
			Msg("substituting placeholder link")
		return PlaceholderLink
	}
	return sess.URL
}

// LinksFor generates checkout links for a page of records. Calls are
// issued concurrently and joined; the result slice is index-aligned
// with the input.
func (g *Generator) LinksFor(ctx context.Context, page []catalog.Record) []string {
	links := make([]string, len(page))

	var wg sync.WaitGroup
	for i, rec := range page {
		wg.Add(1)
		go func(i int, rec catalog.Record) {
			defer wg.Done()
			links[i] = g.LinkFor(ctx, rec)
		}(i, rec)
	}
	wg.Wait()

	return links
}
