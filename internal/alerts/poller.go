// Package alerts polls an RSS/Atom feed and forwards new entries to chat.
package alerts

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/redTeamHero/discord/helpers"
	"github.com/redTeamHero/discord/logger"
	apperrors "github.com/redTeamHero/discord/pkg/errors"
)

// Sender forwards one alert to the chat channel
type Sender interface {
	SendAlert(title, summary, link string) error
}

// FetchFunc retrieves the raw feed document
type FetchFunc func(url string) ([]byte, error)

// Poller periodically fetches the alert feed and forwards entries that
// have not been seen this process lifetime. The first cycle runs on a
// fast cadence so the initial batch lands promptly; after the first
// successful cycle it settles to the configured interval.
type Poller struct {
	feedURL    string
	sender     Sender
	fetch      FetchFunc
	parser     *gofeed.Parser
	summaryMax int

	firstInterval  time.Duration
	steadyInterval time.Duration

	mu      sync.Mutex
	seen    map[string]struct{}
	settled bool

	log *logger.Logger
}

// NewPoller creates a poller for the given feed URL
func NewPoller(feedURL string, sender Sender, steadyInterval time.Duration, summaryMax int) *Poller {
	return &Poller{
		feedURL:        feedURL,
		sender:         sender,
		fetch:          helpers.FetchSimply,
		parser:         gofeed.NewParser(),
		summaryMax:     summaryMax,
		firstInterval:  60 * time.Second,
		steadyInterval: steadyInterval,
		seen:           make(map[string]struct{}),
		log:            logger.ForPoller(),
	}
}

// Name identifies the poller to the task worker
func (p *Poller) Name() string {
	return "alerts"
}

// Interval returns the cadence for the next cycle
func (p *Poller) Interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.settled {
		return p.firstInterval
	}
	return p.steadyInterval
}

// Run executes one poll cycle. A failed fetch yields zero entries for
// the cycle; the next tick retries naturally. A failed send skips that
// entry only.
func (p *Poller) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := p.fetch(p.feedURL)
	if err != nil {
		return apperrors.NewNetwork("alerts", "feed fetch failed", err)
	}

	feed, err := p.parser.ParseString(string(data))
	if err != nil {
		return apperrors.NewParsing("alerts", "feed parse failed", err)
	}

	sent := 0
	for _, entry := range feed.Items {
		if ctx.Err() != nil {
			break
		}
		if p.forward(entry) {
			sent++
		}
	}

	p.mu.Lock()
	p.settled = true
	p.mu.Unlock()

	p.log.Debug().
		Int("entries", len(feed.Items)).
		Int("sent", sent).
		Msg("poll cycle complete")

	return nil
}

// forward sends one entry if it has not been delivered before
func (p *Poller) forward(entry *gofeed.Item) bool {
	link := UnwrapRedirect(entry.Link)
	if link == "" {
		return false
	}

	p.mu.Lock()
	if _, dup := p.seen[link]; dup {
		p.mu.Unlock()
		return false
	}
	p.seen[link] = struct{}{}
	p.mu.Unlock()

	title := CleanText(entry.Title, 0)
	summary := CleanText(entry.Description, p.summaryMax)

	if err := p.sender.SendAlert(title, summary, link); err != nil {
		p.log.Error().
			Err(apperrors.NewPlatform("alerts", "send failed for "+link, err)).
			Msg("alert dropped")
		return false
	}
	return true
}

// SeenCount reports how many distinct links have been forwarded
func (p *Poller) SeenCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.seen)
}

// String implements fmt.Stringer for log output
func (p *Poller) String() string {
	return fmt.Sprintf("alerts poller for %s", p.feedURL)
}
