package catalog

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/redTeamHero/discord/helpers"
	"github.com/redTeamHero/discord/services/cache"
)

// Fetcher retrieves the pricing page with a rate-limit backoff window.
// After an upstream 429 the block key stays set for BlockTime and
// further attempts fail fast without touching the source.
type Fetcher struct {
	URL       string
	CacheKey  string
	CacheSvc  cache.CacheService
	BlockTime time.Duration
}

// NewFetcher creates a fetcher for the given pricing page URL
func NewFetcher(url string, cacheSvc cache.CacheService) *Fetcher {
	return &Fetcher{
		URL:       url,
		CacheKey:  "catalog_rate_limited",
		CacheSvc:  cacheSvc,
		BlockTime: 300 * time.Second,
	}
}

// Fetch returns the pricing page body as a UTF-8 reader
func (f *Fetcher) Fetch() (io.Reader, error) {
	if f.CacheSvc != nil && f.CacheKey != "" {
		_, err := f.CacheSvc.Get(f.CacheKey)
		if err == nil {
			return nil, fmt.Errorf("%s: blocked for %d more seconds at most", f.CacheKey, f.BlockTime/time.Second)
		}
	}

	body, err := helpers.FetchWithRandomHeaders(f.URL)
	if err != nil {
		if f.CacheSvc != nil && f.CacheKey != "" && strings.HasPrefix(err.Error(), "rate limited") {
			f.CacheSvc.Set(f.CacheKey, []byte(fmt.Sprintf("%d", f.BlockTime/time.Second)), f.BlockTime)
		}
		return nil, err
	}

	return body, nil
}
