package catalog

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redTeamHero/discord/logger"
	apperrors "github.com/redTeamHero/discord/pkg/errors"
)

// FetchFunc retrieves the raw pricing page
type FetchFunc func() (io.Reader, error)

// snapshot is one complete parse result; replaced wholesale, never mutated
type snapshot struct {
	records     []Record
	banks       []string
	years       []int
	refreshedAt time.Time
}

var emptySnapshot = &snapshot{}

// Store holds the last successful catalog parse.
// Readers always see a complete snapshot: Refresh builds a new one off
// to the side and swaps a single pointer. A failed refresh leaves the
// previous snapshot in place.
type Store struct {
	fetch FetchFunc
	log   *logger.Logger

	snap        atomic.Pointer[snapshot]
	refreshMu   sync.Mutex
	lastAttempt atomic.Pointer[refreshOutcome]
}

// refreshOutcome records how the latest refresh attempt went
type refreshOutcome struct {
	At  time.Time
	Err error
}

// NewStore creates an empty store refreshed through fetch
func NewStore(fetch FetchFunc, log *logger.Logger) *Store {
	s := &Store{
		fetch: fetch,
		log:   log,
	}
	s.snap.Store(emptySnapshot)
	return s
}

// Refresh fetches, parses, and atomically replaces the snapshot.
// It returns the failure for logging but never disturbs served data;
// overlapping calls collapse: a tick arriving mid-refresh is dropped.
func (s *Store) Refresh(ctx context.Context) error {
	if !s.refreshMu.TryLock() {
		s.log.Debug().Msg("refresh already in flight, skipping tick")
		return nil
	}
	defer s.refreshMu.Unlock()

	err := s.refresh(ctx)
	s.lastAttempt.Store(&refreshOutcome{At: time.Now(), Err: err})
	return err
}

func (s *Store) refresh(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := s.fetch()
	if err != nil {
		return apperrors.NewNetwork("catalog", "pricing page fetch failed", err)
	}

	result, err := Parse(body)
	if err != nil {
		return err
	}

	s.snap.Store(&snapshot{
		records:     result.Records,
		banks:       result.Banks,
		years:       result.Years,
		refreshedAt: time.Now(),
	})

	s.log.Info().
		Int("records", len(result.Records)).
		Int("banks", len(result.Banks)).
		Int("skipped", result.Skipped).
		Msg("catalog refreshed")

	return nil
}

// Records returns the latest complete record list in scrape order.
// Callers must not mutate the returned slice.
func (s *Store) Records() []Record {
	return s.snap.Load().records
}

// Banks returns the distinct bank names, sorted ascending
func (s *Store) Banks() []string {
	return s.snap.Load().banks
}

// Years returns the distinct opening years, sorted descending
func (s *Store) Years() []int {
	return s.snap.Load().years
}

// RefreshedAt returns when the served snapshot was built; zero if never
func (s *Store) RefreshedAt() time.Time {
	return s.snap.Load().refreshedAt
}

// LastAttempt reports the most recent refresh attempt and its error, if any
func (s *Store) LastAttempt() (time.Time, error) {
	o := s.lastAttempt.Load()
	if o == nil {
		return time.Time{}, nil
	}
	return o.At, o.Err
}
