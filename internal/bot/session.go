package bot

import (
	"sync"
	"time"

	"github.com/redTeamHero/discord/internal/catalog"
)

// State is one node of the browse flow
type State int

const (
	StateBankSelect State = iota
	StateFilterSelect
	StateResults
)

// UI limits imposed by the flow and the platform
const (
	pageSize       = 5
	maxBankOptions = 25 // Discord select menu cap; banks past it are not selectable

	selectionTTL = 180 * time.Second
	resultsTTL   = 300 * time.Second
)

// Session is one user's browse state. Results hold a snapshot of the
// filtered records; a catalog refresh does not reshuffle pages mid-browse.
type Session struct {
	UserID  string
	State   State
	Bank    string
	Age     catalog.AgeRange
	Price   catalog.PriceRange
	Limit   catalog.LimitRange
	Results []catalog.Record
	Page    int
	Touched time.Time
}

// Selector builds the filter query from the session's selections
func (s *Session) Selector() catalog.Selector {
	return catalog.Selector{
		Bank:  s.Bank,
		Age:   s.Age,
		Price: s.Price,
		Limit: s.Limit,
	}
}

// PageCount returns the number of result pages
func (s *Session) PageCount() int {
	if len(s.Results) == 0 {
		return 0
	}
	return (len(s.Results) + pageSize - 1) / pageSize
}

// CurrentPage returns the records on the current page
func (s *Session) CurrentPage() []catalog.Record {
	start := s.Page * pageSize
	if start >= len(s.Results) {
		return nil
	}
	end := start + pageSize
	if end > len(s.Results) {
		end = len(s.Results)
	}
	return s.Results[start:end]
}

// NextPage advances the page index, wrapping past the last page
func (s *Session) NextPage() {
	if count := s.PageCount(); count > 0 {
		s.Page = (s.Page + 1) % count
	}
}

// PrevPage moves back one page, wrapping from the first to the last
func (s *Session) PrevPage() {
	if count := s.PageCount(); count > 0 {
		s.Page = (s.Page - 1 + count) % count
	}
}

// ttl returns the inactivity budget for the session's current state
func (s *Session) ttl() time.Duration {
	if s.State == StateResults {
		return resultsTTL
	}
	return selectionTTL
}

// expired reports whether the session ran out its inactivity budget
func (s *Session) expired(now time.Time) bool {
	return now.Sub(s.Touched) > s.ttl()
}

// SessionStore keeps per-user sessions and drops them on inactivity
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Start creates a fresh session for the user, replacing any prior one
func (st *SessionStore) Start(userID string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess := &Session{
		UserID:  userID,
		State:   StateBankSelect,
		Touched: st.now(),
	}
	st.sessions[userID] = sess
	return sess
}

// Get returns the user's live session; expired sessions are dropped
func (st *SessionStore) Get(userID string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.sessions[userID]
	if !ok {
		return nil, false
	}
	if sess.expired(st.now()) {
		delete(st.sessions, userID)
		return nil, false
	}
	sess.Touched = st.now()
	return sess, true
}

// Delete removes the user's session
func (st *SessionStore) Delete(userID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, userID)
}

// PurgeExpired drops all timed-out sessions and returns how many
func (st *SessionStore) PurgeExpired() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	purged := 0
	for userID, sess := range st.sessions {
		if sess.expired(now) {
			delete(st.sessions, userID)
			purged++
		}
	}
	return purged
}

// Len returns the number of live sessions
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
