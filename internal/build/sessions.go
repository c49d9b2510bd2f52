package build

import (
	"sync"

	"github.com/google/uuid"

	"growhub/pkg/models"
)

// Session owns one build-in-progress. The aggregator itself is a plain
// data structure; the session's lock serializes the concurrent HTTP
// requests that may hit the same build id (double-click, parallel tabs).
type Session struct {
	mu  sync.Mutex
	agg *Aggregator
}

// SessionState is a consistent snapshot of a session, taken under the
// session lock so totals always match the component list.
type SessionState struct {
	Components map[string][]models.BuildComponentWithQuantity `json:"components"`
	TotalCost  float64                                        `json:"total_cost"`
	TotalPower int                                            `json:"total_power"`
	ItemCount  int                                            `json:"item_count"`
}

func newSession() *Session {
	return &Session{agg: NewAggregator()}
}

func (s *Session) Add(comp models.BuildComponent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agg.Add(comp)
}

func (s *Session) Remove(id, category string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agg.Remove(id, category)
}

func (s *Session) SetQuantity(id, category string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agg.SetQuantity(id, category, quantity)
}

func (s *Session) TotalPower() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agg.TotalPower()
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionState{
		Components: s.agg.Items(),
		TotalCost:  s.agg.TotalCost(),
		TotalPower: s.agg.TotalPower(),
		ItemCount:  s.agg.Len(),
	}
}

// SessionStore keeps one Session per open build. The store lock guards
// the registry only; each session carries its own lock for mutations.
type SessionStore struct {
	mu     sync.Mutex
	builds map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{builds: make(map[string]*Session)}
}

func (s *SessionStore) New() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.builds[id] = newSession()
	s.mu.Unlock()
	return id
}

func (s *SessionStore) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.builds[id]
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.builds, id)
	s.mu.Unlock()
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.builds)
}
