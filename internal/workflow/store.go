package workflow

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"server/internal/domain"
)

// Store holds the live panels, keyed by ID. Panels are in-memory only; they
// exist so a browser reload does not lose in-progress selections, not as
// durable storage.
type Store struct {
	mu     sync.Mutex
	panels map[string]*Panel
	ttl    time.Duration
}

// NewStore creates a store whose panels expire after ttl of inactivity.
// A non-positive ttl disables expiry.
func NewStore(ttl time.Duration) *Store {
	return &Store{panels: make(map[string]*Panel), ttl: ttl}
}

// Create registers a fresh panel for one workflow tab.
func (s *Store) Create(mode domain.Mode) *Panel {
	p := newPanel(uuid.NewString(), mode)
	s.mu.Lock()
	s.panels[p.id] = p
	s.mu.Unlock()
	return p
}

func (s *Store) Get(id string) (*Panel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.panels[id]
	if !ok {
		return nil, domain.ErrPanelNotFound
	}
	return p, nil
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.panels, id)
	s.mu.Unlock()
}

// PruneExpired drops panels idle for longer than the store TTL and returns
// how many were removed. Intended to run from a periodic ticker.
func (s *Store) PruneExpired() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := time.Now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, p := range s.panels {
		p.mu.Lock()
		idle := p.lastUsed.Before(cutoff) && p.status != StatusSubmitting
		p.mu.Unlock()
		if idle {
			delete(s.panels, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live panels.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.panels)
}
