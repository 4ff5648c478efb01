package form

import (
	"sync"
	"time"
)

type entry struct {
	slot     *Slot
	lastUsed time.Time
}

// Store keeps one Slot per form session in memory. Sessions idle for
// longer than the ttl are dropped.
type Store struct {
	mu        sync.Mutex
	slots     map[string]*entry
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		slots: make(map[string]*entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Slot returns the slot for a session, creating it on first use
func (s *Store) Slot(sessionID string) *Slot {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if e, ok := s.slots[sessionID]; ok {
		e.lastUsed = now
		return e.slot
	}

	s.sweep(now)
	e := &entry{slot: &Slot{}, lastUsed: now}
	s.slots[sessionID] = e
	return e.slot
}

// Get returns the slot for a session without creating one
func (s *Store) Get(sessionID string) (*Slot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.slots[sessionID]
	if !ok {
		return nil, false
	}
	e.lastUsed = s.now()
	return e.slot, true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slots)
}

// sweep runs at most once per ttl. Caller holds mu.
func (s *Store) sweep(now time.Time) {
	if s.ttl <= 0 || now.Sub(s.lastSweep) < s.ttl {
		return
	}
	s.lastSweep = now
	for id, e := range s.slots {
		if now.Sub(e.lastUsed) > s.ttl {
			delete(s.slots, id)
		}
	}
}
