package form

import (
	"sync"

	"city-lookup/internal/lookup"
)

// State is a snapshot of a Slot
type State struct {
	Seq     uint64          // sequence number of the latest submission, 0 if none
	Pending bool            // the latest submission has not settled yet
	Outcome *lookup.Outcome // settled outcome of the latest submission
}

// Slot holds the current outcome for one form. Every submission takes a
// sequence number from Begin; only the newest submission may settle, so
// a slow earlier lookup can never overwrite a later one.
type Slot struct {
	mu      sync.Mutex
	seq     uint64
	pending bool
	current *lookup.Outcome
}

// Begin starts a submission and supersedes whatever the slot held
func (s *Slot) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.pending = true
	s.current = nil
	return s.seq
}

// Settle stores the outcome of submission seq. It reports false and
// discards the outcome when a newer submission has begun since.
func (s *Slot) Settle(seq uint64, outcome lookup.Outcome) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq || !s.pending {
		return false
	}
	s.pending = false
	s.current = &outcome
	return true
}

func (s *Slot) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{Seq: s.seq, Pending: s.pending, Outcome: s.current}
}
