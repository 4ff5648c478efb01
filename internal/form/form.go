// Package form owns the per-session "current outcome" state behind the
// lookup form. The lookup pipeline itself stays stateless.
package form

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"city-lookup/internal/lookup"
)

var errLookupAborted = errors.New("lookup aborted")

type Form struct {
	service  lookup.Service
	sessions *Store
	logger   *slog.Logger
}

func New(service lookup.Service, sessions *Store, logger *slog.Logger) *Form {
	return &Form{
		service:  service,
		sessions: sessions,
		logger:   logger.With("component", "lookup-form"),
	}
}

// Submit resolves rawCity and stores the outcome in the session's slot.
// A blank city is rejected before the slot is touched. The returned bool
// is false when a newer submission superseded this one while it was in
// flight; the outcome is still returned to the caller but not stored.
func (f *Form) Submit(ctx context.Context, sessionID, rawCity string) (lookup.Outcome, bool, error) {
	if strings.TrimSpace(rawCity) == "" {
		return lookup.Outcome{}, false, lookup.ErrEmptyQuery
	}

	slot := f.sessions.Slot(sessionID)
	seq := slot.Begin()

	// Never leave the slot pending, even if Resolve panics
	settled := false
	defer func() {
		if !settled {
			slot.Settle(seq, lookup.TransportFailure(lookup.DisplayName(rawCity), errLookupAborted))
		}
	}()

	outcome, err := f.service.Resolve(ctx, rawCity)
	if err != nil {
		settled = true
		slot.Settle(seq, lookup.TransportFailure(lookup.DisplayName(rawCity), err))
		return lookup.Outcome{}, false, err
	}

	settled = true
	stored := slot.Settle(seq, outcome)
	if !stored {
		f.logger.Debug("discarding superseded lookup outcome",
			"session_id", sessionID,
			"seq", seq,
			"status", outcome.Status,
		)
	}
	return outcome, stored, nil
}

// Current returns what the renderer should show for a session
func (f *Form) Current(sessionID string) State {
	slot, ok := f.sessions.Get(sessionID)
	if !ok {
		return State{}
	}
	return slot.State()
}
