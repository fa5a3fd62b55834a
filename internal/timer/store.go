// Package timer implements the focus-timer state machine. A session's
// authoritative record lives in the store; the engine mirrors it in memory
// and counts down between store calls.
package timer

import (
	"context"
	"time"
)

// Session is a persisted timer run against a task.
type Session struct {
	ID              int64
	TaskID          int64
	DurationSeconds int
	StartedAt       time.Time
	StoppedAt       *time.Time
}

// Remaining returns the seconds left at the given instant, floored at zero.
// Elapsed whole seconds are counted; a partial second does not tick.
func (s *Session) Remaining(now time.Time) int {
	elapsed := int(now.Sub(s.StartedAt) / time.Second)
	remaining := s.DurationSeconds - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// SessionStore is the persistence surface for timer sessions. The sqlite
// implementation lives in internal/db.
type SessionStore interface {
	// ActiveSession returns the running session, or (nil, nil) when there
	// is none.
	ActiveSession(ctx context.Context) (*Session, error)

	// StartSession opens a session for a task. It fails when another
	// session is already active.
	StartSession(ctx context.Context, taskID int64, durationSeconds int) (*Session, error)

	// StopSession closes a session and folds the elapsed time into the
	// task's actual time.
	StopSession(ctx context.Context, sessionID int64) error
}
