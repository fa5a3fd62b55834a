package timer

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Engine errors.
var (
	ErrTimerAlreadyRunning = errors.New("a timer is already running")
	ErrTimerNotRunning     = errors.New("no timer is running")
	ErrTimerNotPaused      = errors.New("timer is not paused")
)

// State is a phase of the timer's life cycle.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Display is a render-ready view of the engine.
type Display struct {
	State            State
	TaskID           int64
	RemainingSeconds int
	TotalSeconds     int
}

// Progress returns the elapsed fraction in [0, 1].
func (d Display) Progress() float64 {
	if d.TotalSeconds <= 0 {
		return 0
	}
	return float64(d.TotalSeconds-d.RemainingSeconds) / float64(d.TotalSeconds)
}

// Clock formats the remaining time as MM:SS (or H:MM:SS past an hour).
func (d Display) Clock() string {
	r := d.RemainingSeconds
	if r >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", r/3600, (r%3600)/60, r%60)
	}
	return fmt.Sprintf("%02d:%02d", r/60, r%60)
}

// Engine is the timer state machine. The store holds the authoritative
// session; the engine does not become Running until the store has accepted
// the session, so a rejected start leaves it exactly where it was.
//
// The store has no notion of pausing: Pause stops the session and freezes
// the remaining seconds in memory, and Resume opens a fresh session whose
// duration is that frozen remainder.
type Engine struct {
	store SessionStore
	now   func() time.Time // injectable for testing

	state     State
	session   *Session
	taskID    int64
	total     int // duration of the task's first session
	remaining int

	// onComplete fires once when the countdown reaches zero.
	onComplete func(taskID int64)
}

// NewEngine creates an idle engine. A nil now falls back to time.Now.
func NewEngine(store SessionStore, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{store: store, now: now, state: StateIdle}
}

// OnComplete registers a callback invoked when a countdown finishes.
func (e *Engine) OnComplete(fn func(taskID int64)) {
	e.onComplete = fn
}

// State returns the current phase.
func (e *Engine) State() State {
	return e.state
}

// Display returns a snapshot for rendering.
func (e *Engine) Display() Display {
	return Display{
		State:            e.state,
		TaskID:           e.taskID,
		RemainingSeconds: e.remaining,
		TotalSeconds:     e.total,
	}
}

// Start opens a session for a task and begins the countdown. It fails
// without changing state when a session is already active, locally or in
// the store.
func (e *Engine) Start(ctx context.Context, taskID int64, durationSeconds int) error {
	if e.state == StateRunning || e.state == StatePaused {
		return ErrTimerAlreadyRunning
	}

	s, err := e.store.StartSession(ctx, taskID, durationSeconds)
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}

	e.state = StateRunning
	e.session = s
	e.taskID = taskID
	e.total = durationSeconds
	e.remaining = durationSeconds
	return nil
}

// Pause stops the store session and freezes the remaining seconds.
func (e *Engine) Pause(ctx context.Context) error {
	if e.state != StateRunning {
		return ErrTimerNotRunning
	}
	if err := e.store.StopSession(ctx, e.session.ID); err != nil {
		return fmt.Errorf("pausing session: %w", err)
	}
	e.state = StatePaused
	e.session = nil
	return nil
}

// Resume opens a fresh session for the frozen remainder.
func (e *Engine) Resume(ctx context.Context) error {
	if e.state != StatePaused {
		return ErrTimerNotPaused
	}
	s, err := e.store.StartSession(ctx, e.taskID, e.remaining)
	if err != nil {
		return fmt.Errorf("resuming session: %w", err)
	}
	e.state = StateRunning
	e.session = s
	return nil
}

// Stop abandons the countdown, closing the store session if one is open,
// and returns the engine to Idle.
func (e *Engine) Stop(ctx context.Context) error {
	if e.state == StateIdle {
		return ErrTimerNotRunning
	}
	if e.session != nil {
		if err := e.store.StopSession(ctx, e.session.ID); err != nil {
			return fmt.Errorf("stopping session: %w", err)
		}
	}
	e.reset()
	return nil
}

// Reset clears a completed timer back to Idle. The session is already
// closed by the time the countdown finishes.
func (e *Engine) Reset() {
	if e.state != StateCompleted {
		return
	}
	e.reset()
}

// Tick advances the countdown by one second. On reaching zero it closes the
// store session, fires the completion callback, and moves to Completed.
func (e *Engine) Tick(ctx context.Context) error {
	if e.state != StateRunning {
		return nil
	}
	if e.remaining > 0 {
		e.remaining--
	}
	if e.remaining > 0 {
		return nil
	}
	return e.complete(ctx)
}

// Adopt attaches the engine to an already-running store session, e.g. one
// started by a previous process. The remainder is computed from the
// session's start time; a session past its duration completes immediately.
func (e *Engine) Adopt(ctx context.Context, s *Session) error {
	if e.state == StateRunning || e.state == StatePaused {
		return ErrTimerAlreadyRunning
	}
	e.state = StateRunning
	e.session = s
	e.taskID = s.TaskID
	e.total = s.DurationSeconds
	e.remaining = s.Remaining(e.now())
	if e.remaining == 0 {
		return e.complete(ctx)
	}
	return nil
}

// AdoptActive looks for an active store session and adopts it when found.
// It reports whether a session was adopted.
func (e *Engine) AdoptActive(ctx context.Context) (bool, error) {
	s, err := e.store.ActiveSession(ctx)
	if err != nil {
		return false, fmt.Errorf("checking active session: %w", err)
	}
	if s == nil {
		return false, nil
	}
	if err := e.Adopt(ctx, s); err != nil {
		return false, err
	}
	return true, nil
}

func (e *Engine) complete(ctx context.Context) error {
	if e.session != nil {
		if err := e.store.StopSession(ctx, e.session.ID); err != nil {
			return fmt.Errorf("closing session: %w", err)
		}
		e.session = nil
	}
	e.state = StateCompleted
	e.remaining = 0
	if e.onComplete != nil {
		e.onComplete(e.taskID)
	}
	return nil
}

// reset returns to Idle with the remaining time restored to the full
// duration, so the display shows the countdown ready to run again.
func (e *Engine) reset() {
	e.state = StateIdle
	e.session = nil
	e.taskID = 0
	e.remaining = e.total
}
