package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/javiermolinar/tablero/internal/timer"
)

// ErrSessionActive is returned by StartSession when a session is already
// running.
var ErrSessionActive = errors.New("a timer session is already active")

// ActiveSession returns the running session, or (nil, nil) when there is
// none.
func (s *SQLite) ActiveSession(ctx context.Context) (*timer.Session, error) {
	query := `
		SELECT id, task_id, duration_seconds, started_at
		FROM timer_sessions
		WHERE stopped_at IS NULL
		ORDER BY id DESC
		LIMIT 1
	`

	var (
		sess      timer.Session
		startedAt string
	)
	err := s.db.QueryRowContext(ctx, query).
		Scan(&sess.ID, &sess.TaskID, &sess.DurationSeconds, &startedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying active session: %w", err)
	}
	if sess.StartedAt, err = parseTimestamp(startedAt); err != nil {
		return nil, fmt.Errorf("parsing started at: %w", err)
	}
	return &sess, nil
}

// StartSession opens a session for a task. It fails with ErrSessionActive
// when another session is still running.
func (s *SQLite) StartSession(ctx context.Context, taskID int64, durationSeconds int) (*timer.Session, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var active int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM timer_sessions WHERE stopped_at IS NULL`).Scan(&active)
	if err != nil {
		return nil, fmt.Errorf("counting active sessions: %w", err)
	}
	if active > 0 {
		return nil, ErrSessionActive
	}

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE id = ?`, taskID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("querying task: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("task %d not found", taskID)
	}

	startedAt := s.now()
	result, err := tx.ExecContext(ctx, `
		INSERT INTO timer_sessions (task_id, duration_seconds, started_at, stopped_at)
		VALUES (?, ?, ?, NULL)`,
		taskID, durationSeconds, startedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting session: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting last insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return &timer.Session{
		ID:              id,
		TaskID:          taskID,
		DurationSeconds: durationSeconds,
		StartedAt:       startedAt,
	}, nil
}

// StopSession closes a session and folds the elapsed time into the task's
// actual minutes. Elapsed time is capped at the session's duration, so a
// session left running overnight does not inflate the task.
func (s *SQLite) StopSession(ctx context.Context, sessionID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var (
		taskID    int64
		duration  int
		startedAt string
		stoppedAt sql.NullString
	)
	err = tx.QueryRowContext(ctx,
		`SELECT task_id, duration_seconds, started_at, stopped_at FROM timer_sessions WHERE id = ?`,
		sessionID).Scan(&taskID, &duration, &startedAt, &stoppedAt)
	if err == sql.ErrNoRows {
		return fmt.Errorf("session %d not found", sessionID)
	}
	if err != nil {
		return fmt.Errorf("querying session: %w", err)
	}
	if stoppedAt.Valid {
		return fmt.Errorf("session %d already stopped", sessionID)
	}

	started, err := parseTimestamp(startedAt)
	if err != nil {
		return fmt.Errorf("parsing started at: %w", err)
	}

	now := s.now()
	elapsed := int(now.Sub(started) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > duration {
		elapsed = duration
	}
	minutes := (elapsed + 30) / 60

	if _, err := tx.ExecContext(ctx,
		`UPDATE timer_sessions SET stopped_at = ? WHERE id = ?`,
		now.Format(time.RFC3339), sessionID); err != nil {
		return fmt.Errorf("stopping session: %w", err)
	}

	if minutes > 0 {
		if _, err := tx.ExecContext(ctx,
			`UPDATE tasks SET actual_minutes = actual_minutes + ? WHERE id = ?`,
			minutes, taskID); err != nil {
			return fmt.Errorf("updating task time: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
