package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/javiermolinar/tablero/internal/calendar"
)

// EventsInRange returns the events overlapping [start, end), task-based
// events first by start time.
func (s *SQLite) EventsInRange(ctx context.Context, start, end time.Time) ([]calendar.Event, error) {
	query := `
		SELECT id, task_id, title, start_at, end_at, color
		FROM calendar_events
		WHERE start_at < ? AND end_at > ?
		ORDER BY start_at, id
	`

	rows, err := s.db.QueryContext(ctx, query,
		end.Format(time.RFC3339), start.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []calendar.Event
	for rows.Next() {
		var (
			e       calendar.Event
			taskID  sql.NullInt64
			startAt string
			endAt   string
		)
		if err := rows.Scan(&e.ID, &taskID, &e.Title, &startAt, &endAt, &e.Color); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		if taskID.Valid {
			e.TaskID = &taskID.Int64
			e.IsTaskBased = true
		}
		if e.Start, err = parseTimestamp(startAt); err != nil {
			return nil, fmt.Errorf("parsing event start: %w", err)
		}
		if e.End, err = parseTimestamp(endAt); err != nil {
			return nil, fmt.Errorf("parsing event end: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	return events, nil
}

// CreateEventFromTask inserts a task-based event carrying the task's title.
func (s *SQLite) CreateEventFromTask(ctx context.Context, taskID int64, start, end time.Time) error {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return fmt.Errorf("getting task: %w", err)
	}
	if t == nil {
		return fmt.Errorf("task %d not found", taskID)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO calendar_events (task_id, title, start_at, end_at, color)
		VALUES (?, ?, ?, ?, '')`,
		taskID, t.Title, start.Format(time.RFC3339), end.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

// CreateEvent inserts a standalone (non task-based) event.
func (s *SQLite) CreateEvent(ctx context.Context, title string, start, end time.Time, color string) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO calendar_events (task_id, title, start_at, end_at, color)
		VALUES (NULL, ?, ?, ?, ?)`,
		title, start.Format(time.RFC3339), end.Format(time.RFC3339), color,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting event: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}
	return id, nil
}

// DeleteEvent removes an event by id.
func (s *SQLite) DeleteEvent(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM calendar_events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("event %d not found", id)
	}
	return nil
}
