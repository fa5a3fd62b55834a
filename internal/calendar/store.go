package calendar

import (
	"context"
	"time"
)

// EventStore defines the persistence operations the calendar consumes.
type EventStore interface {
	// EventsInRange returns all events overlapping [start, end].
	EventsInRange(ctx context.Context, start, end time.Time) ([]Event, error)

	// CreateEventFromTask creates a task-based event. The store snapshots
	// the task's title and assigns the event id.
	CreateEventFromTask(ctx context.Context, taskID int64, start, end time.Time) error

	// CreateEvent creates a standalone event and returns its id.
	CreateEvent(ctx context.Context, title string, start, end time.Time, color string) (int64, error)

	// DeleteEvent removes an event by id.
	DeleteEvent(ctx context.Context, id int64) error
}
