package calendar

import "time"

// Event is a calendar entry. Task-based events are created by scheduling a
// kanban task onto the grid and carry the originating task's id; freestanding
// events have no task link. Ids are authoritative from the store; the engine
// never invents one.
type Event struct {
	ID          int64
	TaskID      *int64
	Title       string
	Start       time.Time
	End         time.Time
	Color       string
	IsTaskBased bool
}

// DurationMinutes returns the event length rounded to the nearest minute.
func (e *Event) DurationMinutes() int {
	return int(e.End.Sub(e.Start).Round(time.Minute) / time.Minute)
}
