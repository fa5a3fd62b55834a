package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/javiermolinar/tablero/internal/dateutil"
)

// DefaultEventMinutes is used when a scheduled task has no time estimate.
const DefaultEventMinutes = 30

// Scheduler coordinates the slot grid with the event store: it loads the
// events for a view range and turns "put this task on the calendar" intents
// into store calls.
type Scheduler struct {
	store    EventStore
	settings *Settings
	now      func() time.Time // injectable for testing
}

// NewScheduler creates a Scheduler. A nil now falls back to time.Now.
func NewScheduler(store EventStore, settings *Settings, now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{store: store, settings: settings, now: now}
}

// Settings returns the active calendar settings.
func (s *Scheduler) Settings() *Settings {
	return s.settings
}

// Load fetches the events for the view containing date.
func (s *Scheduler) Load(ctx context.Context, date time.Time, view dateutil.View) ([]Event, error) {
	start, end := dateutil.ViewRange(date, view)
	events, err := s.store.EventsInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("loading events: %w", err)
	}
	return events, nil
}

// ScheduleTask creates a task-based event starting at the given instant,
// floored to the slot raster, lasting the task's estimate (or
// DefaultEventMinutes when there is none).
func (s *Scheduler) ScheduleTask(ctx context.Context, taskID int64, estimatedMinutes int, at time.Time) error {
	if estimatedMinutes <= 0 {
		estimatedMinutes = DefaultEventMinutes
	}

	start := floorToRaster(at, s.settings.SlotDuration)
	end := start.Add(time.Duration(estimatedMinutes) * time.Minute)
	if !start.Before(end) {
		return ErrEndBeforeStart
	}

	if err := s.store.CreateEventFromTask(ctx, taskID, start, end); err != nil {
		return fmt.Errorf("scheduling task %d: %w", taskID, err)
	}
	return nil
}

// ScheduleTaskNow schedules a task at the current wall-clock time.
func (s *Scheduler) ScheduleTaskNow(ctx context.Context, taskID int64, estimatedMinutes int) error {
	return s.ScheduleTask(ctx, taskID, estimatedMinutes, s.now())
}

// ScheduleTaskAt schedules a task at a named slot on a date.
func (s *Scheduler) ScheduleTaskAt(ctx context.Context, taskID int64, estimatedMinutes int, date time.Time, slot TimeSlot) error {
	return s.ScheduleTask(ctx, taskID, estimatedMinutes, SlotStart(date, slot))
}

// ScheduleEvent creates a standalone event at a named slot on a date,
// lasting the given minutes (or DefaultEventMinutes when zero).
func (s *Scheduler) ScheduleEvent(ctx context.Context, title string, minutes int, date time.Time, slot TimeSlot, color string) (int64, error) {
	if minutes <= 0 {
		minutes = DefaultEventMinutes
	}

	start := SlotStart(date, slot)
	end := start.Add(time.Duration(minutes) * time.Minute)

	id, err := s.store.CreateEvent(ctx, title, start, end, color)
	if err != nil {
		return 0, fmt.Errorf("scheduling event: %w", err)
	}
	return id, nil
}

// Delete removes an event by id.
func (s *Scheduler) Delete(ctx context.Context, eventID int64) error {
	if err := s.store.DeleteEvent(ctx, eventID); err != nil {
		return fmt.Errorf("deleting event %d: %w", eventID, err)
	}
	return nil
}

// floorToRaster truncates an instant down to the previous raster boundary
// within its hour (e.g. 14:23 -> 14:20 for a 10-minute raster).
func floorToRaster(t time.Time, slotDuration int) time.Time {
	minute := t.Minute() - t.Minute()%slotDuration
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), minute, 0, 0, t.Location())
}
