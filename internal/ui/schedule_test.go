package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/tablero/internal/calendar"
	"github.com/javiermolinar/tablero/internal/dateutil"
)

func TestScheduleSlot(t *testing.T) {
	settings := &calendar.Settings{
		WeekdayStart: "09:00",
		WeekdayEnd:   "18:00",
		WeekendStart: "10:00",
		WeekendEnd:   "16:00",
		SlotDuration: 30,
	}
	// A Friday.
	now := time.Date(2026, 9, 4, 11, 0, 0, 0, time.UTC)

	t.Run("relative date with explicit time", func(t *testing.T) {
		day, slot, err := scheduleSlot(settings, "tomorrow", "14:00", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := day.Format("2006-01-02"); got != "2026-09-05" {
			t.Errorf("day %s, want 2026-09-05", got)
		}
		if slot.Time != "14:00" {
			t.Errorf("slot %s, want 14:00", slot.Time)
		}
	})

	t.Run("next weekday defaults to the first slot", func(t *testing.T) {
		day, slot, err := scheduleSlot(settings, "next-monday", "", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := day.Format("2006-01-02"); got != "2026-09-07" {
			t.Errorf("day %s, want 2026-09-07", got)
		}
		if slot.Time != "09:00" {
			t.Errorf("slot %s, want the weekday start 09:00", slot.Time)
		}
	})

	t.Run("weekend day uses weekend hours for the default", func(t *testing.T) {
		_, slot, err := scheduleSlot(settings, "2026-09-06", "", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if slot.Time != "10:00" {
			t.Errorf("slot %s, want the weekend start 10:00", slot.Time)
		}
	})

	t.Run("time floored to the slot raster", func(t *testing.T) {
		_, slot, err := scheduleSlot(settings, "", "14:20", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if slot.Time != "14:00" {
			t.Errorf("slot %s, want 14:00", slot.Time)
		}
	})

	t.Run("past date rejected", func(t *testing.T) {
		_, _, err := scheduleSlot(settings, "2026-09-01", "14:00", now)
		if !errors.Is(err, dateutil.ErrDateInPast) {
			t.Errorf("got %v, want ErrDateInPast", err)
		}
	})

	t.Run("time outside display hours rejected", func(t *testing.T) {
		_, _, err := scheduleSlot(settings, "tomorrow", "22:00", now)
		if !errors.Is(err, calendar.ErrOutsideDisplayHours) {
			t.Errorf("got %v, want ErrOutsideDisplayHours", err)
		}
	})
}
