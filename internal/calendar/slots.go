// Package calendar implements the slot grid and event placement logic
// for the day and week calendar views.
package calendar

import (
	"errors"
	"time"

	"github.com/javiermolinar/tablero/internal/dateutil"
)

// Validation errors.
var (
	ErrEndBeforeStart      = errors.New("event end must be after start")
	ErrInvalidTimeFormat   = errors.New("time must be in HH:MM format")
	ErrOutsideDisplayHours = errors.New("time is outside the configured display hours")
)

// Settings holds the business-hours configuration for the calendar grid.
// Weekday and weekend hours are independent; Saturday and Sunday count as
// weekend. Owned by the settings collaborator, read-only here.
type Settings struct {
	WeekdayStart string // "HH:MM"
	WeekdayEnd   string
	WeekendStart string
	WeekendEnd   string
	SlotDuration int // minutes per slot
}

// DayHours is the resolved start/end pair for a single day type.
type DayHours struct {
	Start string // "HH:MM"
	End   string
}

// ResolveHours returns the display hours for the given date's day type.
func (s *Settings) ResolveHours(date time.Time) DayHours {
	if dateutil.IsWeekend(date) {
		return DayHours{Start: s.WeekendStart, End: s.WeekendEnd}
	}
	return DayHours{Start: s.WeekdayStart, End: s.WeekdayEnd}
}

// TimeSlot is one fixed-duration bucket in the calendar grid.
type TimeSlot struct {
	Time   string // "HH:MM"
	Hour   int
	Minute int
}

// GenerateSlots produces the ordered slot sequence for a date, stepping by
// SlotDuration from the resolved start time up to (exclusive of) the end
// time. Minute overflow carries into the hour. A nil settings value means
// the configuration has not been loaded yet and yields no slots.
func GenerateSlots(s *Settings, date time.Time) []TimeSlot {
	if s == nil {
		return nil
	}

	hours := s.ResolveHours(date)
	startMin := TimeToMinutes(hours.Start)
	endMin := TimeToMinutes(hours.End)

	var slots []TimeSlot
	for m := startMin; m < endMin; m += s.SlotDuration {
		slots = append(slots, TimeSlot{
			Time:   MinutesToTime(m),
			Hour:   m / 60,
			Minute: m % 60,
		})
	}
	return slots
}

// SlotAt returns the slot containing the given wall-clock time, flooring to
// the slot raster. Returns ErrOutsideDisplayHours if the time falls outside
// the resolved hours for that date.
func SlotAt(s *Settings, date time.Time, hhmm string) (TimeSlot, error) {
	if len(hhmm) != 5 || hhmm[2] != ':' {
		return TimeSlot{}, ErrInvalidTimeFormat
	}
	hours := s.ResolveHours(date)
	m := TimeToMinutes(hhmm)
	if m < TimeToMinutes(hours.Start) || m >= TimeToMinutes(hours.End) {
		return TimeSlot{}, ErrOutsideDisplayHours
	}
	m -= (m - TimeToMinutes(hours.Start)) % s.SlotDuration
	return TimeSlot{Time: MinutesToTime(m), Hour: m / 60, Minute: m % 60}, nil
}

// SlotStart returns the absolute starting instant of a slot on a date.
func SlotStart(date time.Time, slot TimeSlot) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), slot.Hour, slot.Minute, 0, 0, date.Location())
}
