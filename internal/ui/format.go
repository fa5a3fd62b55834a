package ui

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/tablero/internal/calendar"
	"github.com/javiermolinar/tablero/internal/config"
)

// calendarSettings builds the slot grid settings from the loaded config.
func calendarSettings(cfg *config.Config) *calendar.Settings {
	return &calendar.Settings{
		WeekdayStart: cfg.Calendar.WeekdayStart,
		WeekdayEnd:   cfg.Calendar.WeekdayEnd,
		WeekendStart: cfg.Calendar.WeekendStart,
		WeekendEnd:   cfg.Calendar.WeekendEnd,
		SlotDuration: cfg.Calendar.SlotDuration,
	}
}

// stripANSI removes escape sequences so copied text is plain.
func stripANSI(s string) string {
	return ansi.Strip(s)
}
