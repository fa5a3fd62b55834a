package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tablero/internal/calendar"
	"github.com/javiermolinar/tablero/internal/dateutil"
)

func (a *App) slotsCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Show the time slots for a day",
		Long: `Show the slot grid for a day using the configured display hours.

Weekdays and weekends can have different hours.

Example:
  tablero slots
  tablero slots --date=2026-09-06`,
		RunE: func(_ *cobra.Command, _ []string) error {
			day, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}

			settings := calendarSettings(a.config)
			hours := settings.ResolveHours(day)
			slots := calendar.GenerateSlots(settings, day)
			fmt.Printf("%s  %s\n", formatHeader(day.Format("Monday 2006-01-02")),
				formatMuted(fmt.Sprintf("%s-%s, %d slots of %dm", hours.Start, hours.End, len(slots), settings.SlotDuration)))
			for _, slot := range slots {
				fmt.Printf("  %s\n", slot.Time)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default: today)")

	return cmd
}
