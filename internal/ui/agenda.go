package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/tablero/internal/calendar"
	"github.com/javiermolinar/tablero/internal/dateutil"
)

func (a *App) agendaCmd() *cobra.Command {
	var (
		date string
		view string
		copy bool
	)

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show the calendar agenda",
		Long: `Show the scheduled events for a day or a week, slot by slot.

Example:
  tablero agenda
  tablero agenda --date=2026-09-04 --view=week
  tablero agenda --copy`,
		RunE: func(_ *cobra.Command, _ []string) error {
			day, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}
			v, err := dateutil.ParseView(view)
			if err != nil {
				return err
			}

			if err := a.ensureStore(); err != nil {
				return err
			}

			settings := calendarSettings(a.config)
			scheduler := calendar.NewScheduler(a.store, settings, nil)
			events, err := scheduler.Load(context.Background(), day, v)
			if err != nil {
				return err
			}

			text := renderAgenda(settings, events, day, v)
			fmt.Print(text)

			if copy {
				if err := clipboard.WriteAll(stripANSI(text)); err != nil {
					return fmt.Errorf("copying agenda: %w", err)
				}
				fmt.Println(formatMuted("\nAgenda copied to clipboard."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&view, "view", "day", "View: day or week")
	cmd.Flags().BoolVar(&copy, "copy", false, "Copy the agenda to the clipboard")

	return cmd
}

// renderAgenda prints one section per day, listing each slot that has
// events. Empty slots are skipped.
func renderAgenda(settings *calendar.Settings, events []calendar.Event, date time.Time, v dateutil.View) string {
	var b strings.Builder

	for _, day := range dateutil.ViewDays(date, v) {
		fmt.Fprintf(&b, "%s\n", formatHeader(day.Format("Monday 2006-01-02")))

		slots := calendar.GenerateSlots(settings, day)
		printed := 0
		for _, slot := range slots {
			inSlot := calendar.EventsForSlot(events, day, slot, settings.SlotDuration)
			for i := range inSlot {
				e := &inSlot[i]
				info := calendar.DisplayInfo(e, day, slot, settings.SlotDuration)
				if !info.StartsInSlot {
					continue
				}
				line := fmt.Sprintf("  %s  %s (%s)", slot.Time, e.Title, formatMinutes(e.DurationMinutes()))
				if e.IsTaskBased {
					line = formatActive(line)
				}
				fmt.Fprintln(&b, line)
				printed++
			}
		}
		if printed == 0 {
			fmt.Fprintln(&b, formatMuted("  (nothing scheduled)"))
		}
		fmt.Fprintln(&b)
	}

	return b.String()
}
