package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tablero/internal/calendar"
)

func (a *App) eventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage standalone calendar events",
	}

	cmd.AddCommand(a.eventAddCmd())
	cmd.AddCommand(a.eventRemoveCmd())

	return cmd
}

func (a *App) eventAddCmd() *cobra.Command {
	var (
		date    string
		at      string
		minutes int
		color   string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Put a standalone event on the calendar",
		Long: `Create a calendar event that is not tied to any task, like a
meeting or an appointment. --date accepts an absolute date or a relative
one: today, tomorrow, a weekday name, next-<weekday>, next-week.

Example:
  tablero event add "Standup" --at=09:30 --minutes=15
  tablero event add "Dentist" --date=next-tuesday --at=11:00 --minutes=60`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			title := strings.TrimSpace(args[0])
			if title == "" {
				return fmt.Errorf("event title cannot be empty")
			}

			if err := a.ensureStore(); err != nil {
				return err
			}

			settings := calendarSettings(a.config)
			day, slot, err := scheduleSlot(settings, date, at, time.Now())
			if err != nil {
				return err
			}

			scheduler := calendar.NewScheduler(a.store, settings, nil)
			id, err := scheduler.ScheduleEvent(context.Background(), title, minutes, day, slot, color)
			if err != nil {
				return err
			}

			fmt.Printf("Added event #%d: %s on %s at %s (%s)\n",
				id, title, day.Format("2006-01-02"), slot.Time, formatMinutes(minutes))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, tomorrow, next-monday, ..., default: today)")
	cmd.Flags().StringVar(&at, "at", "", "Start time (HH:MM, floored to the slot raster, default: first slot)")
	cmd.Flags().IntVar(&minutes, "minutes", 30, "Event length in minutes")
	cmd.Flags().StringVar(&color, "color", "", "Display color")

	return cmd
}

func (a *App) eventRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [event-id]",
		Short: "Remove an event from the calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid event id %q", args[0])
			}

			if err := a.ensureStore(); err != nil {
				return err
			}

			settings := calendarSettings(a.config)
			scheduler := calendar.NewScheduler(a.store, settings, nil)
			if err := scheduler.Delete(context.Background(), id); err != nil {
				return err
			}

			fmt.Printf("Removed event #%d\n", id)
			return nil
		},
	}
}
