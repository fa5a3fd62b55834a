package ui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tablero/internal/calendar"
	"github.com/javiermolinar/tablero/internal/dateutil"
)

func (a *App) scheduleCmd() *cobra.Command {
	var (
		date string
		at   string
	)

	cmd := &cobra.Command{
		Use:   "schedule [task-id]",
		Short: "Schedule a task on the calendar",
		Long: `Put a task on the calendar as an event.

The event starts at the slot containing --at and lasts the task's
estimate, or 30 minutes when there is none. --date accepts an absolute
date or a relative one: today, tomorrow, a weekday name, next-<weekday>,
next-week. Without --at the event goes into the day's first slot.

Example:
  tablero schedule 12
  tablero schedule 12 --date=tomorrow
  tablero schedule 12 --date=next-friday --at=14:00`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}

			if err := a.ensureStore(); err != nil {
				return err
			}

			ctx := context.Background()
			t, err := a.store.GetTask(ctx, id)
			if err != nil {
				return fmt.Errorf("getting task: %w", err)
			}
			if t == nil {
				return fmt.Errorf("task %d not found", id)
			}

			settings := calendarSettings(a.config)
			scheduler := calendar.NewScheduler(a.store, settings, nil)

			if at == "" && date == "" {
				if err := scheduler.ScheduleTaskNow(ctx, id, t.EstimatedMinutes); err != nil {
					return err
				}
				fmt.Printf("Scheduled #%d: %s\n", t.ID, t.Title)
				return nil
			}

			day, slot, err := scheduleSlot(settings, date, at, time.Now())
			if err != nil {
				return err
			}
			if err := scheduler.ScheduleTaskAt(ctx, id, t.EstimatedMinutes, day, slot); err != nil {
				return err
			}

			fmt.Printf("Scheduled #%d: %s on %s at %s\n",
				t.ID, t.Title, day.Format("2006-01-02"), slot.Time)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, tomorrow, next-monday, ..., default: today)")
	cmd.Flags().StringVar(&at, "at", "", "Start time (HH:MM, floored to the slot raster, default: first slot)")

	return cmd
}

// scheduleSlot resolves the date/time flag pair into a concrete day and
// slot. The date may be relative; an empty time falls back to the first
// slot of the day's display hours.
func scheduleSlot(settings *calendar.Settings, date, at string, now time.Time) (time.Time, calendar.TimeSlot, error) {
	day, err := dateutil.ParseRelativeDate(date, now)
	if err != nil {
		return time.Time{}, calendar.TimeSlot{}, err
	}
	if at == "" {
		at = settings.ResolveHours(day).Start
	}
	slot, err := calendar.SlotAt(settings, day, at)
	if err != nil {
		return time.Time{}, calendar.TimeSlot{}, err
	}
	return day, slot, nil
}
