package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tablero/internal/timer"
)

func (a *App) timerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Control the focus timer",
	}

	cmd.AddCommand(a.timerStartCmd())
	cmd.AddCommand(a.timerStopCmd())
	cmd.AddCommand(a.timerStatusCmd())

	return cmd
}

func (a *App) timerStartCmd() *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "start [task-id]",
		Short: "Start a focus session for a task",
		Long: `Start a focus session. Only one session can run at a time;
the session keeps running after the command exits and can be picked up
by the TUI or by "timer status".

Example:
  tablero timer start 12 --minutes=25`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}

			if err := a.ensureStore(); err != nil {
				return err
			}

			s, err := a.store.StartSession(context.Background(), id, minutes*60)
			if err != nil {
				return err
			}

			fmt.Printf("Started session #%d for task #%d (%dm)\n", s.ID, s.TaskID, minutes)
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 25, "Session length in minutes")

	return cmd
}

func (a *App) timerStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running session",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			ctx := context.Background()
			s, err := a.store.ActiveSession(ctx)
			if err != nil {
				return err
			}
			if s == nil {
				return timer.ErrTimerNotRunning
			}

			if err := a.store.StopSession(ctx, s.ID); err != nil {
				return err
			}

			fmt.Printf("Stopped session #%d for task #%d\n", s.ID, s.TaskID)
			return nil
		},
	}
}

func (a *App) timerStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the running session",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			ctx := context.Background()
			engine := timer.NewEngine(a.store, nil)
			adopted, err := engine.AdoptActive(ctx)
			if err != nil {
				return err
			}
			if !adopted {
				fmt.Println(formatMuted("No session running."))
				return nil
			}

			d := engine.Display()
			t, err := a.store.GetTask(ctx, d.TaskID)
			if err != nil {
				return err
			}

			title := fmt.Sprintf("task #%d", d.TaskID)
			if t != nil {
				title = fmt.Sprintf("#%d %s", t.ID, t.Title)
			}
			switch d.State {
			case timer.StateCompleted:
				fmt.Printf("%s %s\n", formatStats("Session finished:"), title)
			default:
				fmt.Printf("%s %s  %s remaining (%.0f%%)\n",
					formatActive("Focusing on"), title, d.Clock(), d.Progress()*100)
			}
			return nil
		},
	}
}
