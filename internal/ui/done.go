package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tablero/internal/kanban"
)

func (a *App) doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done [task-id]",
		Short: "Toggle a task's completion",
		Long: `Toggle a task between done and not done.

Completing a task also moves it to the end of the Done column.

Example:
  tablero done 12`,
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
			manager := kanban.NewManager(a.store)
			if err := manager.Load(ctx); err != nil {
				return err
			}

			before, _ := manager.Board().FindTask(id)
			if before == nil {
				return fmt.Errorf("task %d not found", id)
			}

			if err := manager.SubmitCompletionToggle(ctx, id); err != nil {
				return err
			}

			after, col := manager.Board().FindTask(id)
			if after.Completed {
				fmt.Printf("Completed #%d: %s (now in %s)\n", after.ID, after.Title, col.Name)
			} else {
				fmt.Printf("Reopened #%d: %s\n", after.ID, after.Title)
			}
			return nil
		},
	}
}
