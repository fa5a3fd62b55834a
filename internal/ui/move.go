package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tablero/internal/kanban"
)

func (a *App) moveCmd() *cobra.Command {
	var position int

	cmd := &cobra.Command{
		Use:   "move [task-id] [column]",
		Short: "Move a task to a column",
		Long: `Move a task to another column, optionally at a specific position.

Without --position the task lands at the end of the column. Positions out
of range are clamped.

Example:
  tablero move 12 "In Progress"
  tablero move 12 done --position=1`,
		Args: cobra.ExactArgs(2),
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

			col := findColumnByName(manager.Board(), args[1])
			if col == nil {
				return fmt.Errorf("%w: %q", kanban.ErrColumnNotFound, args[1])
			}

			order := position
			if order <= 0 {
				order = len(col.Tasks) + 1
			}

			if err := manager.SubmitMove(ctx, kanban.Move{
				TaskID:     id,
				ToColumnID: col.ID,
				ToOrder:    order,
			}); err != nil {
				return err
			}

			t, at := manager.Board().FindTask(id)
			if t == nil {
				return fmt.Errorf("task %d not found", id)
			}
			fmt.Printf("Moved #%d: %s to %s (position %d)\n", t.ID, t.Title, at.Name, t.Order)
			return nil
		},
	}

	cmd.Flags().IntVar(&position, "position", 0, "1-based position in the target column (default: end)")

	return cmd
}
