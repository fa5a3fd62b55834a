package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tablero/internal/kanban"
)

func (a *App) addCmd() *cobra.Command {
	var (
		column      string
		description string
		estimate    int
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task",
		Long: `Add a new task to a board column.

Example:
  tablero add "Write documentation" --column="To Do" --estimate=45`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			ctx := context.Background()
			board, err := a.store.GetBoardWithColumns(ctx)
			if err != nil {
				return fmt.Errorf("loading board: %w", err)
			}

			col := findColumnByName(board, column)
			if col == nil {
				return fmt.Errorf("%w: %q", kanban.ErrColumnNotFound, column)
			}

			t, err := a.store.CreateTask(ctx, col.ID, args[0], description, estimate)
			if err != nil {
				return fmt.Errorf("creating task: %w", err)
			}

			fmt.Printf("Created task #%d: %s in %s (position %d)\n",
				t.ID, t.Title, col.Name, t.Order)
			return nil
		},
	}

	cmd.Flags().StringVar(&column, "column", "To Do", "Target column name")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "Estimated minutes")

	return cmd
}

// findColumnByName matches a column by case-insensitive name, falling back
// to substring matching so "prog" resolves to "In Progress".
func findColumnByName(b *kanban.Board, name string) *kanban.Column {
	for _, c := range b.Columns {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	lower := strings.ToLower(name)
	for _, c := range b.Columns {
		if strings.Contains(strings.ToLower(c.Name), lower) {
			return c
		}
	}
	return nil
}
