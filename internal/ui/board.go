package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/tablero/internal/kanban"
)

func (a *App) boardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show the kanban board",
		Long: `Show the board's columns and their tasks in order.

Example:
  tablero board`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			board, err := a.store.GetBoardWithColumns(context.Background())
			if err != nil {
				return fmt.Errorf("loading board: %w", err)
			}

			printBoard(board)
			return nil
		},
	}
}

func printBoard(b *kanban.Board) {
	width := termWidth()

	fmt.Println(formatHeader(b.Name))
	fmt.Println(formatMuted(fmt.Sprintf("%d tasks", b.TaskCount())))

	for _, col := range b.Columns {
		fmt.Printf("\n%s (%d)\n", formatHeader(col.Name), len(col.Tasks))
		if len(col.Tasks) == 0 {
			fmt.Println(formatMuted("  (empty)"))
			continue
		}
		for _, t := range col.Tasks {
			line := fmt.Sprintf("  %s #%d %s%s", taskSymbol(t), t.ID, t.Title, taskTimes(t))
			line = ansi.Truncate(line, width, "…")
			if t.Completed {
				line = formatDone(line)
			}
			fmt.Println(line)
		}
	}
}

func taskSymbol(t *kanban.Task) string {
	if t.Completed {
		return "✓"
	}
	return "○"
}

// taskTimes renders the estimate and tracked time, e.g. " [25m/1h30m]".
func taskTimes(t *kanban.Task) string {
	if t.EstimatedMinutes == 0 && t.ActualMinutes == 0 {
		return ""
	}
	return fmt.Sprintf(" [%s/%s]", formatMinutes(t.ActualMinutes), formatMinutes(t.EstimatedMinutes))
}

func formatMinutes(m int) string {
	if m == 0 {
		return "0m"
	}
	if m < 60 {
		return fmt.Sprintf("%dm", m)
	}
	if m%60 == 0 {
		return fmt.Sprintf("%dh", m/60)
	}
	return fmt.Sprintf("%dh%dm", m/60, m%60)
}
