package kanban

import "context"

// Store is the persistence surface the board engine needs. The sqlite
// implementation lives in internal/db.
type Store interface {
	// GetBoardWithColumns loads the default board with its columns and
	// tasks, ordered by column order and task order.
	GetBoardWithColumns(ctx context.Context) (*Board, error)

	// CreateTask appends a task to the end of a column and returns it with
	// its assigned id and order.
	CreateTask(ctx context.Context, columnID int64, title, description string, estimatedMinutes int) (*Task, error)

	// GetTask loads a single task by id.
	GetTask(ctx context.Context, id int64) (*Task, error)

	// UpdateTask persists a task's mutable fields (title, description,
	// completed, estimate, actual time).
	UpdateTask(ctx context.Context, t *Task) error

	// MoveTask relocates a task to a 1-based position in a column and
	// renumbers both affected columns.
	MoveTask(ctx context.Context, m Move) error

	// DeleteTask removes a task and closes the order gap it leaves.
	DeleteTask(ctx context.Context, id int64) error
}
