package kanban

import (
	"context"
	"fmt"
)

// Manager keeps the current board snapshot and applies mutations
// optimistically: the in-memory board is updated first, then the store is
// asked to persist the same change. When the store refuses, the manager
// refetches the authoritative board so the snapshot never drifts from the
// database.
type Manager struct {
	store Store
	board *Board
}

// NewManager creates a manager with no board loaded yet.
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Board returns the current snapshot for rendering. Nil until Load.
func (m *Manager) Board() *Board {
	return m.board
}

// SetBoard replaces the snapshot (after an external load).
func (m *Manager) SetBoard(b *Board) {
	m.board = b
}

// Load fetches the board from the store and makes it the current snapshot.
func (m *Manager) Load(ctx context.Context) error {
	b, err := m.store.GetBoardWithColumns(ctx)
	if err != nil {
		return fmt.Errorf("loading board: %w", err)
	}
	m.board = b
	return nil
}

// SubmitMove applies a move to the snapshot and persists it. A move the
// engine treats as a no-op skips the store entirely. On store failure the
// board is refetched and the returned error wraps the store's.
func (m *Manager) SubmitMove(ctx context.Context, mv Move) error {
	next := ApplyMove(m.board, mv)
	if next == m.board {
		return nil
	}
	m.board = next

	if err := m.store.MoveTask(ctx, mv); err != nil {
		return m.rollback(ctx, fmt.Errorf("moving task %d: %w", mv.TaskID, err))
	}
	return nil
}

// SubmitCompletionToggle flips a task's completed flag, relocating it to the
// Done column when completing, and persists both effects.
func (m *Manager) SubmitCompletionToggle(ctx context.Context, taskID int64) error {
	next, mv := ApplyCompletionToggle(m.board, taskID)
	if next == m.board {
		return nil
	}
	m.board = next

	t, _ := next.FindTask(taskID)
	if err := m.store.UpdateTask(ctx, t); err != nil {
		return m.rollback(ctx, fmt.Errorf("updating task %d: %w", taskID, err))
	}
	if mv != nil {
		if err := m.store.MoveTask(ctx, *mv); err != nil {
			return m.rollback(ctx, fmt.Errorf("moving task %d: %w", taskID, err))
		}
	}
	return nil
}

// SubmitCreate appends a task to a column and folds the stored row into the
// snapshot.
func (m *Manager) SubmitCreate(ctx context.Context, columnID int64, title, description string, estimatedMinutes int) (*Task, error) {
	t, err := m.store.CreateTask(ctx, columnID, title, description, estimatedMinutes)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	if col := m.board.FindColumn(columnID); col != nil {
		next := cloneBoard(m.board, columnID)
		nc := next.FindColumn(columnID)
		nc.Tasks = append(nc.Tasks, t)
		renumber(nc.Tasks)
		m.board = next
	}
	return t, nil
}

// SubmitDelete removes a task from the snapshot and the store.
func (m *Manager) SubmitDelete(ctx context.Context, taskID int64) error {
	_, col := m.board.FindTask(taskID)
	if col == nil {
		return ErrTaskNotFound
	}
	next := cloneBoard(m.board, col.ID)
	nc := next.FindColumn(col.ID)
	removeTask(nc, taskID)
	renumber(nc.Tasks)
	m.board = next

	if err := m.store.DeleteTask(ctx, taskID); err != nil {
		return m.rollback(ctx, fmt.Errorf("deleting task %d: %w", taskID, err))
	}
	return nil
}

// rollback refetches the authoritative board after a failed persist. The
// original error is returned either way; a refetch failure is attached to it.
func (m *Manager) rollback(ctx context.Context, cause error) error {
	b, err := m.store.GetBoardWithColumns(ctx)
	if err != nil {
		return fmt.Errorf("%w (board refetch also failed: %v)", cause, err)
	}
	m.board = b
	return cause
}
