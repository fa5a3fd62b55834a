// Package kanban implements the board model and its mutation engine: pure
// move/completion transforms over an immutable board snapshot, plus an
// optimistic manager that reconciles those transforms with the store.
package kanban

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrColumnNotFound = errors.New("column not found")
	ErrTaskNotFound   = errors.New("task not found")
)

// Task is a card on the board. Order is 1-based and dense within a column.
type Task struct {
	ID               int64
	ColumnID         int64
	Title            string
	Description      string
	Order            int
	Completed        bool
	EstimatedMinutes int
	ActualMinutes    int
	CreatedAt        time.Time
}

// Column is an ordered lane of tasks.
type Column struct {
	ID    int64
	Name  string
	Order int
	Tasks []*Task
}

// Board is a snapshot of a kanban board. Mutation operations treat it as
// immutable and return a new snapshot.
type Board struct {
	ID      int64
	Name    string
	Columns []*Column
}

// FindColumn returns the column with the given id, or nil.
func (b *Board) FindColumn(id int64) *Column {
	for _, c := range b.Columns {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// FindTask returns the task with the given id and its column, or nils.
func (b *Board) FindTask(id int64) (*Task, *Column) {
	for _, c := range b.Columns {
		for _, t := range c.Tasks {
			if t.ID == id {
				return t, c
			}
		}
	}
	return nil, nil
}

// DoneColumn returns the column named "done" (case-insensitive), or nil.
func (b *Board) DoneColumn() *Column {
	for _, c := range b.Columns {
		if strings.EqualFold(c.Name, "Done") {
			return c
		}
	}
	return nil
}

// TaskCount returns the total number of tasks across all columns.
func (b *Board) TaskCount() int {
	n := 0
	for _, c := range b.Columns {
		n += len(c.Tasks)
	}
	return n
}

// renumber rewrites the tasks' Order fields to a dense 1..N sequence.
func renumber(tasks []*Task) {
	for i, t := range tasks {
		t.Order = i + 1
	}
}
