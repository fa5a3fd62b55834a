package kanban

// Move is a task relocation: the task lands in column ToColumnID at the
// 1-based position ToOrder. It doubles as the payload for Store.MoveTask.
type Move struct {
	TaskID     int64
	ToColumnID int64
	ToOrder    int
}

// ApplyMove returns a new board with the move applied. The input board is
// never mutated; columns and tasks untouched by the move are shared between
// the snapshots. The target index is clamped to the destination column's
// bounds, and order numbers are rewritten to a dense 1..N sequence in every
// affected column. A move that changes nothing returns the same board
// pointer, so applying the same move twice is indistinguishable from
// applying it once.
func ApplyMove(b *Board, m Move) *Board {
	task, from := b.FindTask(m.TaskID)
	if task == nil {
		return b
	}
	to := b.FindColumn(m.ToColumnID)
	if to == nil {
		return b
	}

	// Translate the 1-based target into an index into the destination,
	// clamped to its bounds. Within the same column the slot freed by the
	// task itself is accounted for.
	idx := m.ToOrder - 1
	limit := len(to.Tasks)
	if from.ID == to.ID {
		limit--
	}
	if idx < 0 {
		idx = 0
	}
	if idx > limit {
		idx = limit
	}

	if from.ID == to.ID && idx == indexOf(from.Tasks, task.ID) {
		return b
	}

	next := cloneBoard(b, from.ID, to.ID)
	nFrom := next.FindColumn(from.ID)
	nTo := next.FindColumn(to.ID)
	moved := removeTask(nFrom, task.ID)
	moved.ColumnID = nTo.ID
	nTo.Tasks = insertTask(nTo.Tasks, moved, idx)
	renumber(nFrom.Tasks)
	if nTo.ID != nFrom.ID {
		renumber(nTo.Tasks)
	}
	return next
}

// ApplyCompletionToggle flips a task's completed flag. Marking a task done
// also moves it to the end of the Done column (when one exists and the task
// is not already there). It returns the new snapshot and, when a relocation
// happened, the Move to replay against the store.
func ApplyCompletionToggle(b *Board, taskID int64) (*Board, *Move) {
	task, col := b.FindTask(taskID)
	if task == nil {
		return b, nil
	}

	completing := !task.Completed
	done := b.DoneColumn()

	var move *Move
	if completing && done != nil && col.ID != done.ID {
		move = &Move{TaskID: taskID, ToColumnID: done.ID, ToOrder: len(done.Tasks) + 1}
	}

	next := b
	if move != nil {
		next = ApplyMove(b, *move)
	} else {
		next = cloneBoard(b, col.ID)
	}

	t, _ := next.FindTask(taskID)
	t.Completed = completing
	return next, move
}

// cloneBoard copies the board one level deep: columns listed in deep get
// their task structs copied as well, everything else is shared.
func cloneBoard(b *Board, deep ...int64) *Board {
	isDeep := func(id int64) bool {
		for _, d := range deep {
			if d == id {
				return true
			}
		}
		return false
	}

	next := &Board{ID: b.ID, Name: b.Name, Columns: make([]*Column, len(b.Columns))}
	for i, c := range b.Columns {
		if !isDeep(c.ID) {
			next.Columns[i] = c
			continue
		}
		nc := &Column{ID: c.ID, Name: c.Name, Order: c.Order, Tasks: make([]*Task, len(c.Tasks))}
		for j, t := range c.Tasks {
			copied := *t
			nc.Tasks[j] = &copied
		}
		next.Columns[i] = nc
	}
	return next
}

func indexOf(tasks []*Task, id int64) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func removeTask(c *Column, id int64) *Task {
	i := indexOf(c.Tasks, id)
	t := c.Tasks[i]
	c.Tasks = append(c.Tasks[:i], c.Tasks[i+1:]...)
	return t
}

func insertTask(tasks []*Task, t *Task, idx int) []*Task {
	tasks = append(tasks, nil)
	copy(tasks[idx+1:], tasks[idx:])
	tasks[idx] = t
	return tasks
}
