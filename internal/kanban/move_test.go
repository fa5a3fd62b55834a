package kanban

import "testing"

// testBoard builds a three-column board:
//
//	To Do:       #1 #2 #3
//	In Progress: #4
//	Done:        #5
func testBoard() *Board {
	return &Board{
		ID:   1,
		Name: "Personal",
		Columns: []*Column{
			{ID: 10, Name: "To Do", Order: 1, Tasks: []*Task{
				{ID: 1, ColumnID: 10, Title: "one", Order: 1},
				{ID: 2, ColumnID: 10, Title: "two", Order: 2},
				{ID: 3, ColumnID: 10, Title: "three", Order: 3},
			}},
			{ID: 20, Name: "In Progress", Order: 2, Tasks: []*Task{
				{ID: 4, ColumnID: 20, Title: "four", Order: 1},
			}},
			{ID: 30, Name: "Done", Order: 3, Tasks: []*Task{
				{ID: 5, ColumnID: 30, Title: "five", Order: 1, Completed: true},
			}},
		},
	}
}

func columnIDs(c *Column) []int64 {
	ids := make([]int64, len(c.Tasks))
	for i, t := range c.Tasks {
		ids[i] = t.ID
	}
	return ids
}

func assertOrder(t *testing.T, c *Column, want ...int64) {
	t.Helper()
	got := columnIDs(c)
	if len(got) != len(want) {
		t.Fatalf("column %s has tasks %v, want %v", c.Name, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column %s has tasks %v, want %v", c.Name, got, want)
		}
	}
	for i, task := range c.Tasks {
		if task.Order != i+1 {
			t.Errorf("task #%d has order %d, want %d", task.ID, task.Order, i+1)
		}
		if task.ColumnID != c.ID {
			t.Errorf("task #%d has column %d, want %d", task.ID, task.ColumnID, c.ID)
		}
	}
}

func TestApplyMove(t *testing.T) {
	t.Run("cross-column move renumbers both columns", func(t *testing.T) {
		b := testBoard()
		next := ApplyMove(b, Move{TaskID: 2, ToColumnID: 20, ToOrder: 1})

		if next == b {
			t.Fatal("expected a new board snapshot")
		}
		assertOrder(t, next.FindColumn(10), 1, 3)
		assertOrder(t, next.FindColumn(20), 2, 4)
	})

	t.Run("within-column reorder", func(t *testing.T) {
		b := testBoard()
		next := ApplyMove(b, Move{TaskID: 1, ToColumnID: 10, ToOrder: 3})
		assertOrder(t, next.FindColumn(10), 2, 3, 1)
	})

	t.Run("target order clamped to column bounds", func(t *testing.T) {
		b := testBoard()
		next := ApplyMove(b, Move{TaskID: 1, ToColumnID: 20, ToOrder: 99})
		assertOrder(t, next.FindColumn(20), 4, 1)

		b = testBoard()
		next = ApplyMove(b, Move{TaskID: 3, ToColumnID: 20, ToOrder: -5})
		assertOrder(t, next.FindColumn(20), 3, 4)
	})

	t.Run("no-op returns the same board", func(t *testing.T) {
		b := testBoard()
		if next := ApplyMove(b, Move{TaskID: 2, ToColumnID: 10, ToOrder: 2}); next != b {
			t.Error("moving a task onto itself should return the same pointer")
		}
	})

	t.Run("applying the same move twice equals once", func(t *testing.T) {
		b := testBoard()
		mv := Move{TaskID: 2, ToColumnID: 20, ToOrder: 1}
		once := ApplyMove(b, mv)
		twice := ApplyMove(once, mv)
		if twice != once {
			t.Error("re-applying an applied move should be a no-op")
		}
	})

	t.Run("unknown task is a no-op", func(t *testing.T) {
		b := testBoard()
		if next := ApplyMove(b, Move{TaskID: 999, ToColumnID: 20, ToOrder: 1}); next != b {
			t.Error("unknown task should return the same pointer")
		}
	})

	t.Run("unknown column is a no-op", func(t *testing.T) {
		b := testBoard()
		if next := ApplyMove(b, Move{TaskID: 1, ToColumnID: 999, ToOrder: 1}); next != b {
			t.Error("unknown column should return the same pointer")
		}
	})

	t.Run("input board is not mutated", func(t *testing.T) {
		b := testBoard()
		ApplyMove(b, Move{TaskID: 2, ToColumnID: 20, ToOrder: 1})

		assertOrder(t, b.FindColumn(10), 1, 2, 3)
		assertOrder(t, b.FindColumn(20), 4)
	})

	t.Run("untouched columns are shared", func(t *testing.T) {
		b := testBoard()
		next := ApplyMove(b, Move{TaskID: 2, ToColumnID: 20, ToOrder: 1})
		if next.FindColumn(30) != b.FindColumn(30) {
			t.Error("done column was not part of the move and should be shared")
		}
	})
}

func TestApplyCompletionToggle(t *testing.T) {
	t.Run("completing moves to end of done column", func(t *testing.T) {
		b := testBoard()
		next, mv := ApplyCompletionToggle(b, 2)

		task, col := next.FindTask(2)
		if !task.Completed {
			t.Error("task should be completed")
		}
		if col.ID != 30 {
			t.Errorf("task in column %d, want Done (30)", col.ID)
		}
		assertOrder(t, next.FindColumn(30), 5, 2)

		if mv == nil {
			t.Fatal("expected a move to replay against the store")
		}
		if mv.ToColumnID != 30 || mv.ToOrder != 2 {
			t.Errorf("move = %+v, want column 30 order 2", mv)
		}
	})

	t.Run("uncompleting leaves the task in place", func(t *testing.T) {
		b := testBoard()
		next, mv := ApplyCompletionToggle(b, 5)

		task, col := next.FindTask(5)
		if task.Completed {
			t.Error("task should be reopened")
		}
		if col.ID != 30 {
			t.Errorf("task in column %d, want 30", col.ID)
		}
		if mv != nil {
			t.Errorf("unexpected move %+v", mv)
		}
	})

	t.Run("completing inside done column does not move", func(t *testing.T) {
		b := testBoard()
		// Reopen #5 first, then complete it again while it sits in Done.
		reopened, _ := ApplyCompletionToggle(b, 5)
		next, mv := ApplyCompletionToggle(reopened, 5)

		if mv != nil {
			t.Errorf("unexpected move %+v", mv)
		}
		task, _ := next.FindTask(5)
		if !task.Completed {
			t.Error("task should be completed")
		}
	})

	t.Run("unknown task is a no-op", func(t *testing.T) {
		b := testBoard()
		next, mv := ApplyCompletionToggle(b, 999)
		if next != b || mv != nil {
			t.Error("unknown task should return the same pointer and no move")
		}
	})

	t.Run("input board is not mutated", func(t *testing.T) {
		b := testBoard()
		ApplyCompletionToggle(b, 2)

		task, _ := b.FindTask(2)
		if task.Completed {
			t.Error("original task was mutated")
		}
		assertOrder(t, b.FindColumn(10), 1, 2, 3)
	})
}

func TestDoneColumn(t *testing.T) {
	b := testBoard()
	if got := b.DoneColumn(); got == nil || got.ID != 30 {
		t.Errorf("got %+v, want column 30", got)
	}

	b.Columns[2].Name = "DONE"
	if got := b.DoneColumn(); got == nil || got.ID != 30 {
		t.Error("done column match should be case-insensitive")
	}

	b.Columns[2].Name = "Archive"
	if got := b.DoneColumn(); got != nil {
		t.Errorf("got %+v, want nil", got)
	}
}
