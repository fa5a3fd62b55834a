package ui

import (
	"testing"

	"github.com/javiermolinar/tablero/internal/kanban"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{25, "25m"},
		{60, "1h"},
		{90, "1h30m"},
		{120, "2h"},
		{135, "2h15m"},
	}

	for _, tt := range tests {
		if got := formatMinutes(tt.minutes); got != tt.want {
			t.Errorf("formatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestTaskTimes(t *testing.T) {
	tests := []struct {
		name string
		task kanban.Task
		want string
	}{
		{"no times", kanban.Task{}, ""},
		{"estimate only", kanban.Task{EstimatedMinutes: 30}, " [0m/30m]"},
		{"tracked and estimated", kanban.Task{ActualMinutes: 25, EstimatedMinutes: 90}, " [25m/1h30m]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := taskTimes(&tt.task); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFindColumnByName(t *testing.T) {
	board := &kanban.Board{
		Columns: []*kanban.Column{
			{ID: 10, Name: "To Do"},
			{ID: 20, Name: "In Progress"},
			{ID: 30, Name: "Done"},
		},
	}

	tests := []struct {
		name   string
		query  string
		wantID int64
	}{
		{"exact", "Done", 30},
		{"case insensitive", "done", 30},
		{"substring", "progress", 20},
		{"no match", "backlog", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := findColumnByName(board, tt.query)
			if tt.wantID == 0 {
				if col != nil {
					t.Errorf("got column %q, want none", col.Name)
				}
				return
			}
			if col == nil || col.ID != tt.wantID {
				t.Errorf("got %v, want column %d", col, tt.wantID)
			}
		})
	}
}
