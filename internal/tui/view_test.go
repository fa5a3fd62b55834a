package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/tablero/internal/calendar"
	"github.com/javiermolinar/tablero/internal/config"
	"github.com/javiermolinar/tablero/internal/dateutil"
	"github.com/javiermolinar/tablero/internal/kanban"
	"github.com/javiermolinar/tablero/internal/timer"
)

func setColorProfile(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Calendar.WeekdayStart = "09:00"
	cfg.Calendar.WeekdayEnd = "18:00"
	cfg.Calendar.SlotDuration = 30
	return cfg
}

func testModel(t *testing.T) *Model {
	t.Helper()
	m := New(nil, testConfig())
	m.loading = false
	m.manager.SetBoard(&kanban.Board{
		ID:   1,
		Name: "Personal",
		Columns: []*kanban.Column{
			{ID: 10, Name: "To Do", Order: 1, Tasks: []*kanban.Task{
				{ID: 1, ColumnID: 10, Title: "Write report", Order: 1, EstimatedMinutes: 45},
				{ID: 2, ColumnID: 10, Title: "Review notes", Order: 2},
			}},
			{ID: 20, Name: "In Progress", Order: 2},
			{ID: 30, Name: "Done", Order: 3, Tasks: []*kanban.Task{
				{ID: 3, ColumnID: 30, Title: "Old chore", Order: 1, Completed: true},
			}},
		},
	})
	return m
}

func TestRenderBoard(t *testing.T) {
	setColorProfile(t)
	m := testModel(t)

	out := m.renderBoard()
	for _, want := range []string{"To Do (2)", "In Progress (0)", "Done (1)"} {
		if !strings.Contains(out, want) {
			t.Errorf("board missing column header %q, got %q", want, out)
		}
	}
	if !strings.Contains(out, "Write report") {
		t.Errorf("board missing task title, got %q", out)
	}
	if !strings.Contains(out, "(45m)") {
		t.Errorf("board missing estimate suffix, got %q", out)
	}
	if !strings.Contains(out, "✓ Old chore") {
		t.Errorf("board missing completed marker, got %q", out)
	}
}

func TestTaskLine(t *testing.T) {
	engine := timer.NewEngine(nil, nil)

	t.Run("open task", func(t *testing.T) {
		line := taskLine(&kanban.Task{ID: 1, Title: "Write report"}, engine)
		if line != "○ Write report" {
			t.Errorf("got %q, want %q", line, "○ Write report")
		}
	})

	t.Run("estimate suffix", func(t *testing.T) {
		line := taskLine(&kanban.Task{ID: 1, Title: "Write report", EstimatedMinutes: 30}, engine)
		if line != "○ Write report (30m)" {
			t.Errorf("got %q, want estimate suffix", line)
		}
	})

	t.Run("long title truncated", func(t *testing.T) {
		long := strings.Repeat("x", 60)
		line := taskLine(&kanban.Task{ID: 1, Title: long}, engine)
		if !strings.HasSuffix(line, "…") {
			t.Errorf("got %q, want truncation ellipsis", line)
		}
	})
}

func TestRenderAgendaText(t *testing.T) {
	setColorProfile(t)
	m := testModel(t)
	m.date = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC) // a Friday

	taskID := int64(1)
	m.events = []calendar.Event{
		{
			ID:          5,
			TaskID:      &taskID,
			Title:       "Write report",
			Start:       time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC),
			End:         time.Date(2024, 3, 15, 15, 10, 0, 0, time.UTC),
			IsTaskBased: true,
		},
	}

	t.Run("day view", func(t *testing.T) {
		m.view = dateutil.ViewDay
		out := m.renderAgendaText()
		if !strings.Contains(out, "Fri Mar 15") {
			t.Errorf("agenda missing day header, got %q", out)
		}
		if !strings.Contains(out, "Write report") {
			t.Errorf("agenda missing event title, got %q", out)
		}
		// Empty slots still show their time in day view.
		if !strings.Contains(out, "09:00") {
			t.Errorf("agenda missing empty slot time, got %q", out)
		}
		// Continuation slots draw a bar instead of repeating the title.
		if strings.Count(stripANSI(out), "Write report") != 1 {
			t.Errorf("event title should appear once, got %q", out)
		}
		if !strings.Contains(out, "│") {
			t.Errorf("agenda missing continuation marker, got %q", out)
		}
	})

	t.Run("week view skips empty days", func(t *testing.T) {
		m.view = dateutil.ViewWeek
		out := m.renderAgendaText()
		if !strings.Contains(out, "(nothing scheduled)") {
			t.Errorf("week view missing empty day placeholder, got %q", out)
		}
		if !strings.Contains(out, "Write report") {
			t.Errorf("week view missing event title, got %q", out)
		}
	})
}

func TestRenderTimer(t *testing.T) {
	setColorProfile(t)
	m := testModel(t)

	store := &fakeTimerStore{}
	m.engine = timer.NewEngine(store, func() time.Time {
		return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	})

	t.Run("idle", func(t *testing.T) {
		if out := m.renderTimer(); !strings.Contains(out, "timer idle") {
			t.Errorf("got %q, want idle label", out)
		}
	})

	t.Run("running", func(t *testing.T) {
		if err := m.engine.Start(context.Background(), 1, 1500); err != nil {
			t.Fatalf("starting timer: %v", err)
		}
		out := m.renderTimer()
		if !strings.Contains(out, "▶ 25:00") {
			t.Errorf("got %q, want running countdown", out)
		}
	})

	t.Run("paused", func(t *testing.T) {
		if err := m.engine.Pause(context.Background()); err != nil {
			t.Fatalf("pausing timer: %v", err)
		}
		if out := m.renderTimer(); !strings.Contains(out, "⏸") {
			t.Errorf("got %q, want paused marker", out)
		}
	})
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		fraction float64
		width    int
		want     string
	}{
		{0, 4, "░░░░"},
		{0.5, 4, "██░░"},
		{1, 4, "████"},
		{-0.5, 4, "░░░░"},
		{1.5, 4, "████"},
	}

	for _, tt := range tests {
		if got := progressBar(tt.fraction, tt.width); got != tt.want {
			t.Errorf("progressBar(%v, %d) = %q, want %q", tt.fraction, tt.width, got, tt.want)
		}
	}
}

func TestRenderNewTaskForm(t *testing.T) {
	setColorProfile(t)
	m := testModel(t)
	m.mode = ModeNewTask
	m.formTitle.SetValue("Write summary")
	m.formEstimate = 2

	out := m.renderNewTaskForm()
	if !strings.Contains(out, "New task") {
		t.Errorf("form missing label, got %q", out)
	}
	if !strings.Contains(out, "Write summary") {
		t.Errorf("form missing entered title, got %q", out)
	}
	if !strings.Contains(out, "30m") {
		t.Errorf("form missing selected estimate, got %q", out)
	}
}

// fakeTimerStore is the minimal session store the render tests need.
type fakeTimerStore struct {
	nextID int64
	active *timer.Session
}

func (f *fakeTimerStore) ActiveSession(ctx context.Context) (*timer.Session, error) {
	return f.active, nil
}

func (f *fakeTimerStore) StartSession(ctx context.Context, taskID int64, durationSeconds int) (*timer.Session, error) {
	f.nextID++
	f.active = &timer.Session{ID: f.nextID, TaskID: taskID, DurationSeconds: durationSeconds}
	return f.active, nil
}

func (f *fakeTimerStore) StopSession(ctx context.Context, sessionID int64) error {
	f.active = nil
	return nil
}
