// Package tui provides the terminal user interface for tablero.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tablero/internal/calendar"
	"github.com/javiermolinar/tablero/internal/config"
	"github.com/javiermolinar/tablero/internal/dateutil"
	"github.com/javiermolinar/tablero/internal/kanban"
	"github.com/javiermolinar/tablero/internal/timer"
	"github.com/javiermolinar/tablero/internal/tui/commands"
)

// Store is the persistence surface the TUI needs: the board, the calendar
// and the timer all talk to the same database.
type Store interface {
	kanban.Store
	calendar.EventStore
	timer.SessionStore
}

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeNewTask      // New task form is open
	ModeConfirm      // Confirm deletion
)

// Pane identifies which pane has focus.
type Pane int

const (
	PaneBoard Pane = iota
	PaneCalendar
)

// Position is the cursor position on the board.
type Position struct {
	Column int // Index into board.Columns
	Task   int // Index into the column's tasks
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	store  Store
	config *config.Config

	// Engines
	manager   *kanban.Manager
	scheduler *calendar.Scheduler
	engine    *timer.Engine

	// Styles
	styles *Styles

	// State
	date    time.Time     // Anchor date for the calendar pane
	view    dateutil.View // Day or week
	events  []calendar.Event
	cursor  Position
	pane    Pane
	mode    Mode
	loading bool

	// New task form
	formTitle    textinput.Model
	formEstimate int // Index into estimateOptions

	// Confirm state
	confirmTaskID int64

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error
}

// Estimate options for the task form, in minutes.
var estimateOptions = []int{0, 15, 30, 60, 120}

// focusSessionSeconds is the default focus session length.
const focusSessionSeconds = 25 * 60

// New creates a new TUI model.
func New(store Store, cfg *config.Config) *Model {
	formTitle := textinput.New()
	formTitle.Placeholder = "Task title"
	formTitle.CharLimit = 256
	formTitle.Width = 40

	styles := NewStyles()
	formTitle.PlaceholderStyle = styles.FormPlaceholder
	formTitle.TextStyle = styles.FormText

	settings := &calendar.Settings{
		WeekdayStart: cfg.Calendar.WeekdayStart,
		WeekdayEnd:   cfg.Calendar.WeekdayEnd,
		WeekendStart: cfg.Calendar.WeekendStart,
		WeekendEnd:   cfg.Calendar.WeekendEnd,
		SlotDuration: cfg.Calendar.SlotDuration,
	}

	m := &Model{
		store:     store,
		config:    cfg,
		manager:   kanban.NewManager(store),
		scheduler: calendar.NewScheduler(store, settings, nil),
		engine:    timer.NewEngine(store, nil),
		styles:    styles,
		date:      dateutil.TruncateToDay(time.Now()),
		view:      dateutil.ViewDay,
		formTitle: formTitle,
		loading:   true,
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		commands.LoadBoard(m.store),
		commands.LoadEvents(m.scheduler, m.date, m.view),
	}
	if m.engine.State() == timer.StateRunning {
		cmds = append(cmds, commands.TimerTick())
	}
	return tea.Batch(cmds...)
}

// Run starts the TUI.
func Run(store Store, cfg *config.Config) error {
	return RunWithDebug(store, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(store Store, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(store, cfg)

	// Pick up a session left running by a previous process.
	if _, err := model.engine.AdoptActive(context.Background()); err != nil {
		return err
	}

	p := tea.NewProgram(*model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// selectedTask returns the task under the cursor, or nil.
func (m *Model) selectedTask() *kanban.Task {
	board := m.manager.Board()
	if board == nil || m.cursor.Column >= len(board.Columns) {
		return nil
	}
	col := board.Columns[m.cursor.Column]
	if m.cursor.Task >= len(col.Tasks) {
		return nil
	}
	return col.Tasks[m.cursor.Task]
}

// clampCursor keeps the cursor inside the board after mutations.
func (m *Model) clampCursor() {
	board := m.manager.Board()
	if board == nil || len(board.Columns) == 0 {
		m.cursor = Position{}
		return
	}
	if m.cursor.Column >= len(board.Columns) {
		m.cursor.Column = len(board.Columns) - 1
	}
	if m.cursor.Column < 0 {
		m.cursor.Column = 0
	}
	col := board.Columns[m.cursor.Column]
	if m.cursor.Task >= len(col.Tasks) {
		m.cursor.Task = len(col.Tasks) - 1
	}
	if m.cursor.Task < 0 {
		m.cursor.Task = 0
	}
}
