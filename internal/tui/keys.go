package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tablero/internal/dateutil"
	"github.com/javiermolinar/tablero/internal/kanban"
	"github.com/javiermolinar/tablero/internal/timer"
	"github.com/javiermolinar/tablero/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModeNewTask:
		return m.handleNewTaskKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	board := m.manager.Board()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab":
		if m.pane == PaneBoard {
			m.pane = PaneCalendar
		} else {
			m.pane = PaneBoard
		}

	// Cursor navigation
	case "h", "left":
		if m.cursor.Column > 0 {
			m.cursor.Column--
			m.clampCursor()
		}
	case "l", "right":
		if board != nil && m.cursor.Column < len(board.Columns)-1 {
			m.cursor.Column++
			m.clampCursor()
		}
	case "j", "down":
		m.cursor.Task++
		m.clampCursor()
	case "k", "up":
		if m.cursor.Task > 0 {
			m.cursor.Task--
		}

	// Task movement
	case "J":
		return m.moveSelected(0, 1)
	case "K":
		return m.moveSelected(0, -1)
	case "H":
		return m.moveSelected(-1, 0)
	case "L":
		return m.moveSelected(1, 0)

	case " ", "x":
		t := m.selectedTask()
		if t == nil {
			break
		}
		if err := m.manager.SubmitCompletionToggle(context.Background(), t.ID); err != nil {
			return m, commands.Status(fmt.Sprintf("Error: %v", err))
		}
		m.clampCursor()

	case "n":
		m.mode = ModeNewTask
		m.formTitle.SetValue("")
		m.formTitle.Focus()
		m.formEstimate = 0
		return m, nil

	case "d":
		t := m.selectedTask()
		if t == nil {
			break
		}
		m.mode = ModeConfirm
		m.confirmTaskID = t.ID
		return m, nil

	case "s":
		t := m.selectedTask()
		if t == nil {
			break
		}
		if err := m.scheduler.ScheduleTaskNow(context.Background(), t.ID, t.EstimatedMinutes); err != nil {
			return m, commands.Status(fmt.Sprintf("Error: %v", err))
		}
		return m, tea.Batch(
			commands.LoadEvents(m.scheduler, m.date, m.view),
			commands.Status(fmt.Sprintf("Scheduled %q", t.Title)),
		)

	// Timer control
	case "t":
		return m.handleTimerKey()
	case "T":
		if m.engine.State() == timer.StateIdle {
			break
		}
		if m.engine.State() == timer.StateCompleted {
			m.engine.Reset()
			break
		}
		if err := m.engine.Stop(context.Background()); err != nil {
			return m, commands.Status(fmt.Sprintf("Error: %v", err))
		}
		return m, tea.Batch(commands.LoadBoard(m.store), commands.Status("Timer stopped"))

	// Calendar navigation
	case "[":
		m.date = m.date.AddDate(0, 0, -m.viewStep())
		return m, commands.LoadEvents(m.scheduler, m.date, m.view)
	case "]":
		m.date = m.date.AddDate(0, 0, m.viewStep())
		return m, commands.LoadEvents(m.scheduler, m.date, m.view)
	case "v":
		if m.view == dateutil.ViewDay {
			m.view = dateutil.ViewWeek
		} else {
			m.view = dateutil.ViewDay
		}
		return m, commands.LoadEvents(m.scheduler, m.date, m.view)

	case "y":
		text := stripANSI(m.renderAgendaText())
		if err := clipboard.WriteAll(text); err != nil {
			return m, commands.Status(fmt.Sprintf("Error: %v", err))
		}
		return m, commands.Status("Agenda copied to clipboard")

	case "r":
		m.loading = true
		return m, tea.Batch(
			commands.LoadBoard(m.store),
			commands.LoadEvents(m.scheduler, m.date, m.view),
		)
	}

	return m, nil
}

// viewStep returns how many days [ and ] jump.
func (m Model) viewStep() int {
	if m.view == dateutil.ViewWeek {
		return 7
	}
	return 1
}

// moveSelected moves the task under the cursor by column and row deltas.
func (m Model) moveSelected(dCol, dRow int) (tea.Model, tea.Cmd) {
	board := m.manager.Board()
	t := m.selectedTask()
	if board == nil || t == nil {
		return m, nil
	}

	targetCol := m.cursor.Column + dCol
	if targetCol < 0 || targetCol >= len(board.Columns) {
		return m, nil
	}
	col := board.Columns[targetCol]

	order := t.Order + dRow
	if dCol != 0 {
		// Crossing columns keeps the same row, clamped by ApplyMove.
		order = m.cursor.Task + 1
	}

	if err := m.manager.SubmitMove(context.Background(), kanban.Move{
		TaskID:     t.ID,
		ToColumnID: col.ID,
		ToOrder:    order,
	}); err != nil {
		return m, commands.Status(fmt.Sprintf("Error: %v", err))
	}

	// Follow the task with the cursor.
	_, at := m.manager.Board().FindTask(t.ID)
	if at != nil {
		for i, c := range m.manager.Board().Columns {
			if c.ID == at.ID {
				m.cursor.Column = i
			}
		}
		moved, _ := m.manager.Board().FindTask(t.ID)
		m.cursor.Task = moved.Order - 1
	}
	m.clampCursor()
	return m, nil
}

// handleTimerKey starts, pauses or resumes the focus timer for the selected
// task.
func (m Model) handleTimerKey() (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch m.engine.State() {
	case timer.StateRunning:
		if err := m.engine.Pause(ctx); err != nil {
			return m, commands.Status(fmt.Sprintf("Error: %v", err))
		}
		return m, tea.Batch(commands.LoadBoard(m.store), commands.Status("Timer paused"))

	case timer.StatePaused:
		if err := m.engine.Resume(ctx); err != nil {
			return m, commands.Status(fmt.Sprintf("Error: %v", err))
		}
		return m, tea.Batch(commands.TimerTick(), commands.Status("Timer resumed"))

	case timer.StateCompleted:
		m.engine.Reset()
		return m, nil

	default:
		t := m.selectedTask()
		if t == nil {
			return m, commands.Status("No task selected")
		}
		seconds := focusSessionSeconds
		if t.EstimatedMinutes > 0 {
			seconds = t.EstimatedMinutes * 60
		}
		if err := m.engine.Start(ctx, t.ID, seconds); err != nil {
			return m, commands.Status(fmt.Sprintf("Error: %v", err))
		}
		return m, tea.Batch(commands.TimerTick(), commands.Status(fmt.Sprintf("Focusing on %q", t.Title)))
	}
}

// handleNewTaskKeys handles the new task form.
func (m Model) handleNewTaskKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.formTitle.Blur()
		return m, nil

	case "tab", "shift+tab":
		if msg.String() == "tab" {
			m.formEstimate = (m.formEstimate + 1) % len(estimateOptions)
		} else {
			m.formEstimate = (m.formEstimate + len(estimateOptions) - 1) % len(estimateOptions)
		}
		return m, nil

	case "enter":
		title := strings.TrimSpace(m.formTitle.Value())
		if title == "" {
			return m, commands.Status("Title cannot be empty")
		}
		board := m.manager.Board()
		if board == nil || len(board.Columns) == 0 {
			return m, commands.Status("No column to add to")
		}
		col := board.Columns[m.cursor.Column]
		_, err := m.manager.SubmitCreate(context.Background(), col.ID, title, "", estimateOptions[m.formEstimate])
		if err != nil {
			return m, commands.Status(fmt.Sprintf("Error: %v", err))
		}
		m.mode = ModeNormal
		m.formTitle.Blur()
		m.cursor.Task = len(col.Tasks)
		m.clampCursor()
		return m, commands.Status(fmt.Sprintf("Created %q in %s", title, col.Name))
	}

	var cmd tea.Cmd
	m.formTitle, cmd = m.formTitle.Update(msg)
	return m, cmd
}

// handleConfirmKeys handles the delete confirmation.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		id := m.confirmTaskID
		m.mode = ModeNormal
		if err := m.manager.SubmitDelete(context.Background(), id); err != nil {
			return m, commands.Status(fmt.Sprintf("Error: %v", err))
		}
		m.clampCursor()
		return m, tea.Batch(
			commands.LoadEvents(m.scheduler, m.date, m.view),
			commands.Status("Task deleted"),
		)
	default:
		m.mode = ModeNormal
		return m, nil
	}
}
