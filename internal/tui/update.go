package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tablero/internal/timer"
	"github.com/javiermolinar/tablero/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.BoardLoadedMsg:
		m.manager.SetBoard(msg.Board)
		m.loading = false
		m.clampCursor()
		return m, nil

	case commands.EventsLoadedMsg:
		m.events = msg.Events
		return m, nil

	case commands.TimerTickMsg:
		return m.handleTimerTick()

	case commands.ErrMsg:
		LogError("update", msg.Err)
		m.err = msg.Err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		return m, nil

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}

// handleTimerTick advances the countdown. On completion the task is marked
// done, which also moves it to the Done column.
func (m Model) handleTimerTick() (tea.Model, tea.Cmd) {
	if m.engine.State() != timer.StateRunning {
		return m, nil
	}

	ctx := context.Background()
	if err := m.engine.Tick(ctx); err != nil {
		return m, commands.Status(fmt.Sprintf("Error: %v", err))
	}

	if m.engine.State() != timer.StateCompleted {
		return m, commands.TimerTick()
	}

	d := m.engine.Display()
	t, _ := m.manager.Board().FindTask(d.TaskID)
	if t != nil && !t.Completed {
		if err := m.manager.SubmitCompletionToggle(ctx, d.TaskID); err != nil {
			return m, commands.Status(fmt.Sprintf("Error: %v", err))
		}
		m.clampCursor()
	}

	// Reload so the folded session time shows up.
	return m, tea.Batch(
		commands.LoadBoard(m.store),
		commands.Status("Focus session finished"),
	)
}
