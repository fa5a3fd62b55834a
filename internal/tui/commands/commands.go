// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tablero/internal/calendar"
	"github.com/javiermolinar/tablero/internal/dateutil"
	"github.com/javiermolinar/tablero/internal/kanban"
)

// BoardLoadedMsg is sent when the board is loaded.
type BoardLoadedMsg struct {
	Board *kanban.Board
}

// EventsLoadedMsg is sent when the calendar events for the visible range are
// loaded.
type EventsLoadedMsg struct {
	Events []calendar.Event
}

// TimerTickMsg is sent once per second while a timer session runs.
type TimerTickMsg struct{}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadBoard fetches the board with its columns and tasks.
func LoadBoard(store kanban.Store) tea.Cmd {
	return func() tea.Msg {
		board, err := store.GetBoardWithColumns(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return BoardLoadedMsg{Board: board}
	}
}

// LoadEvents fetches the events for the view containing date.
func LoadEvents(scheduler *calendar.Scheduler, date time.Time, view dateutil.View) tea.Cmd {
	return func() tea.Msg {
		events, err := scheduler.Load(context.Background(), date, view)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return EventsLoadedMsg{Events: events}
	}
}

// TimerTick schedules the next countdown tick one second from now.
func TimerTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return TimerTickMsg{}
	})
}

// Status shows a temporary status message.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}
