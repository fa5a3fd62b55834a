package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/tablero/internal/calendar"
	"github.com/javiermolinar/tablero/internal/dateutil"
	"github.com/javiermolinar/tablero/internal/kanban"
	"github.com/javiermolinar/tablero/internal/timer"
)

// View renders the TUI.
func (m Model) View() string {
	if m.loading {
		return "Loading..."
	}

	board := m.renderBoard()
	agenda := m.renderCalendar()
	main := lipgloss.JoinHorizontal(lipgloss.Top, board, " ", agenda)

	sections := []string{
		m.styles.Title.Render(" tablero "),
		main,
		m.renderFooter(),
	}
	if m.mode == ModeNewTask {
		sections = append(sections, m.renderNewTaskForm())
	}
	if m.mode == ModeConfirm {
		sections = append(sections, m.styles.FormBox.Render("Delete this task? (y/n)"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderBoard draws the columns side by side.
func (m Model) renderBoard() string {
	board := m.manager.Board()
	if board == nil {
		return "No board"
	}

	cols := make([]string, 0, len(board.Columns))
	for ci, col := range board.Columns {
		var b strings.Builder
		b.WriteString(m.styles.ColumnTitle.Render(fmt.Sprintf("%s (%d)", col.Name, len(col.Tasks))))
		b.WriteString("\n")

		for ti, t := range col.Tasks {
			line := taskLine(t, m.engine)
			switch {
			case m.pane == PaneBoard && ci == m.cursor.Column && ti == m.cursor.Task:
				line = m.styles.TaskSelected.Render(line)
			case t.Completed:
				line = m.styles.TaskDone.Render(line)
			default:
				line = m.styles.Task.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}

		box := m.styles.ColumnBox
		if m.pane == PaneBoard && ci == m.cursor.Column {
			box = m.styles.FocusedBox
		}
		cols = append(cols, box.Render(strings.TrimRight(b.String(), "\n")))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// taskLine renders one board row, truncated to the column width.
func taskLine(t *kanban.Task, engine *timer.Engine) string {
	marker := "○"
	if t.Completed {
		marker = "✓"
	}
	d := engine.Display()
	if d.TaskID == t.ID && (d.State == timer.StateRunning || d.State == timer.StatePaused) {
		marker = "◉"
	}

	line := fmt.Sprintf("%s %s", marker, t.Title)
	if t.EstimatedMinutes > 0 {
		line += fmt.Sprintf(" (%dm)", t.EstimatedMinutes)
	}
	return ansi.Truncate(line, defaultColWidth-2, "…")
}

// renderCalendar draws the agenda pane for the current date and view.
func (m Model) renderCalendar() string {
	box := m.styles.ColumnBox.Width(36)
	if m.pane == PaneCalendar {
		box = m.styles.FocusedBox.Width(36)
	}
	return box.Render(m.renderAgendaText())
}

// renderAgendaText builds the agenda as plain lines, one day per section.
// Slots without events are skipped in week view to keep it readable.
func (m Model) renderAgendaText() string {
	var b strings.Builder
	settings := m.scheduler.Settings()

	for di, day := range dateutil.ViewDays(m.date, m.view) {
		if di > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.styles.ColumnTitle.Render(day.Format("Mon Jan 2")))
		b.WriteString("\n")

		slots := calendar.GenerateSlots(settings, day)
		printed := 0
		for _, slot := range slots {
			inSlot := calendar.EventsForSlot(m.events, day, slot, settings.SlotDuration)
			if len(inSlot) == 0 {
				if m.view == dateutil.ViewDay {
					b.WriteString(m.styles.SlotTime.Render(slot.Time))
					b.WriteString("\n")
				}
				continue
			}
			for i := range inSlot {
				e := &inSlot[i]
				info := calendar.DisplayInfo(e, day, slot, settings.SlotDuration)
				label := "│"
				if info.StartsInSlot {
					label = e.Title
				}
				style := m.styles.EventLine
				if e.IsTaskBased {
					style = m.styles.EventTask
				}
				b.WriteString(fmt.Sprintf("%s %s\n",
					m.styles.SlotTime.Render(slot.Time),
					style.Render(ansi.Truncate(label, 28, "…"))))
				printed++
			}
		}
		if printed == 0 && m.view == dateutil.ViewWeek {
			b.WriteString(m.styles.SlotTime.Render("(nothing scheduled)"))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderFooter shows the timer, the status message and the key help.
func (m Model) renderFooter() string {
	parts := []string{m.renderTimer()}
	if m.statusMsg != "" {
		parts = append(parts, m.styles.Status.Render(m.statusMsg))
	}
	parts = append(parts, m.styles.Help.Render(
		"n:new  space:done  JKHL:move  s:schedule  t:timer  []:date  v:view  y:copy  q:quit"))
	return strings.Join(parts, "  ")
}

// renderTimer shows the countdown for the active session.
func (m Model) renderTimer() string {
	d := m.engine.Display()
	switch d.State {
	case timer.StateRunning:
		return m.styles.TimerRunning.Render(fmt.Sprintf("▶ %s %s", d.Clock(), progressBar(d.Progress(), 10)))
	case timer.StatePaused:
		return m.styles.TimerPaused.Render(fmt.Sprintf("⏸ %s", d.Clock()))
	case timer.StateCompleted:
		return m.styles.TimerDone.Render("✔ Session done")
	default:
		return m.styles.Help.Render("timer idle")
	}
}

// progressBar renders a simple filled/empty bar for the elapsed fraction.
func progressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// renderNewTaskForm draws the task creation modal.
func (m Model) renderNewTaskForm() string {
	estimate := "none"
	if estimateOptions[m.formEstimate] > 0 {
		estimate = fmt.Sprintf("%dm", estimateOptions[m.formEstimate])
	}
	content := fmt.Sprintf("%s\n%s\n\n%s %s\n\n%s",
		m.styles.FormLabel.Render("New task"),
		m.formTitle.View(),
		m.styles.FormLabel.Render("Estimate:"),
		estimate,
		m.styles.Help.Render("enter:create  tab:estimate  esc:cancel"))
	return m.styles.FormBox.Render(content)
}

// stripANSI removes escape sequences so copied text is plain.
func stripANSI(s string) string {
	return ansi.Strip(s)
}
