package tui

import "github.com/charmbracelet/lipgloss"

// Default column width for board columns.
const defaultColWidth = 24

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	Title           lipgloss.Style
	ColumnTitle     lipgloss.Style
	ColumnBox       lipgloss.Style
	FocusedBox      lipgloss.Style
	Task            lipgloss.Style
	TaskSelected    lipgloss.Style
	TaskDone        lipgloss.Style
	EventLine       lipgloss.Style
	EventTask       lipgloss.Style
	SlotTime        lipgloss.Style
	TimerRunning    lipgloss.Style
	TimerPaused     lipgloss.Style
	TimerDone       lipgloss.Style
	Status          lipgloss.Style
	Help            lipgloss.Style
	FormBox         lipgloss.Style
	FormLabel       lipgloss.Style
	FormText        lipgloss.Style
	FormPlaceholder lipgloss.Style
}

// NewStyles creates the style set.
func NewStyles() *Styles {
	var (
		accent = lipgloss.Color("12")
		muted  = lipgloss.Color("8")
		green  = lipgloss.Color("10")
		yellow = lipgloss.Color("11")
		border = lipgloss.Color("8")
	)

	return &Styles{
		Title:           lipgloss.NewStyle().Bold(true),
		ColumnTitle:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		ColumnBox:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1).Width(defaultColWidth),
		FocusedBox:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1).Width(defaultColWidth),
		Task:            lipgloss.NewStyle(),
		TaskSelected:    lipgloss.NewStyle().Reverse(true),
		TaskDone:        lipgloss.NewStyle().Faint(true).Strikethrough(true),
		EventLine:       lipgloss.NewStyle(),
		EventTask:       lipgloss.NewStyle().Foreground(accent),
		SlotTime:        lipgloss.NewStyle().Foreground(muted),
		TimerRunning:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		TimerPaused:     lipgloss.NewStyle().Bold(true).Foreground(yellow),
		TimerDone:       lipgloss.NewStyle().Bold(true).Foreground(green),
		Status:          lipgloss.NewStyle().Foreground(yellow),
		Help:            lipgloss.NewStyle().Foreground(muted),
		FormBox:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2),
		FormLabel:       lipgloss.NewStyle().Bold(true),
		FormText:        lipgloss.NewStyle(),
		FormPlaceholder: lipgloss.NewStyle().Foreground(muted),
	}
}
