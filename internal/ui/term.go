package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Column headers: bold
	colorHeader = color.New(color.Bold)

	// Completed tasks: dim/grey
	colorDone = color.New(color.FgWhite, color.Faint)

	// Active timer and in-progress work: cyan
	colorActive = color.New(color.FgCyan, color.Bold)

	// Tracked time and positive metrics: green
	colorStats = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatDone formats a completed task line.
func formatDone(s string) string {
	return colorDone.Sprint(s)
}

// formatActive formats text tied to the running timer.
func formatActive(s string) string {
	return colorActive.Sprint(s)
}

// formatStats formats text for statistics.
func formatStats(s string) string {
	return colorStats.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
