package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tablero/internal/config"
	"github.com/javiermolinar/tablero/internal/db"
	"github.com/javiermolinar/tablero/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store  *db.SQLite
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given config. The store is
// opened lazily so commands like version never touch the database.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "tablero",
		Short: "A kanban board with a calendar and a focus timer",
		Long: `Tablero is a personal task manager in the terminal.

It combines a kanban board, a slot-based calendar and a focus timer:
organize tasks in columns, schedule them into time slots, and track the
time you actually spend on them.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			return tui.RunWithDebug(a.store, a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.boardCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.doneCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.agendaCmd())
	a.root.AddCommand(a.eventCmd())
	a.root.AddCommand(a.slotsCmd())
	a.root.AddCommand(a.scheduleCmd())
	a.root.AddCommand(a.timerCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("tablero %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureStore opens the SQLite store on first use and seeds the default
// board.
func (a *App) ensureStore() error {
	if a.store != nil {
		return nil
	}
	store, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	if err := store.EnsureDefaultBoard(context.Background()); err != nil {
		_ = store.Close()
		return err
	}
	a.store = store
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the store if it was opened.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
