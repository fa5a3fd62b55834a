package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS boards (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			name       TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS columns (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			board_id INTEGER NOT NULL REFERENCES boards(id),
			name     TEXT NOT NULL,
			position INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS tasks (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			column_id         INTEGER NOT NULL REFERENCES columns(id),
			title             TEXT NOT NULL,
			description       TEXT NOT NULL DEFAULT '',
			position          INTEGER NOT NULL,
			completed         INTEGER NOT NULL DEFAULT 0,
			estimated_minutes INTEGER NOT NULL DEFAULT 0,
			actual_minutes    INTEGER NOT NULL DEFAULT 0,
			created_at        DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS calendar_events (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			task_id  INTEGER REFERENCES tasks(id),
			title    TEXT NOT NULL,
			start_at DATETIME NOT NULL,
			end_at   DATETIME NOT NULL,
			color    TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS timer_sessions (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			task_id          INTEGER NOT NULL REFERENCES tasks(id),
			duration_seconds INTEGER NOT NULL,
			started_at       DATETIME NOT NULL,
			stopped_at       DATETIME
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_column ON tasks(column_id, position);
		CREATE INDEX IF NOT EXISTS idx_events_range ON calendar_events(start_at, end_at);
		CREATE INDEX IF NOT EXISTS idx_sessions_active ON timer_sessions(stopped_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
