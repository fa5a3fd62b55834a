// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/tablero/internal/kanban"
)

// SQLite implements kanban.Store, calendar.EventStore and timer.SessionStore.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new SQLite store and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// EnsureDefaultBoard creates the default board with its three columns when
// the database holds no board yet.
func (s *SQLite) EnsureDefaultBoard(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM boards`).Scan(&count); err != nil {
		return fmt.Errorf("counting boards: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `INSERT INTO boards (name, created_at) VALUES (?, ?)`,
		"Personal", s.now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting board: %w", err)
	}
	boardID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting board id: %w", err)
	}

	for i, name := range []string{"To Do", "In Progress", "Done"} {
		_, err := tx.ExecContext(ctx, `INSERT INTO columns (board_id, name, position) VALUES (?, ?, ?)`,
			boardID, name, i+1)
		if err != nil {
			return fmt.Errorf("inserting column %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// GetBoardWithColumns loads the first board with its columns and tasks.
func (s *SQLite) GetBoardWithColumns(ctx context.Context) (*kanban.Board, error) {
	var b kanban.Board
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM boards ORDER BY id LIMIT 1`).
		Scan(&b.ID, &b.Name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no board found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying board: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, position FROM columns WHERE board_id = ? ORDER BY position`, b.ID)
	if err != nil {
		return nil, fmt.Errorf("querying columns: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var c kanban.Column
		if err := rows.Scan(&c.ID, &c.Name, &c.Order); err != nil {
			return nil, fmt.Errorf("scanning column: %w", err)
		}
		b.Columns = append(b.Columns, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating columns: %w", err)
	}

	for _, c := range b.Columns {
		tasks, err := s.tasksInColumn(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		c.Tasks = tasks
	}

	return &b, nil
}

func (s *SQLite) tasksInColumn(ctx context.Context, columnID int64) ([]*kanban.Task, error) {
	query := `
		SELECT id, column_id, title, description, position, completed,
		       estimated_minutes, actual_minutes, created_at
		FROM tasks
		WHERE column_id = ?
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query, columnID)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []*kanban.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*kanban.Task, error) {
	var (
		t         kanban.Task
		createdAt string
	)
	err := row.Scan(
		&t.ID,
		&t.ColumnID,
		&t.Title,
		&t.Description,
		&t.Order,
		&t.Completed,
		&t.EstimatedMinutes,
		&t.ActualMinutes,
		&createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	t.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	return &t, nil
}

// CreateTask appends a task to the end of a column.
func (s *SQLite) CreateTask(ctx context.Context, columnID int64, title, description string, estimatedMinutes int) (*kanban.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("task title is empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var position int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), 0) + 1 FROM tasks WHERE column_id = ?`, columnID).
		Scan(&position)
	if err != nil {
		return nil, fmt.Errorf("computing position: %w", err)
	}

	createdAt := s.now()
	result, err := tx.ExecContext(ctx, `
		INSERT INTO tasks (column_id, title, description, position, completed,
		                   estimated_minutes, actual_minutes, created_at)
		VALUES (?, ?, ?, ?, 0, ?, 0, ?)`,
		columnID, title, description, position, estimatedMinutes,
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting task: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting last insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return &kanban.Task{
		ID:               id,
		ColumnID:         columnID,
		Title:            title,
		Description:      description,
		Order:            position,
		EstimatedMinutes: estimatedMinutes,
		CreatedAt:        createdAt,
	}, nil
}

// GetTask retrieves a task by ID. Returns (nil, nil) when it does not exist.
func (s *SQLite) GetTask(ctx context.Context, id int64) (*kanban.Task, error) {
	query := `
		SELECT id, column_id, title, description, position, completed,
		       estimated_minutes, actual_minutes, created_at
		FROM tasks
		WHERE id = ?
	`
	t, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTask persists a task's mutable fields.
func (s *SQLite) UpdateTask(ctx context.Context, t *kanban.Task) error {
	query := `
		UPDATE tasks
		SET title = ?, description = ?, completed = ?,
		    estimated_minutes = ?, actual_minutes = ?
		WHERE id = ?
	`
	result, err := s.db.ExecContext(ctx, query,
		t.Title, t.Description, t.Completed, t.EstimatedMinutes, t.ActualMinutes, t.ID)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("task %d not found", t.ID)
	}
	return nil
}

// MoveTask relocates a task to a 1-based position in a column and rewrites
// the positions of both affected columns to dense sequences.
func (s *SQLite) MoveTask(ctx context.Context, m kanban.Move) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var fromColumn int64
	err = tx.QueryRowContext(ctx, `SELECT column_id FROM tasks WHERE id = ?`, m.TaskID).
		Scan(&fromColumn)
	if err == sql.ErrNoRows {
		return fmt.Errorf("task %d not found", m.TaskID)
	}
	if err != nil {
		return fmt.Errorf("querying task: %w", err)
	}

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM columns WHERE id = ?`, m.ToColumnID).
		Scan(&exists)
	if err != nil {
		return fmt.Errorf("querying column: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("column %d not found", m.ToColumnID)
	}

	// Build the target column's order with the task at the requested slot,
	// then rewrite positions from scratch.
	targetIDs, err := columnTaskIDs(ctx, tx, m.ToColumnID)
	if err != nil {
		return err
	}
	targetIDs = removeID(targetIDs, m.TaskID)

	idx := m.ToOrder - 1
	if idx < 0 {
		idx = 0
	}
	if idx > len(targetIDs) {
		idx = len(targetIDs)
	}
	targetIDs = append(targetIDs, 0)
	copy(targetIDs[idx+1:], targetIDs[idx:])
	targetIDs[idx] = m.TaskID

	if _, err := tx.ExecContext(ctx, `UPDATE tasks SET column_id = ? WHERE id = ?`,
		m.ToColumnID, m.TaskID); err != nil {
		return fmt.Errorf("moving task: %w", err)
	}

	if err := renumberIDs(ctx, tx, targetIDs); err != nil {
		return err
	}

	if fromColumn != m.ToColumnID {
		sourceIDs, err := columnTaskIDs(ctx, tx, fromColumn)
		if err != nil {
			return err
		}
		if err := renumberIDs(ctx, tx, removeID(sourceIDs, m.TaskID)); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// DeleteTask removes a task and closes the order gap it leaves.
func (s *SQLite) DeleteTask(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var columnID int64
	err = tx.QueryRowContext(ctx, `SELECT column_id FROM tasks WHERE id = ?`, id).
		Scan(&columnID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("task %d not found", id)
	}
	if err != nil {
		return fmt.Errorf("querying task: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM calendar_events WHERE task_id = ?`, id); err != nil {
		return fmt.Errorf("deleting task events: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM timer_sessions WHERE task_id = ?`, id); err != nil {
		return fmt.Errorf("deleting task sessions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	ids, err := columnTaskIDs(ctx, tx, columnID)
	if err != nil {
		return err
	}
	if err := renumberIDs(ctx, tx, ids); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// columnTaskIDs returns a column's task ids in position order.
func columnTaskIDs(ctx context.Context, tx *sql.Tx, columnID int64) ([]int64, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id FROM tasks WHERE column_id = ? ORDER BY position`, columnID)
	if err != nil {
		return nil, fmt.Errorf("querying column tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning task id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task ids: %w", err)
	}
	return ids, nil
}

// renumberIDs rewrites positions to 1..N in the given order.
func renumberIDs(ctx context.Context, tx *sql.Tx, ids []int64) error {
	for i, id := range ids {
		if _, err := tx.ExecContext(ctx,
			`UPDATE tasks SET position = ? WHERE id = ?`, i+1, id); err != nil {
			return fmt.Errorf("renumbering task %d: %w", id, err)
		}
	}
	return nil
}

func removeID(ids []int64, id int64) []int64 {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// parseTimestamp parses a timestamp string in formats SQLite might return.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %s", s)
}
