package store

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdxmph/tasks-tui/internal/task"
)

// SQLite stores the task list in a sqlite database. The whole list is
// still the unit of persistence: Save replaces the table contents in
// one transaction.
type SQLite struct {
	conn *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS tasks (
    id TEXT PRIMARY KEY,
    text TEXT NOT NULL,
    deadline TIMESTAMP,
    category TEXT NOT NULL DEFAULT 'General',
    completed BOOLEAN NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks (completed);
CREATE INDEX IF NOT EXISTS idx_tasks_deadline ON tasks (deadline);
`

// NewSQLite opens (or creates) a sqlite backend at the given path.
func NewSQLite(path string) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite store needs a path")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &SQLite{conn: conn}

	if _, err := conn.Exec(sqliteSchema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	if err := s.runMigrations(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// runMigrations applies any pending schema migrations.
func (s *SQLite) runMigrations() error {
	// Databases created before categories existed lack the column.
	var count int
	err := s.conn.QueryRow(`
		SELECT COUNT(*)
		FROM pragma_table_info('tasks')
		WHERE name = 'category'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking for category column: %w", err)
	}

	if count == 0 {
		log.Println("Running migration: Adding category column...")
		_, err = s.conn.Exec(`ALTER TABLE tasks ADD COLUMN category TEXT NOT NULL DEFAULT 'General'`)
		if err != nil {
			return fmt.Errorf("adding category column: %w", err)
		}
	}

	return nil
}

// Name returns the backend identifier
func (s *SQLite) Name() string {
	return "sqlite"
}

// Load reads all tasks in insertion order.
func (s *SQLite) Load() ([]task.Task, error) {
	rows, err := s.conn.Query(`
		SELECT id, text, deadline, category, completed, created_at
		FROM tasks
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		var t task.Task
		var deadline sql.NullTime
		if err := rows.Scan(&t.ID, &t.Text, &deadline, &t.Category, &t.Completed, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		if deadline.Valid {
			d := deadline.Time
			t.Deadline = &d
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Save replaces the table contents with the given list.
func (s *SQLite) Save(tasks []task.Task) error {
	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clearing tasks: %w", err)
	}

	insert := `
		INSERT INTO tasks (id, text, deadline, category, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for _, t := range tasks {
		var deadline sql.NullTime
		if t.Deadline != nil {
			deadline = sql.NullTime{Time: *t.Deadline, Valid: true}
		}
		if _, err := tx.Exec(insert, t.ID, t.Text, deadline, t.Category, t.Completed, t.CreatedAt); err != nil {
			return fmt.Errorf("inserting task: %w", err)
		}
	}

	return tx.Commit()
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.conn.Close()
}

// Register the sqlite backend
func init() {
	Register("sqlite", func(path string) (Store, error) { return NewSQLite(path) })
}
