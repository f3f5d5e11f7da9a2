package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdxmph/tasks-tui/internal/task"
)

// JSONFile stores the task list as a single JSON array in one file.
// Each record is {id, text, deadline, category, completed, createdAt}
// with ISO-8601 dates. This is the default backend.
type JSONFile struct {
	path string
}

// NewJSONFile creates a JSON file backend at the given path.
func NewJSONFile(path string) (*JSONFile, error) {
	if path == "" {
		return nil, fmt.Errorf("json store needs a path")
	}
	return &JSONFile{path: path}, nil
}

// Name returns the backend identifier
func (s *JSONFile) Name() string {
	return "json"
}

// Load reads the stored list. A missing or unparsable file degrades
// silently to an empty list; corruption never reaches the user.
func (s *JSONFile) Load() ([]task.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []task.Task{}, nil
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return []task.Task{}, nil
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	return tasks, nil
}

// Save writes the complete list, creating the directory if needed.
func (s *JSONFile) Save(tasks []task.Task) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}

	// WriteFile closes with error checking, so a failed flush on a
	// full disk cannot report success
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing store file: %w", err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (s *JSONFile) Close() error {
	return nil
}

// Register the json backend
func init() {
	Register("json", func(path string) (Store, error) { return NewJSONFile(path) })
}
