package store

import "github.com/pdxmph/tasks-tui/internal/task"

// Memory is a non-durable backend used when no real store can be
// opened. Everything is lost on exit.
type Memory struct {
	tasks []task.Task
}

// NewMemory creates a new in-memory backend
func NewMemory() *Memory {
	return &Memory{tasks: []task.Task{}}
}

// Name returns the backend identifier
func (s *Memory) Name() string {
	return "memory"
}

// Load returns the held list.
func (s *Memory) Load() ([]task.Task, error) {
	return s.tasks, nil
}

// Save replaces the held list.
func (s *Memory) Save(tasks []task.Task) error {
	s.tasks = make([]task.Task, len(tasks))
	copy(s.tasks, tasks)
	return nil
}

// Close is a no-op for the memory backend.
func (s *Memory) Close() error {
	return nil
}

// Register the memory backend
func init() {
	Register("memory", func(string) (Store, error) { return NewMemory(), nil })
}
