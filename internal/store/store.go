// Package store provides the persistence backends for the task list.
// Backends register themselves at init time; the Manager picks one
// from config or falls back through a preference order.
package store

import "github.com/pdxmph/tasks-tui/internal/task"

// Store persists the full task list. Save always writes the complete
// list; there are no partial updates.
type Store interface {
	// Name returns the backend identifier (e.g. "json", "sqlite").
	Name() string

	// Load reads the persisted list. A missing or unreadable store
	// yields an empty list, never an error shown to the user.
	Load() ([]task.Task, error)

	// Save writes the complete list, replacing whatever was stored.
	Save([]task.Task) error

	// Close releases any underlying resources.
	Close() error
}

// Factory creates a backend rooted at the given path.
type Factory func(path string) (Store, error)
