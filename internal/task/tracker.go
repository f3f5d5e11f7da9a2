package task

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation errors surfaced to the user as a toast.
var (
	ErrEmptyText       = errors.New("task text cannot be empty")
	ErrMissingDeadline = errors.New("task needs a deadline")
)

// Store persists the full task list. The list is the unit of
// persistence: read once at startup, written after every mutation.
type Store interface {
	Load() ([]Task, error)
	Save([]Task) error
}

// Tracker owns the in-memory task list and keeps it in sync with its
// store. Mutations run synchronously inside UI callbacks; there is no
// concurrent access to guard.
type Tracker struct {
	store Store
	tasks []Task
}

// NewTracker creates a tracker backed by the given store.
func NewTracker(s Store) *Tracker {
	return &Tracker{store: s}
}

// Load reads the persisted list. A store that cannot produce a list
// reports an error; corruption is the store's problem and degrades to
// an empty list there, not here.
func (tr *Tracker) Load() error {
	tasks, err := tr.store.Load()
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	tr.tasks = tasks
	return nil
}

// Tasks returns the current list in insertion order.
func (tr *Tracker) Tasks() []Task {
	return tr.tasks
}

// Add validates, appends a new task, and persists. The zero deadline
// counts as missing.
func (tr *Tracker) Add(text string, deadline time.Time, category string) (Task, error) {
	if strings.TrimSpace(text) == "" {
		return Task{}, ErrEmptyText
	}
	if deadline.IsZero() {
		return Task{}, ErrMissingDeadline
	}

	t := New(text, deadline, category)
	tr.tasks = append(tr.tasks, t)
	if err := tr.persist(); err != nil {
		return t, err
	}
	return t, nil
}

// Toggle flips completion on the matching task and persists. Unknown
// ids are a silent no-op.
func (tr *Tracker) Toggle(id string) (bool, error) {
	for i := range tr.tasks {
		if tr.tasks[i].ID == id {
			tr.tasks[i].Completed = !tr.tasks[i].Completed
			return true, tr.persist()
		}
	}
	return false, nil
}

// Delete removes the matching task and persists. Unknown ids are a
// silent no-op.
func (tr *Tracker) Delete(id string) (bool, error) {
	for i := range tr.tasks {
		if tr.tasks[i].ID == id {
			tr.tasks = append(tr.tasks[:i], tr.tasks[i+1:]...)
			return true, tr.persist()
		}
	}
	return false, nil
}

func (tr *Tracker) persist() error {
	if err := tr.store.Save(tr.tasks); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	return nil
}
