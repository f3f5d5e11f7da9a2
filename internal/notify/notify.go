// Package notify dispatches reminder notifications. The desktop
// backend shells out to the host notifier; when none is available the
// caller falls back to an in-app toast. Dispatch failure is never
// fatal.
package notify

// Notifier defines the interface that all notification backends must implement
type Notifier interface {
	// Name returns the backend identifier (e.g. "desktop", "noop")
	Name() string

	// IsEnabled checks if the backend is available on this host
	IsEnabled() bool

	// Push shows a notification with the given title and body
	Push(title, body string) error
}

// Factory is a function that creates a new instance of a Notifier
type Factory func() Notifier
