package notify

import "fmt"

// NoopNotifier is a backend that does nothing, used when no desktop
// notifier is available. Callers fall back to the in-app toast.
type NoopNotifier struct{}

// NewNoopNotifier creates a new no-op backend
func NewNoopNotifier() Notifier {
	return &NoopNotifier{}
}

// Name returns the backend identifier
func (n *NoopNotifier) Name() string {
	return "noop"
}

// IsEnabled always returns false for the noop backend
func (n *NoopNotifier) IsEnabled() bool {
	return false
}

// Push returns an error indicating no notifier is available
func (n *NoopNotifier) Push(title, body string) error {
	return fmt.Errorf("no notifier available")
}

// Register the noop backend
func init() {
	Register("noop", func() Notifier { return NewNoopNotifier() })
}
