package notify

import "fmt"

// Manager handles notifier selection and dispatch
type Manager struct {
	notifier Notifier
}

// NewManager creates a manager with the specified backend. If
// backendName is empty, it tries backends in order of preference and
// settles on noop when nothing is available.
func NewManager(backendName string) (*Manager, error) {
	var notifier Notifier
	var err error

	if backendName != "" {
		notifier, err = CreateNotifier(backendName)
		if err != nil {
			return nil, fmt.Errorf("creating notifier %s: %w", backendName, err)
		}
	} else {
		preference := []string{"desktop", "noop"}

		for _, name := range preference {
			n, err := CreateNotifier(name)
			if err != nil {
				continue
			}

			if n.IsEnabled() {
				notifier = n
				break
			}
		}

		if notifier == nil || !notifier.IsEnabled() {
			notifier, _ = CreateNotifier("noop")
		}
	}

	return &Manager{notifier: notifier}, nil
}

// Push dispatches a notification through the selected backend. The
// caller is expected to fall back to a toast on error.
func (m *Manager) Push(title, body string) error {
	return m.notifier.Push(title, body)
}

// Name returns the name of the current backend
func (m *Manager) Name() string {
	return m.notifier.Name()
}

// IsEnabled returns whether the current backend is enabled
func (m *Manager) IsEnabled() bool {
	return m.notifier.IsEnabled()
}
