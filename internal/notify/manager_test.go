package notify

import "testing"

func TestNoopManagerPushFails(t *testing.T) {
	m, err := NewManager("noop")
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	// The caller relies on this error to trigger the toast fallback
	if err := m.Push("Task overdue", "Pay bills"); err == nil {
		t.Error("Expected noop notifier to report failure")
	}
	if m.IsEnabled() {
		t.Error("Noop notifier must report disabled")
	}
}

func TestAutoSelectionNeverFails(t *testing.T) {
	m, err := NewManager("")
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	if m.Name() == "" {
		t.Error("Expected a backend to be selected")
	}
}

func TestUnknownNotifier(t *testing.T) {
	if _, err := NewManager("pager-duty"); err == nil {
		t.Error("Expected error for unregistered notifier")
	}
}
