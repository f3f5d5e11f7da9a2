package store

import (
	"path/filepath"
	"testing"
)

func TestBuiltinBackendsRegistered(t *testing.T) {
	registered := make(map[string]bool)
	for _, name := range ListBackends() {
		registered[name] = true
	}

	for _, name := range []string{"json", "sqlite", "memory"} {
		if !registered[name] {
			t.Errorf("Expected backend %s to be registered", name)
		}
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	factory := func(string) (Store, error) { return NewMemory(), nil }

	if err := r.Register("dup", factory); err != nil {
		t.Fatalf("First register failed: %v", err)
	}
	if err := r.Register("dup", factory); err == nil {
		t.Error("Expected error registering duplicate backend")
	}
}

func TestCreateUnknownBackend(t *testing.T) {
	if _, err := CreateBackend("etcd", ""); err == nil {
		t.Error("Expected error for unregistered backend")
	}
}

func TestOpenConfiguredBackend(t *testing.T) {
	s, err := Open("json", filepath.Join(t.TempDir(), "tasks.json"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if s.Name() != "json" {
		t.Errorf("Expected json backend, got %s", s.Name())
	}
}

func TestOpenUnknownBackendFails(t *testing.T) {
	if _, err := Open("etcd", ""); err == nil {
		t.Error("Expected error for explicitly configured unknown backend")
	}
}

func TestFixtures(t *testing.T) {
	s := NewMemory()
	if err := WriteFixtures(s); err != nil {
		t.Fatalf("WriteFixtures failed: %v", err)
	}

	tasks, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tasks) == 0 {
		t.Fatal("Expected fixtures to seed tasks")
	}

	var completed int
	for _, task := range tasks {
		if task.ID == "" {
			t.Error("Fixture task missing ID")
		}
		if task.Deadline == nil {
			t.Errorf("Fixture task %q missing deadline", task.Text)
		}
		if task.Completed {
			completed++
		}
	}
	if completed == 0 {
		t.Error("Expected some completed fixture tasks")
	}
}
