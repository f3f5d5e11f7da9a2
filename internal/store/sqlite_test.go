package store

import (
	"path/filepath"
	"testing"
)

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")
	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	defer s.Close()

	want := sampleTasks()
	if err := s.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	assertTasksEqual(t, want, got)
}

func TestSQLiteSaveReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")
	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	defer s.Close()

	tasks := sampleTasks()
	if err := s.Save(tasks); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Save again with one task removed; the store must not keep the other
	if err := s.Save(tasks[:1]); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 task after replace, got %d", len(got))
	}
	if got[0].ID != tasks[0].ID {
		t.Errorf("Expected task %s, got %s", tasks[0].ID, got[0].ID)
	}
}

func TestSQLiteEmptyDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")
	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	defer s.Close()

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected empty list from fresh database, got %d", len(got))
	}
}
