package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/pdxmph/tasks-tui/internal/notify"
	"github.com/pdxmph/tasks-tui/internal/store"
	"github.com/pdxmph/tasks-tui/internal/task"
)

// recordingNotifier captures pushes so tests can assert dispatch
type recordingNotifier struct {
	pushes []string
	fail   bool
}

func (r *recordingNotifier) Name() string    { return "recorder" }
func (r *recordingNotifier) IsEnabled() bool { return true }

func (r *recordingNotifier) Push(title, body string) error {
	if r.fail {
		return fmt.Errorf("push refused")
	}
	r.pushes = append(r.pushes, body)
	return nil
}

func (r *recordingNotifier) reset() {
	r.pushes = nil
	r.fail = false
}

// Shared instance: the registry hands out the same recorder so tests
// can inspect what the model dispatched.
var testNotifier = &recordingNotifier{}

func init() {
	notify.Register("recorder", func() notify.Notifier { return testNotifier })
}

func newTestModel(t *testing.T) (Model, *task.Tracker) {
	t.Helper()
	testNotifier.reset()

	tracker := task.NewTracker(store.NewMemory())
	if err := tracker.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	notifier, err := notify.NewManager("recorder")
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	m, err := New(tracker, notifier, time.Minute)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	m.width = 80
	m.height = 30
	return *m, tracker
}

func TestToastRearmsDismissTimer(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = m.showToast("first")
	firstSeq := m.toastSeq
	m, _ = m.showToast("second")
	secondSeq := m.toastSeq

	// The first toast's dismiss timer fires after it was replaced;
	// the newer toast must survive
	updated, _ := m.Update(toastExpiredMsg{seq: firstSeq})
	m = updated.(Model)
	if m.toast != "second" {
		t.Errorf("Stale dismiss timer cleared the newer toast, got %q", m.toast)
	}

	updated, _ = m.Update(toastExpiredMsg{seq: secondSeq})
	m = updated.(Model)
	if m.toast != "" {
		t.Errorf("Expected toast dismissed by its own timer, got %q", m.toast)
	}
}

func TestRemindersNotifyOncePerTask(t *testing.T) {
	m, tracker := newTestModel(t)

	if _, err := tracker.Add("Pay bills", time.Now().Add(-time.Hour), "Personal"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := tracker.Add("Plan trip", time.Now().Add(48*time.Hour), "Personal"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	updated, _ := m.Update(reminderTickMsg(time.Now()))
	m = updated.(Model)

	if len(testNotifier.pushes) != 1 {
		t.Fatalf("Expected 1 push for the overdue task, got %d", len(testNotifier.pushes))
	}
	if !strings.Contains(testNotifier.pushes[0], "Pay bills") {
		t.Errorf("Expected push for 'Pay bills', got %q", testNotifier.pushes[0])
	}

	// Still overdue on the next tick: no repeat notification
	updated, _ = m.Update(reminderTickMsg(time.Now()))
	m = updated.(Model)

	if len(testNotifier.pushes) != 1 {
		t.Errorf("Expected no repeat push, got %d total", len(testNotifier.pushes))
	}
}

func TestReminderRearmsAfterToggle(t *testing.T) {
	m, tracker := newTestModel(t)

	added, err := tracker.Add("Submit report", time.Now().Add(-time.Hour), "Work")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	updated, _ := m.Update(reminderTickMsg(time.Now()))
	m = updated.(Model)
	if len(testNotifier.pushes) != 1 {
		t.Fatalf("Expected 1 push, got %d", len(testNotifier.pushes))
	}

	// Completing the task stops it being overdue; the tick prunes it
	if _, err := tracker.Toggle(added.ID); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	updated, _ = m.Update(reminderTickMsg(time.Now()))
	m = updated.(Model)
	if len(testNotifier.pushes) != 1 {
		t.Fatalf("Completed task must not notify, got %d pushes", len(testNotifier.pushes))
	}

	// Un-completing makes it overdue again and eligible for another
	// notification
	if _, err := tracker.Toggle(added.ID); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	updated, _ = m.Update(reminderTickMsg(time.Now()))
	m = updated.(Model)
	if len(testNotifier.pushes) != 2 {
		t.Errorf("Expected a fresh push after the task came back overdue, got %d", len(testNotifier.pushes))
	}
}

func TestReminderFallsBackToToast(t *testing.T) {
	m, tracker := newTestModel(t)
	testNotifier.fail = true

	if _, err := tracker.Add("Water plants", time.Now().Add(-time.Hour), "Personal"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	updated, _ := m.Update(reminderTickMsg(time.Now()))
	m = updated.(Model)

	if !strings.Contains(m.toast, "Water plants") {
		t.Errorf("Expected toast fallback naming the task, got %q", m.toast)
	}
}

func TestRenderListSkipsEmptyCompletedGroup(t *testing.T) {
	m, tracker := newTestModel(t)

	added, err := tracker.Add("Review PRs", time.Now().Add(time.Hour), "Work")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	m.filter = task.FilterPending
	out := m.renderList(60, 30)
	if strings.Contains(out, "Completed (0)") {
		t.Error("Empty completed group must not render a heading")
	}

	if _, err := tracker.Toggle(added.ID); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	m.filter = task.FilterAll
	out = m.renderList(60, 30)
	if !strings.Contains(out, "Completed (1)") {
		t.Error("Expected a heading for the completed group")
	}
}
