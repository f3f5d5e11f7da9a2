package task

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task is a single to-do entry. Completed is the only field that
// changes after creation.
type Task struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Deadline  *time.Time `json:"deadline"`
	Category  string     `json:"category"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"createdAt"`
}

// DefaultCategory is used when a task is created without one.
const DefaultCategory = "General"

// Categories offered by the add form. Stored data may carry other
// labels; those render with the neutral color.
var Categories = []string{
	DefaultCategory,
	"Work",
	"Study",
	"Personal",
	"Fitness",
}

// Deadline input layouts accepted by the add form.
var deadlineLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// New creates a task with a fresh ID and creation timestamp.
func New(text string, deadline time.Time, category string) Task {
	if strings.TrimSpace(category) == "" {
		category = DefaultCategory
	}
	d := deadline
	return Task{
		ID:        uuid.NewString(),
		Text:      strings.TrimSpace(text),
		Deadline:  &d,
		Category:  category,
		CreatedAt: time.Now(),
	}
}

// ParseDeadline parses a deadline entered as text. A date without a
// time component means end of that day.
func ParseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var firstErr error
	for _, layout := range deadlineLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if layout == "2006-01-02" {
			t = t.Add(23*time.Hour + 59*time.Minute)
		}
		return t, nil
	}
	return time.Time{}, firstErr
}

// IsOverdue reports whether the task is pending with a deadline in
// the past.
func (t Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.Deadline != nil && t.Deadline.Before(now)
}

// IsDueToday reports whether the task is pending with a deadline on
// today's calendar date. A task due earlier today is both overdue and
// due today.
func (t Task) IsDueToday(now time.Time) bool {
	if t.Completed || t.Deadline == nil {
		return false
	}
	y1, m1, d1 := t.Deadline.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDueSoon reports whether the task is pending, not yet overdue, and
// due within the next 24 hours. Styling only; never counted.
func (t Task) IsDueSoon(now time.Time) bool {
	if t.Completed || t.Deadline == nil || t.Deadline.Before(now) {
		return false
	}
	return t.Deadline.Sub(now) <= 24*time.Hour
}
