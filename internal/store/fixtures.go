package store

import (
	"fmt"
	"time"

	"github.com/pdxmph/tasks-tui/internal/task"
)

// WriteFixtures seeds a store with realistic sample tasks covering
// every display state: overdue, due today, due soon, far out, no
// rush, and completed.
func WriteFixtures(s Store) error {
	now := time.Now()
	deadline := func(d time.Duration) time.Time { return now.Add(d) }

	fixtures := []task.Task{
		{
			Text:     "Pay electricity bill",
			Deadline: ptr(deadline(-36 * time.Hour)),
			Category: "Personal",
		},
		{
			Text:     "Submit quarterly report",
			Deadline: ptr(deadline(-2 * time.Hour)),
			Category: "Work",
		},
		{
			Text:     "Review pull requests",
			Deadline: ptr(deadline(3 * time.Hour)),
			Category: "Work",
		},
		{
			Text:     "Read chapter 4 of the networking book",
			Deadline: ptr(deadline(20 * time.Hour)),
			Category: "Study",
		},
		{
			Text:     "5k run",
			Deadline: ptr(deadline(48 * time.Hour)),
			Category: "Fitness",
		},
		{
			Text:     "Renew passport",
			Deadline: ptr(deadline(30 * 24 * time.Hour)),
			Category: "Personal",
		},
		{
			Text:      "Wash the car",
			Deadline:  ptr(deadline(-24 * time.Hour)),
			Category:  "Personal",
			Completed: true,
		},
		{
			Text:      "Book dentist appointment",
			Deadline:  ptr(deadline(-72 * time.Hour)),
			Category:  "Personal",
			Completed: true,
		},
	}

	tasks := make([]task.Task, 0, len(fixtures))
	for _, f := range fixtures {
		t := task.New(f.Text, *f.Deadline, f.Category)
		t.Completed = f.Completed
		tasks = append(tasks, t)
	}

	if err := s.Save(tasks); err != nil {
		return fmt.Errorf("writing fixtures: %w", err)
	}
	return nil
}

func ptr(t time.Time) *time.Time {
	return &t
}
