package task

import (
	"math"
	"strings"
	"time"
)

// Filter selects which tasks are displayed.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
	FilterOverdue   Filter = "overdue"
	FilterToday     Filter = "today"
)

// Filters in display order.
var Filters = []Filter{
	FilterAll,
	FilterPending,
	FilterCompleted,
	FilterOverdue,
	FilterToday,
}

// Row is a task plus its derived display flags, computed against a
// single wall-clock instant.
type Row struct {
	Task     Task
	Overdue  bool
	DueToday bool
	DueSoon  bool
}

// Counts are the aggregates shown in the header. They are computed
// over every task matching the search term, regardless of the active
// filter, so a task can land in several buckets at once.
type Counts struct {
	Total     int
	Pending   int
	Completed int
	Overdue   int
	Today     int
}

// Percent is the completion percentage, 0 for an empty list.
func (c Counts) Percent() int {
	if c.Total == 0 {
		return 0
	}
	return int(math.Round(float64(c.Completed) / float64(c.Total) * 100))
}

// MatchesSearch does a case-insensitive substring match against the
// task text. An empty term matches everything.
func MatchesSearch(t Task, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Text), strings.ToLower(search))
}

// Project computes the renderable rows and aggregate counts for the
// given filter and search term. Pure: no side effects, derived flags
// are recomputed from now on every call and never cached.
func Project(tasks []Task, filter Filter, search string, now time.Time) ([]Row, Counts) {
	var rows []Row
	var counts Counts

	for _, t := range tasks {
		if !MatchesSearch(t, search) {
			continue
		}

		row := Row{
			Task:     t,
			Overdue:  t.IsOverdue(now),
			DueToday: t.IsDueToday(now),
			DueSoon:  t.IsDueSoon(now),
		}

		counts.Total++
		if t.Completed {
			counts.Completed++
		} else {
			counts.Pending++
		}
		if row.Overdue {
			counts.Overdue++
		}
		if row.DueToday {
			counts.Today++
		}

		if row.matches(filter) {
			rows = append(rows, row)
		}
	}

	return rows, counts
}

func (r Row) matches(f Filter) bool {
	switch f {
	case FilterPending:
		return !r.Task.Completed
	case FilterCompleted:
		return r.Task.Completed
	case FilterOverdue:
		return r.Overdue
	case FilterToday:
		return r.DueToday
	default:
		return true
	}
}
