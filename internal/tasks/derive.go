package tasks

import (
	"strings"
	"time"

	"taskflow/internal/model"
)

// IsOverdue reports whether the calendar day of dueDate is strictly before the
// calendar day of now. Time of day is ignored on both sides. A nil dueDate is
// never overdue. Status is not considered here, see CalculateStats.
func IsOverdue(dueDate *time.Time, now time.Time) bool {
	if dueDate == nil {
		return false
	}
	return midnight(*dueDate).Before(midnight(now))
}

// midnight truncates t to the start of its calendar day, in UTC so that days
// from different locations compare by their wall-clock date.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CalculateStats counts tasks per status. Done tasks never count as overdue.
func CalculateStats(tasks []model.Task, now time.Time) model.Stats {
	stats := model.Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case model.StatusTodo:
			stats.Todo++
		case model.StatusInProgress:
			stats.InProgress++
		case model.StatusDone:
			stats.Done++
		}

		if IsOverdue(t.DueDate, now) && t.Status != model.StatusDone {
			stats.Overdue++
		}
	}
	return stats
}

// UniqueCategories returns the distinct non-blank categories in the order they
// first appear.
func UniqueCategories(tasks []model.Task) []string {
	seen := make(map[string]struct{})
	categories := []string{}
	for _, t := range tasks {
		if strings.TrimSpace(t.Category) == "" {
			continue
		}
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		categories = append(categories, t.Category)
	}
	return categories
}

// Filter keeps the tasks matching every predicate of f. The search term is a
// case-insensitive substring match against title and description. An empty
// priority or category behaves like model.FilterAll.
func Filter(tasks []model.Task, f model.Filters) []model.Task {
	term := strings.ToLower(f.SearchTerm)
	out := []model.Task{}
	for _, t := range tasks {
		if term != "" &&
			!strings.Contains(strings.ToLower(t.Title), term) &&
			!strings.Contains(strings.ToLower(t.Description), term) {
			continue
		}
		if !matchesAll(f.Priority) && string(t.Priority) != f.Priority {
			continue
		}
		if !matchesAll(f.Category) && t.Category != f.Category {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesAll(v string) bool {
	return v == "" || v == model.FilterAll
}
