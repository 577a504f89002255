package tasks

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"taskflow/internal/model"
)

// noDueDate stands in for a missing due date so those tasks sort last in
// ascending order.
var noDueDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// Sort returns a sorted copy of tasks. Unknown fields sort by creation time and
// any order other than asc is descending. The sort is stable, so ties keep
// their collection order in both directions.
func Sort(tasks []model.Task, by model.SortField, order model.SortOrder) []model.Task {
	compare := comparator(by)
	if order != model.OrderAsc {
		asc := compare
		compare = func(a, b model.Task) int { return asc(b, a) }
	}

	out := slices.Clone(tasks)
	slices.SortStableFunc(out, compare)
	return out
}

func comparator(by model.SortField) func(a, b model.Task) int {
	switch by {
	case model.SortByTitle:
		return func(a, b model.Task) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	case model.SortByPriority:
		return func(a, b model.Task) int {
			return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
		}
	case model.SortByDueDate:
		return func(a, b model.Task) int {
			return dueOrMax(a).Compare(dueOrMax(b))
		}
	default:
		return func(a, b model.Task) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}
}

func dueOrMax(t model.Task) time.Time {
	if t.DueDate == nil {
		return noDueDate
	}
	return *t.DueDate
}
