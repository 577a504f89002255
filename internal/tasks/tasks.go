// Package tasks holds the board logic: creating and editing tasks, validation,
// derived views (stats, filters, sorting) and drag-and-drop transitions.
//
// Every function is pure. Collections passed in are never modified; callers get
// a new slice or map back and replace their copy wholesale.
package tasks

import (
	"slices"
	"strings"
	"time"

	"taskflow/internal/model"
)

// Create builds a new task from user input, filling defaults and assigning a
// fresh id and creation time.
func Create(fields model.TaskFields, now time.Time) model.Task {
	t := model.Task{
		ID:        GenerateID(),
		CreatedAt: now,
	}
	apply(&t, fields)
	return t
}

// Update replaces every editable field of existing. ID and CreatedAt are kept.
func Update(existing model.Task, fields model.TaskFields) model.Task {
	t := model.Task{
		ID:        existing.ID,
		CreatedAt: existing.CreatedAt,
	}
	apply(&t, fields)
	return t
}

func apply(t *model.Task, f model.TaskFields) {
	t.Title = f.Title
	t.Description = f.Description

	t.Priority = f.Priority
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}

	t.Category = f.Category
	if strings.TrimSpace(t.Category) == "" {
		t.Category = model.DefaultCategory
	}

	t.Status = f.Status
	if t.Status == "" {
		t.Status = model.StatusTodo
	}

	if f.DueDate != nil {
		due := *f.DueDate
		t.DueDate = &due
	}
}

// Fields extracts the editable part of a task.
func Fields(t model.Task) model.TaskFields {
	return model.TaskFields{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Category:    t.Category,
		Status:      t.Status,
		DueDate:     t.DueDate,
	}
}

// Find returns the task with the given id.
func Find(tasks []model.Task, id string) (model.Task, bool) {
	i := slices.IndexFunc(tasks, func(t model.Task) bool { return t.ID == id })
	if i < 0 {
		return model.Task{}, false
	}
	return tasks[i], true
}

// Delete returns tasks without the task with the given id. A missing id leaves
// the collection unchanged.
func Delete(tasks []model.Task, id string) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// Replace swaps the task sharing task.ID in place, keeping collection order.
// A missing id leaves the collection unchanged.
func Replace(tasks []model.Task, task model.Task) []model.Task {
	out := slices.Clone(tasks)
	for i := range out {
		if out[i].ID == task.ID {
			out[i] = task
			break
		}
	}
	return out
}
