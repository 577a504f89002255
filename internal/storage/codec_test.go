package storage_test

import (
	"context"
	"testing"
	"time"

	"taskflow/internal/model"
	"taskflow/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_TaskRoundTrip(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := storage.NewMemoryStore()
	due := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	list := []model.Task{
		{
			ID:          "1",
			Title:       "Implement auth",
			Description: "Login and register",
			Priority:    model.PriorityHigh,
			Category:    "Development",
			Status:      model.StatusTodo,
			CreatedAt:   time.Date(2025, time.January, 6, 9, 30, 0, 0, time.UTC),
			DueDate:     &due,
		},
		{
			ID:        "2",
			Title:     "No deadline",
			Priority:  model.PriorityLow,
			Category:  model.DefaultCategory,
			Status:    model.StatusDone,
			CreatedAt: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	// Act
	require.NoError(t, storage.SetJSON(ctx, store, "tasks", list, 0))
	var loaded []model.Task
	require.NoError(t, storage.GetJSON(ctx, store, "tasks", &loaded))

	// Assert
	require.Len(t, loaded, 2)
	assert.Equal(t, list[0].ID, loaded[0].ID)
	assert.True(t, list[0].CreatedAt.Equal(loaded[0].CreatedAt))
	require.NotNil(t, loaded[0].DueDate)
	assert.True(t, due.Equal(*loaded[0].DueDate))
	assert.Nil(t, loaded[1].DueDate)
	assert.Equal(t, list[1].Status, loaded[1].Status)

	raw, err := store.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"dueDate":null`)
}

func TestGetJSON_Missing(t *testing.T) {
	var v []model.Task

	err := storage.GetJSON(context.Background(), storage.NewMemoryStore(), "missing", &v)

	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetJSON_Corrupt(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "bad", []byte("{not json"), 0))

	var v []model.Task
	err := storage.GetJSON(ctx, store, "bad", &v)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrNotFound)
}
