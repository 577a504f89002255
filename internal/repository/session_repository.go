package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"taskflow/internal/model"
	"taskflow/internal/storage"
)

// Storage keys, suffixed with ":<session id>".
const (
	TasksKey    = "taskflow-tasks"
	ThemeKey    = "taskflow-theme"
	ViewModeKey = "taskflow-view-mode"
	FiltersKey  = "taskflow-filters"
)

// SessionRepositoryInterface is what handlers need from a session repository.
type SessionRepositoryInterface interface {
	Tasks(ctx context.Context, sessionID string) ([]model.Task, error)
	MutateTasks(ctx context.Context, sessionID string, fn func([]model.Task) ([]model.Task, error)) ([]model.Task, error)
	Preferences(ctx context.Context, sessionID string) (model.Preferences, error)
	SavePreferences(ctx context.Context, sessionID string, prefs model.Preferences) error
}

var _ SessionRepositoryInterface = (*SessionRepository)(nil)

// SessionRepository stores one task collection and one set of preferences per
// session. The collection is always read and written as a whole value.
type SessionRepository struct {
	store storage.Store
	ttl   time.Duration

	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	sync.Mutex
	refs int
}

// filterState is the value stored under FiltersKey.
type filterState struct {
	Filters   model.Filters   `json:"filters"`
	SortBy    model.SortField `json:"sortBy"`
	SortOrder model.SortOrder `json:"sortOrder"`
}

func NewSessionRepository(store storage.Store, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		store: store,
		ttl:   ttl,
		locks: make(map[string]*sessionLock),
	}
}

func key(prefix, sessionID string) string {
	return prefix + ":" + sessionID
}

// Tasks returns the session's collection, empty for a new session.
func (r *SessionRepository) Tasks(ctx context.Context, sessionID string) ([]model.Task, error) {
	tasks := []model.Task{}
	err := storage.GetJSON(ctx, r.store, key(TasksKey, sessionID), &tasks)
	if errors.Is(err, storage.ErrNotFound) {
		return []model.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return tasks, nil
}

// SaveTasks replaces the session's collection.
func (r *SessionRepository) SaveTasks(ctx context.Context, sessionID string, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	if err := storage.SetJSON(ctx, r.store, key(TasksKey, sessionID), tasks, r.ttl); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return r.touch(ctx, sessionID)
}

// MutateTasks loads the collection, hands it to fn and stores what fn returns.
// Calls for the same session are serialized. When fn fails nothing is stored
// and its error is returned unwrapped.
func (r *SessionRepository) MutateTasks(
	ctx context.Context,
	sessionID string,
	fn func([]model.Task) ([]model.Task, error),
) ([]model.Task, error) {
	unlock := r.lock(sessionID)
	defer unlock()

	current, err := r.Tasks(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next, err := fn(current)
	if err != nil {
		return nil, err
	}

	if err := r.SaveTasks(ctx, sessionID, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Preferences returns the stored preferences, with defaults for anything the
// session never saved.
func (r *SessionRepository) Preferences(ctx context.Context, sessionID string) (model.Preferences, error) {
	prefs := model.DefaultPreferences()

	var theme model.Theme
	if err := r.load(ctx, key(ThemeKey, sessionID), &theme); err != nil {
		return prefs, err
	}
	if theme.Valid() {
		prefs.Theme = theme
	}

	var view model.ViewMode
	if err := r.load(ctx, key(ViewModeKey, sessionID), &view); err != nil {
		return prefs, err
	}
	if view.Valid() {
		prefs.ViewMode = view
	}

	state := filterState{
		Filters:   prefs.Filters,
		SortBy:    prefs.SortBy,
		SortOrder: prefs.SortOrder,
	}
	if err := r.load(ctx, key(FiltersKey, sessionID), &state); err != nil {
		return prefs, err
	}
	prefs.Filters = state.Filters
	if state.SortBy.Valid() {
		prefs.SortBy = state.SortBy
	}
	if state.SortOrder.Valid() {
		prefs.SortOrder = state.SortOrder
	}
	return prefs, nil
}

func (r *SessionRepository) load(ctx context.Context, k string, v any) error {
	err := storage.GetJSON(ctx, r.store, k, v)
	if err == nil || errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	return fmt.Errorf("load preferences: %w", err)
}

// SavePreferences stores prefs under the theme, view mode and filters keys.
func (r *SessionRepository) SavePreferences(ctx context.Context, sessionID string, prefs model.Preferences) error {
	if !prefs.Theme.Valid() || !prefs.ViewMode.Valid() || !prefs.SortBy.Valid() || !prefs.SortOrder.Valid() {
		return ErrInvalidPreferences
	}
	if !prefs.Filters.Valid() {
		return ErrInvalidPreferences
	}

	state := filterState{
		Filters:   prefs.Filters,
		SortBy:    prefs.SortBy,
		SortOrder: prefs.SortOrder,
	}
	if err := r.save(ctx, key(ThemeKey, sessionID), prefs.Theme); err != nil {
		return err
	}
	if err := r.save(ctx, key(ViewModeKey, sessionID), prefs.ViewMode); err != nil {
		return err
	}
	if err := r.save(ctx, key(FiltersKey, sessionID), state); err != nil {
		return err
	}
	return r.touch(ctx, sessionID)
}

func (r *SessionRepository) save(ctx context.Context, k string, v any) error {
	if err := storage.SetJSON(ctx, r.store, k, v, r.ttl); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// touch gives every key of the session a fresh ttl, so the session expires as
// a whole.
func (r *SessionRepository) touch(ctx context.Context, sessionID string) error {
	if err := r.store.Touch(ctx, r.ttl, sessionKeys(sessionID)...); err != nil {
		return fmt.Errorf("refresh session: %w", err)
	}
	return nil
}

// Clear removes everything stored for the session.
func (r *SessionRepository) Clear(ctx context.Context, sessionID string) error {
	return r.store.Delete(ctx, sessionKeys(sessionID)...)
}

func sessionKeys(sessionID string) []string {
	return []string{
		key(TasksKey, sessionID),
		key(ThemeKey, sessionID),
		key(ViewModeKey, sessionID),
		key(FiltersKey, sessionID),
	}
}

// lock takes the per-session mutex and returns its release function. Entries
// are dropped once no caller holds or waits for them.
func (r *SessionRepository) lock(sessionID string) func() {
	r.mu.Lock()
	l, ok := r.locks[sessionID]
	if !ok {
		l = &sessionLock{}
		r.locks[sessionID] = l
	}
	l.refs++
	r.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()

		r.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(r.locks, sessionID)
		}
		r.mu.Unlock()
	}
}
