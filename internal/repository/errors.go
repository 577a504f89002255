package repository

import "errors"

// Common repository errors
var (
	// ErrTaskNotFound is returned when a task id is not in the session collection
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidPreferences is returned when preferences hold an unknown enum value
	ErrInvalidPreferences = errors.New("invalid preferences")
)
