package tasks

import "github.com/google/uuid"

// GenerateID returns a UUIDv7 string: a millisecond timestamp prefix followed by
// random bits. Unique for interactive use, not meant to resist guessing.
func GenerateID() string {
	return uuid.Must(uuid.NewV7()).String()
}
