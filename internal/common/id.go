package common

import "github.com/google/uuid"

// NewID returns a fresh opaque identifier. Callers treat the value as an
// arbitrary string; nothing anywhere parses it back.
func NewID() string {
	return uuid.NewString()
}
