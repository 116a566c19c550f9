package model

import (
	"errors"
	"fmt"
)

var (
	// ErrBandNotFound indicates the requested performance does not exist.
	ErrBandNotFound = errors.New("band not found")
)

// ValidationError reports a missing or malformed field, caught before any
// database call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
