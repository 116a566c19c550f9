package model

import (
	"errors"
	"fmt"
)

var (
	// ErrMenuNotFound indicates the requested menu document does not exist.
	ErrMenuNotFound = errors.New("menu not found")
	// ErrNoActiveMenu indicates no active document exists for the requested
	// type; the caller presents a static fallback instead of failing.
	ErrNoActiveMenu = errors.New("no active menu for type")
)

// ValidationError reports a missing or malformed field, caught before any
// storage or database call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
