package model

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; the two are not distinguished to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
