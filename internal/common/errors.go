// Package common defines shared sentinel errors and small utilities used
// across WebStash components. Callers should use errors.Is to match the
// sentinel values.
package common

import (
	"errors"
	"strings"
)

var (
	// Store-level errors.
	ErrNotFound = errors.New("not found")

	// Registration errors.
	ErrEmptyInput        = errors.New("empty input")
	ErrWeakPassword      = errors.New("weak password")
	ErrDuplicateUsername = errors.New("username already exists")

	// Login errors. The message is deliberately uniform and does not
	// reveal whether the username exists.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Note errors.
	ErrEmptyNote       = errors.New("note is empty")
	ErrNoteTooLong     = errors.New("note is too long")
	ErrIndexOutOfRange = errors.New("index out of range")

	// Theme errors.
	ErrInvalidTheme = errors.New("invalid theme")
)

// WeakPasswordError carries the ordered list of password rules the
// candidate failed, for display to the user. It unwraps to ErrWeakPassword
// so callers can still match with errors.Is.
type WeakPasswordError struct {
	Problems []string
}

func (e *WeakPasswordError) Error() string {
	return "weak password: " + strings.Join(e.Problems, ", ")
}

func (e *WeakPasswordError) Unwrap() error {
	return ErrWeakPassword
}
