// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
	"strings"
)

// Common application errors.
var (
	// Storage errors.
	ErrNotFound     = errors.New("not found")
	ErrCorruptState = errors.New("corrupt persisted state")
	ErrInvalidInput = errors.New("invalid input")

	// Session errors.
	ErrNoSession    = errors.New("no active session")
	ErrUnknownUser  = errors.New("unknown user")
	ErrInactiveUser = errors.New("user account is inactive")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// RestoreError reports which storage keys a backup blob was missing or
// carried in an unreadable form.
type RestoreError struct {
	MissingKeys []string
	InvalidKeys []string
}

func (e *RestoreError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.MissingKeys) > 0 {
		parts = append(parts, fmt.Sprintf("missing keys: %s", strings.Join(e.MissingKeys, ", ")))
	}
	if len(e.InvalidKeys) > 0 {
		parts = append(parts, fmt.Sprintf("invalid keys: %s", strings.Join(e.InvalidKeys, ", ")))
	}
	if len(parts) == 0 {
		return "restore blob contained no recognized collections"
	}
	return "restore failed: " + strings.Join(parts, "; ")
}
