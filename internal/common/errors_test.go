package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	wrapped := NewUserError("could not sign in", ErrUnknownUser)
	assert.Equal(t, "could not sign in: unknown user", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrUnknownUser)

	var userErr *UserError
	assert.ErrorAs(t, wrapped, &userErr)
	assert.Equal(t, "could not sign in", userErr.UserMessage)

	bare := &UserError{UserMessage: "just the message"}
	assert.Equal(t, "just the message", bare.Error())
}

func TestRestoreError(t *testing.T) {
	err := &RestoreError{
		MissingKeys: []string{"@orghub_members"},
		InvalidKeys: []string{"@orghub_loans"},
	}
	assert.Contains(t, err.Error(), "@orghub_members")
	assert.Contains(t, err.Error(), "@orghub_loans")

	empty := &RestoreError{}
	assert.Equal(t, "restore blob contained no recognized collections", empty.Error())

	var target *RestoreError
	assert.True(t, errors.As(error(err), &target))
}
