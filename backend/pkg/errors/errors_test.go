package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsErrorType(t *testing.T) {
	assert.True(t, IsErrorType(NewUserNotFound("u1"), ErrorTypeNotFound))
	assert.True(t, IsErrorType(NewSelfLink("u1"), ErrorTypeValidation))
	assert.True(t, IsErrorType(NewAlreadyLinked("u1", "u2"), ErrorTypeConflict))
	assert.True(t, IsErrorType(NewStillLinked("u1", 2), ErrorTypeConflict))
	assert.True(t, IsErrorType(NewInvalidPayload("age missing"), ErrorTypeValidation))
	assert.True(t, IsErrorType(NewGraphQueryFailed("link users", fmt.Errorf("boom")), ErrorTypeGraph))

	assert.False(t, IsErrorType(NewUserNotFound("u1"), ErrorTypeConflict))
	assert.False(t, IsErrorType(fmt.Errorf("plain"), ErrorTypeNotFound))
	assert.False(t, IsErrorType(nil, ErrorTypeNotFound))
}

func TestIsErrorType_Wrapped(t *testing.T) {
	err := fmt.Errorf("handling request: %w", NewStillLinked("u1", 1))
	assert.True(t, IsErrorType(err, ErrorTypeConflict))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "users already linked", Message(NewAlreadyLinked("u1", "u2")))
	assert.Equal(t, "user not found: u1", Message(NewUserNotFound("u1")))
	assert.Equal(t, "plain", Message(fmt.Errorf("plain")))
}

func TestBaseError_ErrorAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewGraphConnectionFailed("bolt://localhost:7687", cause)

	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, err.Unwrap())
}
