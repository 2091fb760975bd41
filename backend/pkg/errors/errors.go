package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeValidation represents malformed request payloads
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeNotFound represents references to absent records
	ErrorTypeNotFound ErrorType = "not_found"
	// ErrorTypeConflict represents operations rejected by a friendship rule
	ErrorTypeConflict ErrorType = "conflict"
	// ErrorTypeGraph represents graph database errors
	ErrorTypeGraph ErrorType = "graph"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// ErrType reports the error category. It is promoted onto every error that
// embeds *BaseError, which is what IsErrorType relies on.
func (e *BaseError) ErrType() ErrorType {
	return e.Type
}

// DomainMessage reports the bare message, promoted like ErrType
func (e *BaseError) DomainMessage() string {
	return e.Message
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Domain Errors

// ErrUserNotFound is returned when a referenced user id does not resolve
type ErrUserNotFound struct {
	*BaseError
	UserID string
}

func NewUserNotFound(userID string) *ErrUserNotFound {
	return &ErrUserNotFound{
		BaseError: NewBaseError(ErrorTypeNotFound, fmt.Sprintf("user not found: %s", userID), nil),
		UserID:    userID,
	}
}

// ErrSelfLink is returned when a user attempts to befriend themselves
type ErrSelfLink struct {
	*BaseError
	UserID string
}

func NewSelfLink(userID string) *ErrSelfLink {
	return &ErrSelfLink{
		BaseError: NewBaseError(ErrorTypeValidation, "cannot link user to themselves", nil),
		UserID:    userID,
	}
}

// ErrAlreadyLinked is returned when a friendship already exists in either direction
type ErrAlreadyLinked struct {
	*BaseError
	UserID   string
	FriendID string
}

func NewAlreadyLinked(userID, friendID string) *ErrAlreadyLinked {
	return &ErrAlreadyLinked{
		BaseError: NewBaseError(ErrorTypeConflict, "users already linked", nil),
		UserID:    userID,
		FriendID:  friendID,
	}
}

// ErrStillLinked is returned when deleting a user that still has friends
type ErrStillLinked struct {
	*BaseError
	UserID      string
	FriendCount int
}

func NewStillLinked(userID string, friendCount int) *ErrStillLinked {
	return &ErrStillLinked{
		BaseError:   NewBaseError(ErrorTypeConflict, "cannot delete user while linked, unlink first", nil),
		UserID:      userID,
		FriendCount: friendCount,
	}
}

// ErrInvalidPayload is returned when a create/update payload fails validation
type ErrInvalidPayload struct {
	*BaseError
	Reason string
}

func NewInvalidPayload(reason string) *ErrInvalidPayload {
	return &ErrInvalidPayload{
		BaseError: NewBaseError(ErrorTypeValidation, fmt.Sprintf("invalid user data: %s", reason), nil),
		Reason:    reason,
	}
}

// Graph Errors

// ErrGraphConnectionFailed is returned when Neo4j connection fails
type ErrGraphConnectionFailed struct {
	*BaseError
	URI string
}

func NewGraphConnectionFailed(uri string, err error) *ErrGraphConnectionFailed {
	return &ErrGraphConnectionFailed{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("failed to connect to Neo4j: %s", uri), err),
		URI:       uri,
	}
}

// ErrGraphQueryFailed is returned when a graph query fails
type ErrGraphQueryFailed struct {
	*BaseError
	Operation string
}

func NewGraphQueryFailed(operation string, err error) *ErrGraphQueryFailed {
	return &ErrGraphQueryFailed{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("query failed: %s", operation), err),
		Operation: operation,
	}
}

// Config Errors

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Helper functions

// IsErrorType checks if an error (anywhere in its chain) is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	var typed interface{ ErrType() ErrorType }
	if stderrors.As(err, &typed) {
		return typed.ErrType() == errType
	}
	return false
}

// Message returns the human-readable message of an error produced by this
// package, without the type/timestamp decoration. Falls back to Error() for
// foreign errors.
func Message(err error) string {
	var typed interface{ DomainMessage() string }
	if stderrors.As(err, &typed) {
		return typed.DomainMessage()
	}
	return err.Error()
}
