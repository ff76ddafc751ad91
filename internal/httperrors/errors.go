package httperrors

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrDatabaseOperation = errors.New("database operation failed")
)

const (
	CodeBadRequest     = "BAD_REQUEST"
	CodeNotFound       = "NOT_FOUND"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeDatabaseError  = "DATABASE_ERROR"
	CodeInternalError  = "INTERNAL_ERROR"
	CodeRateLimitError = "RATE_LIMIT_EXCEEDED"
)

// BadRequestError reports caller input that is structurally or semantically invalid.
// It carries one or more human readable messages.
type BadRequestError struct {
	Messages []string
}

// NewBadRequest builds a BadRequestError from the given messages.
func NewBadRequest(messages ...string) *BadRequestError {
	if len(messages) == 0 {
		messages = []string{"Bad Request"}
	}
	return &BadRequestError{Messages: messages}
}

func (e *BadRequestError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Is lets errors.Is(err, ErrInvalidRequest) match any BadRequestError.
func (e *BadRequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// NotFoundError reports a missing resource.
type NotFoundError struct {
	Message string
}

func NewNotFound(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func (e *NotFoundError) Error() string {
	if e.Message == "" {
		return "Not Found"
	}
	return e.Message
}

// UnauthorizedError reports a missing or insufficient identity.
type UnauthorizedError struct {
	Message string
}

func NewUnauthorized(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

func (e *UnauthorizedError) Error() string {
	if e.Message == "" {
		return "Unauthorized"
	}
	return e.Message
}

// IsBadRequest reports whether err wraps a BadRequestError.
func IsBadRequest(err error) bool {
	var target *BadRequestError
	return errors.As(err, &target)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsUnauthorized reports whether err wraps an UnauthorizedError.
func IsUnauthorized(err error) bool {
	var target *UnauthorizedError
	return errors.As(err, &target)
}
