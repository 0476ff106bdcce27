package apperror

import (
	"errors"
	"fmt"
)

// Sentinels for matching with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidOperation = errors.New("invalid operation")
)

// NotFoundError reports a missing entity looked up by one of its keys.
type NotFoundError struct {
	Entity string
	Field  string
	Value  any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: '%v'", e.Entity, e.Field, e.Value)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InvalidOperationError reports a violated precondition. Reason is shown to the caller as-is.
type InvalidOperationError struct {
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return e.Reason
}

func (e *InvalidOperationError) Is(target error) bool {
	return target == ErrInvalidOperation
}

func NotFound(entity, field string, value any) error {
	return &NotFoundError{Entity: entity, Field: field, Value: value}
}

func Invalid(reason string) error {
	return &InvalidOperationError{Reason: reason}
}

func Invalidf(format string, args ...any) error {
	return &InvalidOperationError{Reason: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}
