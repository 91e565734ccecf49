package domain

import (
	"errors"
	"fmt"
)

// Sentinel kinds matched by errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)

// ValidationError rejects caller input. Message is shown to the client as is.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

func (e ValidationError) Is(target error) bool { return target == ErrValidation }

type NotFoundError struct {
	Message string
}

func (e NotFoundError) Error() string { return e.Message }

func (e NotFoundError) Is(target error) bool { return target == ErrNotFound }

type ForbiddenError struct {
	Message string
}

func (e ForbiddenError) Error() string { return e.Message }

func (e ForbiddenError) Is(target error) bool { return target == ErrForbidden }

func Validationf(format string, args ...any) error {
	return ValidationError{Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) error {
	return NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func Forbiddenf(format string, args ...any) error {
	return ForbiddenError{Message: fmt.Sprintf(format, args...)}
}
