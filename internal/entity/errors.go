package entity

import "errors"

var (
	ErrNoteNotFound = errors.New("note not found")
	ErrValidation   = errors.New("validation failed")

	ErrInvalidNoteID = NewValidationError("malformed note id")
)

// ValidationError is a client mistake; its message is safe to show.
type ValidationError struct {
	Msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + e.Msg
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
