package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTransition matches every *InvalidTransitionError via errors.Is.
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrInviteNotFound   = errors.New("invite not found")
	ErrMissingInput     = errors.New("content type and topic are required")
	ErrNothingGenerated = errors.New("no generated content to save")
)

// ValidationError reports a single malformed or missing input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// InvalidTransitionError is returned when a status change is not in the
// invite lifecycle table.
type InvalidTransitionError struct {
	InviteID string
	From     InviteStatus
	To       InviteStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invite %s: cannot move from %s to %s", e.InviteID, e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidTransition }
