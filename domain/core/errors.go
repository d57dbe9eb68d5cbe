package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	ErrNotFound           = errors.New("resource not found")
	ErrPreferenceNotFound = fmt.Errorf("%w: preference", ErrNotFound)
	ErrChartNotFound      = fmt.Errorf("%w: chart", ErrNotFound)

	ErrInvalidID      = errors.New("invalid identifier")
	ErrInvalidTheme   = errors.New("invalid theme")
	ErrInvalidStatus  = errors.New("invalid status value")
	ErrInvalidFixture = errors.New("invalid fixture")
)

// NewNotFoundError reports a missing resource by kind and key.
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidFixture, field, reason)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError reports whether err came from rejecting caller input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidTheme) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidFixture)
}
