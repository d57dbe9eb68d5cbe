package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// VisitorID identifies an anonymous browser session that owns preferences.
type VisitorID ID

func (id VisitorID) String() string { return ID(id).String() }

// NewVisitorID issues a fresh visitor identifier.
func NewVisitorID() VisitorID {
	return VisitorID(NewID())
}

// ParseVisitorID accepts only well-formed UUIDs so cookie values cannot
// smuggle arbitrary keys into the preference store.
func ParseVisitorID(s string) (VisitorID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: visitor ID cannot be empty", ErrInvalidID)
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	return VisitorID(parsed.String()), nil
}
