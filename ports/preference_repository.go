package ports

import (
	"context"
	"time"

	"synthml/domain/core"
	"synthml/domain/theme"
)

// ThemePreference is a visitor's persisted colour scheme.
type ThemePreference struct {
	VisitorID core.VisitorID `db:"visitor_id" json:"visitor_id"`
	Theme     theme.Theme    `db:"theme" json:"theme"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

// PreferenceRepository defines the interface for preference storage operations
type PreferenceRepository interface {
	// GetTheme returns core.ErrPreferenceNotFound when the visitor never chose.
	GetTheme(ctx context.Context, visitorID core.VisitorID) (*ThemePreference, error)
	// SaveTheme inserts or replaces the visitor's preference.
	SaveTheme(ctx context.Context, pref *ThemePreference) error
	Close() error
}
