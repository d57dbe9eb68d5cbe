// Package preferences owns the theme preference: it resolves the stored
// choice for a visitor and is the single place that changes it.
package preferences

import (
	"context"
	"errors"
	"time"

	"synthml/domain/core"
	"synthml/domain/theme"
	"synthml/internal"
	apperrors "synthml/internal/errors"
	"synthml/ports"
)

// ChangeObserver is notified after a preference is persisted.
type ChangeObserver interface {
	ThemeChanged(theme string)
}

// Service reads and writes theme preferences.
type Service struct {
	repo     ports.PreferenceRepository
	observer ChangeObserver
	logger   *internal.Logger
	now      func() time.Time
}

// NewService creates a preference service. observer may be nil.
func NewService(repo ports.PreferenceRepository, observer ChangeObserver, logger *internal.Logger) *Service {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Service{
		repo:     repo,
		observer: observer,
		logger:   logger.With("component", "preferences"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Theme returns the visitor's stored theme, or theme.Default if none was
// stored. Storage failures are logged and also fall back to the default.
func (s *Service) Theme(ctx context.Context, visitor core.VisitorID) theme.Theme {
	if visitor == "" {
		return theme.Default
	}
	pref, err := s.repo.GetTheme(ctx, visitor)
	if err != nil {
		if !errors.Is(err, core.ErrNotFound) {
			s.logger.Warn("theme lookup for %s failed: %v", visitor, err)
		}
		return theme.Default
	}
	return pref.Theme
}

// SetTheme validates raw, persists it and returns the applied theme.
func (s *Service) SetTheme(ctx context.Context, visitor core.VisitorID, raw string) (theme.Theme, error) {
	t, err := theme.Parse(raw)
	if err != nil {
		return "", apperrors.WithCode(apperrors.CodeInvalidInput, err)
	}
	if visitor == "" {
		return "", apperrors.InvalidInput("visitor is required to save a preference")
	}

	pref := &ports.ThemePreference{VisitorID: visitor, Theme: t, UpdatedAt: s.now()}
	if err := s.repo.SaveTheme(ctx, pref); err != nil {
		return "", apperrors.DatabaseError("failed to persist theme", err)
	}

	s.logger.Debug("visitor %s switched theme to %s", visitor, t)
	if s.observer != nil {
		s.observer.ThemeChanged(string(t))
	}
	return t, nil
}

// Close releases the underlying store.
func (s *Service) Close() error {
	return s.repo.Close()
}
