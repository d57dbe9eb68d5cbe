// Package memory holds process-local repository implementations.
package memory

import (
	"context"
	"sync"

	"synthml/domain/core"
	"synthml/ports"
)

type preferenceRepository struct {
	mu    sync.RWMutex
	prefs map[core.VisitorID]ports.ThemePreference
}

// NewPreferenceRepository creates an in-memory preference store. Contents
// are lost on restart.
func NewPreferenceRepository() ports.PreferenceRepository {
	return &preferenceRepository{prefs: make(map[core.VisitorID]ports.ThemePreference)}
}

func (r *preferenceRepository) GetTheme(ctx context.Context, visitorID core.VisitorID) (*ports.ThemePreference, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	pref, ok := r.prefs[visitorID]
	if !ok {
		return nil, core.ErrPreferenceNotFound
	}
	return &pref, nil
}

func (r *preferenceRepository) SaveTheme(ctx context.Context, pref *ports.ThemePreference) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prefs[pref.VisitorID] = *pref
	return nil
}

func (r *preferenceRepository) Close() error { return nil }
