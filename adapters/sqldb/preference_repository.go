package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"synthml/domain/core"
	"synthml/domain/theme"
	"synthml/ports"
)

const (
	selectThemeSQL = `
		SELECT visitor_id, theme, updated_at
		FROM theme_preferences
		WHERE visitor_id = ?`

	upsertThemeSQL = `
		INSERT INTO theme_preferences (visitor_id, theme, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (visitor_id) DO UPDATE SET
			theme = excluded.theme,
			updated_at = excluded.updated_at`
)

type preferenceRepository struct {
	db *sqlx.DB
}

// NewPreferenceRepository creates a preference repository on an open
// database whose schema is already migrated.
func NewPreferenceRepository(db *sqlx.DB) ports.PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetTheme(ctx context.Context, visitorID core.VisitorID) (*ports.ThemePreference, error) {
	var pref ports.ThemePreference
	err := r.db.GetContext(ctx, &pref, r.db.Rebind(selectThemeSQL), visitorID.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("failed to get theme preference: %w", err)
	}

	parsed, err := theme.Parse(string(pref.Theme))
	if err != nil {
		return nil, fmt.Errorf("stored preference for %s: %w", visitorID, err)
	}
	pref.Theme = parsed
	return &pref, nil
}

func (r *preferenceRepository) SaveTheme(ctx context.Context, pref *ports.ThemePreference) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(upsertThemeSQL),
		pref.VisitorID.String(),
		string(pref.Theme),
		pref.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save theme preference: %w", err)
	}
	return nil
}

func (r *preferenceRepository) Close() error {
	return r.db.Close()
}
