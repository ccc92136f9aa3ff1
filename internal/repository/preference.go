package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/spendtrack/spendtrack-go/internal/model"
)

var ErrPreferencesNotFound = errors.New("preferences not found")

// PreferenceRepository handles per-user preference persistence.
type PreferenceRepository struct {
	db *sql.DB
}

// NewPreferenceRepository creates a new PreferenceRepository.
func NewPreferenceRepository(db *sql.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// Get retrieves a user's stored preferences.
func (r *PreferenceRepository) Get(ctx context.Context, userID string) (model.Preferences, error) {
	query := `SELECT theme, currency, notifications, language FROM user_preferences WHERE user_id = $1`

	var prefs model.Preferences
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&prefs.Theme, &prefs.Currency, &prefs.Notifications, &prefs.Language,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Preferences{}, ErrPreferencesNotFound
		}
		return model.Preferences{}, err
	}

	return prefs, nil
}

// Upsert stores a user's preferences, replacing any existing row.
func (r *PreferenceRepository) Upsert(ctx context.Context, userID string, prefs model.Preferences) error {
	query := `INSERT INTO user_preferences (user_id, theme, currency, notifications, language)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET theme = EXCLUDED.theme,
		    currency = EXCLUDED.currency,
		    notifications = EXCLUDED.notifications,
		    language = EXCLUDED.language,
		    updated_at = NOW()`

	_, err := r.db.ExecContext(ctx, query,
		userID, prefs.Theme, prefs.Currency, prefs.Notifications, prefs.Language,
	)
	return err
}
