package service

import (
	"context"
	"errors"

	"github.com/spendtrack/spendtrack-go/internal/model"
	"github.com/spendtrack/spendtrack-go/internal/repository"
)

var ErrInvalidTheme = errors.New(`theme must be "light" or "dark"`)

// PreferenceService handles user preference business logic.
type PreferenceService struct {
	repo *repository.PreferenceRepository
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(repo *repository.PreferenceRepository) *PreferenceService {
	return &PreferenceService{repo: repo}
}

// DefaultPreferences returns the preferences applied before a user has saved
// any.
func DefaultPreferences() model.Preferences {
	return model.Preferences{
		Theme:         "light",
		Currency:      "USD",
		Notifications: true,
		Language:      "en",
	}
}

// Get returns the user's stored preferences, or the defaults when none are
// stored yet.
func (s *PreferenceService) Get(ctx context.Context, userID string) (model.Preferences, error) {
	prefs, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			return DefaultPreferences(), nil
		}
		return model.Preferences{}, err
	}

	return prefs, nil
}

// Update merges the partial request over the user's current preferences and
// stores the result.
func (s *PreferenceService) Update(ctx context.Context, userID string, req model.PreferencesRequest) (model.Preferences, error) {
	if req.Theme != nil && *req.Theme != "light" && *req.Theme != "dark" {
		return model.Preferences{}, ErrInvalidTheme
	}

	prefs, err := s.Get(ctx, userID)
	if err != nil {
		return model.Preferences{}, err
	}

	if req.Theme != nil {
		prefs.Theme = *req.Theme
	}
	if req.Currency != nil {
		prefs.Currency = *req.Currency
	}
	if req.Notifications != nil {
		prefs.Notifications = *req.Notifications
	}
	if req.Language != nil {
		prefs.Language = *req.Language
	}

	if err := s.repo.Upsert(ctx, userID, prefs); err != nil {
		return model.Preferences{}, err
	}

	return prefs, nil
}
