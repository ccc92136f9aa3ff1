package service

import (
	"context"
	"testing"

	"github.com/spendtrack/spendtrack-go/internal/model"
	"github.com/spendtrack/spendtrack-go/internal/repository"
)

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()

	if prefs.Theme != "light" {
		t.Errorf("theme = %q, want light", prefs.Theme)
	}
	if prefs.Currency != "USD" {
		t.Errorf("currency = %q, want USD", prefs.Currency)
	}
	if !prefs.Notifications {
		t.Error("notifications should default to true")
	}
	if prefs.Language != "en" {
		t.Errorf("language = %q, want en", prefs.Language)
	}
}

func TestUpdatePreferences_InvalidTheme(t *testing.T) {
	svc := NewPreferenceService(repository.NewPreferenceRepository(nil))

	theme := "neon"
	_, err := svc.Update(context.Background(), "user-1", model.PreferencesRequest{Theme: &theme})
	if err != ErrInvalidTheme {
		t.Errorf("expected ErrInvalidTheme, got %v", err)
	}
}
