package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spendtrack/spendtrack-go/internal/crypto"
)

// Seed creates a demo user with a handful of expenses for development
// environments. It is idempotent: if the demo user already exists, nothing
// happens.
func Seed(ctx context.Context, db *sql.DB) error {
	var exists bool
	err := db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = 'demo')`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking for demo user: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := crypto.HashPassword("password1")
	if err != nil {
		return err
	}

	userID := uuid.NewString()
	_, err = db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, password_hash, display_name) VALUES ($1, $2, $3, $4, $5)`,
		userID, "demo", "demo@example.com", hash, "Demo User",
	)
	if err != nil {
		return fmt.Errorf("creating demo user: %w", err)
	}

	now := time.Now()
	samples := []struct {
		title    string
		amount   float64
		category string
		daysAgo  int
	}{
		{"Weekly groceries", 82.45, "Groceries", 1},
		{"Bus pass", 25.00, "Transportation", 3},
		{"Dinner out", 36.80, "Food & Dining", 5},
		{"Streaming subscription", 12.99, "Subscriptions", 9},
	}

	for _, s := range samples {
		_, err = db.ExecContext(ctx,
			`INSERT INTO expenses (id, user_id, title, amount, category, date) VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.NewString(), userID, s.title, s.amount, s.category, now.AddDate(0, 0, -s.daysAgo),
		)
		if err != nil {
			return fmt.Errorf("creating demo expense: %w", err)
		}
	}

	return nil
}
