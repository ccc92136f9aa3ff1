package model

import "time"

// Expense represents an expense row in the database.
type Expense struct {
	ID          string
	UserID      string
	Title       string
	Amount      float64
	Category    string
	Date        time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExpenseRequest represents an expense create or update request. The amount
// may be a JSON number or a quick-entry arithmetic expression string.
type ExpenseRequest struct {
	Title       string `json:"title"`
	Amount      Amount `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title,omitempty"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExpenseFilter narrows an expense listing. Month and Year only apply when
// both are set.
type ExpenseFilter struct {
	Search   string
	Month    int
	Year     int
	Category string
}
