package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/spendtrack/spendtrack-go/internal/model"
)

var ErrExpenseNotFound = errors.New("expense not found")

// ExpenseRepository handles expense persistence operations.
type ExpenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

const expenseColumns = `id, user_id, COALESCE(title, ''), amount, category, date, description, created_at, updated_at`

// Create inserts a new expense and fills in the generated timestamps.
func (r *ExpenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	query := `INSERT INTO expenses (id, user_id, title, amount, category, date, description)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		expense.ID, expense.UserID, expense.Title, expense.Amount,
		expense.Category, expense.Date, expense.Description,
	).Scan(&expense.CreatedAt, &expense.UpdatedAt)
}

// Update replaces an expense's fields, scoped to the owning user.
func (r *ExpenseRepository) Update(ctx context.Context, expense *model.Expense) error {
	query := `UPDATE expenses
		SET title = NULLIF($3, ''), amount = $4, category = $5, date = $6, description = $7, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		expense.ID, expense.UserID, expense.Title, expense.Amount,
		expense.Category, expense.Date, expense.Description,
	).Scan(&expense.CreatedAt, &expense.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrExpenseNotFound
		}
		return err
	}

	return nil
}

// Delete removes an expense, scoped to the owning user.
func (r *ExpenseRepository) Delete(ctx context.Context, userID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// List retrieves a user's expenses, newest first, applying the optional
// search, month/year and category filters in SQL.
func (r *ExpenseRepository) List(ctx context.Context, userID string, filter model.ExpenseFilter) ([]model.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE user_id = $1`
	args := []any{userID}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(` AND (title ILIKE $%d OR description ILIKE $%d OR category ILIKE $%d)`, n, n, n)
	}

	if filter.Month != 0 && filter.Year != 0 {
		args = append(args, filter.Month)
		query += fmt.Sprintf(` AND EXTRACT(MONTH FROM date) = $%d`, len(args))
		args = append(args, filter.Year)
		query += fmt.Sprintf(` AND EXTRACT(YEAR FROM date) = $%d`, len(args))
	}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(` AND category = $%d`, len(args))
	}

	query += ` ORDER BY date DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		var e model.Expense
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Title, &e.Amount, &e.Category,
			&e.Date, &e.Description, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}
