package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spendtrack/spendtrack-go/internal/model"
	"github.com/spendtrack/spendtrack-go/internal/repository"
)

var (
	ErrAmountAndDateRequired = errors.New("amount and date are required")
	ErrInvalidAmount         = errors.New("amount must be a positive number or a valid expression")
	ErrInvalidDate           = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidFilter         = errors.New("month and year filters must be valid")
	ErrExpenseNotFound       = errors.New("expense not found")
)

const defaultCategory = "General"

// categories is the fixed set offered to clients. Stored categories are not
// restricted to it, matching the original behavior.
var categories = []string{
	"General",
	"Food & Dining",
	"Groceries",
	"Transportation",
	"Entertainment",
	"Shopping",
	"Bills & Utilities",
	"Healthcare",
	"Education",
	"Travel",
	"Subscriptions",
	"Personal Care",
	"Others",
}

// ExpenseService handles expense business logic.
type ExpenseService struct {
	repo *repository.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(repo *repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// Categories returns the suggested expense categories.
func (s *ExpenseService) Categories() []string {
	return categories
}

// Create validates and stores a new expense for a user.
func (s *ExpenseService) Create(ctx context.Context, userID string, req model.ExpenseRequest) (model.ExpenseResponse, error) {
	expense, err := expenseFromRequest(userID, req)
	if err != nil {
		return model.ExpenseResponse{}, err
	}
	expense.ID = uuid.NewString()

	if err := s.repo.Create(ctx, &expense); err != nil {
		return model.ExpenseResponse{}, err
	}

	return expenseToResponse(expense), nil
}

// Update validates and replaces an existing expense.
func (s *ExpenseService) Update(ctx context.Context, userID, id string, req model.ExpenseRequest) (model.ExpenseResponse, error) {
	expense, err := expenseFromRequest(userID, req)
	if err != nil {
		return model.ExpenseResponse{}, err
	}
	expense.ID = id

	if err := s.repo.Update(ctx, &expense); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return model.ExpenseResponse{}, ErrExpenseNotFound
		}
		return model.ExpenseResponse{}, err
	}

	return expenseToResponse(expense), nil
}

// Delete removes a user's expense.
func (s *ExpenseService) Delete(ctx context.Context, userID, id string) error {
	err := s.repo.Delete(ctx, userID, id)
	if errors.Is(err, repository.ErrExpenseNotFound) {
		return ErrExpenseNotFound
	}
	return err
}

// List returns a user's expenses with the given filters applied. Month and
// year only take effect together.
func (s *ExpenseService) List(ctx context.Context, userID string, filter model.ExpenseFilter) ([]model.ExpenseResponse, error) {
	if filter.Month < 0 || filter.Month > 12 || filter.Year < 0 {
		return nil, ErrInvalidFilter
	}

	expenses, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	result := make([]model.ExpenseResponse, len(expenses))
	for i, e := range expenses {
		result[i] = expenseToResponse(e)
	}
	return result, nil
}

// expenseFromRequest validates a create/update request and builds the domain
// record. The amount may arrive as a number or a quick-entry expression.
func expenseFromRequest(userID string, req model.ExpenseRequest) (model.Expense, error) {
	if !req.Amount.IsSet() || req.Date == "" {
		return model.Expense{}, ErrAmountAndDateRequired
	}

	amount, err := req.Amount.Resolve()
	if err != nil || amount <= 0 {
		return model.Expense{}, ErrInvalidAmount
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return model.Expense{}, ErrInvalidDate
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = defaultCategory
	}

	return model.Expense{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Amount:      amount,
		Category:    category,
		Date:        date,
		Description: strings.TrimSpace(req.Description),
	}, nil
}

func expenseToResponse(e model.Expense) model.ExpenseResponse {
	return model.ExpenseResponse{
		ID:          e.ID,
		Title:       e.Title,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.Date.Format("2006-01-02"),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
