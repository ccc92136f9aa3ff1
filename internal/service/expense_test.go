package service

import (
	"context"
	"testing"

	"github.com/spendtrack/spendtrack-go/internal/model"
	"github.com/spendtrack/spendtrack-go/internal/repository"
)

func newTestExpenseService() *ExpenseService {
	return NewExpenseService(repository.NewExpenseRepository(nil))
}

func TestCreateExpense_MissingAmountAndDate(t *testing.T) {
	svc := newTestExpenseService()

	_, err := svc.Create(context.Background(), "user-1", model.ExpenseRequest{
		Title: "Lunch",
	})
	if err != ErrAmountAndDateRequired {
		t.Errorf("expected ErrAmountAndDateRequired, got %v", err)
	}

	_, err = svc.Create(context.Background(), "user-1", model.ExpenseRequest{
		Amount: model.AmountFromFloat(10),
	})
	if err != ErrAmountAndDateRequired {
		t.Errorf("expected ErrAmountAndDateRequired for missing date, got %v", err)
	}
}

func TestCreateExpense_InvalidAmounts(t *testing.T) {
	svc := newTestExpenseService()

	cases := []model.Amount{
		model.AmountFromFloat(0),
		model.AmountFromFloat(-5),
		model.AmountFromExpression("2**3"),
		model.AmountFromExpression("10/0"),
		model.AmountFromExpression("abc"),
		model.AmountFromExpression("NaN"),
		model.AmountFromExpression("Inf"),
		model.AmountFromExpression("Infinity"),
		model.AmountFromExpression("1e308"),
	}

	for _, amount := range cases {
		_, err := svc.Create(context.Background(), "user-1", model.ExpenseRequest{
			Amount: amount,
			Date:   "2026-08-01",
		})
		if err != ErrInvalidAmount {
			t.Errorf("Create with amount %v error = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestCreateExpense_InvalidDate(t *testing.T) {
	svc := newTestExpenseService()

	for _, date := range []string{"08/01/2026", "2026-13-01", "yesterday"} {
		_, err := svc.Create(context.Background(), "user-1", model.ExpenseRequest{
			Amount: model.AmountFromFloat(10),
			Date:   date,
		})
		if err != ErrInvalidDate {
			t.Errorf("Create with date %q error = %v, want ErrInvalidDate", date, err)
		}
	}
}

func TestExpenseFromRequest_Defaults(t *testing.T) {
	expense, err := expenseFromRequest("user-1", model.ExpenseRequest{
		Title:  "  Coffee  ",
		Amount: model.AmountFromExpression("2.50*2"),
		Date:   "2026-08-15",
	})
	if err != nil {
		t.Fatalf("expenseFromRequest() unexpected error: %v", err)
	}

	if expense.Category != "General" {
		t.Errorf("category = %q, want General", expense.Category)
	}
	if expense.Amount != 5 {
		t.Errorf("amount = %v, want 5", expense.Amount)
	}
	if expense.Title != "Coffee" {
		t.Errorf("title = %q, want trimmed %q", expense.Title, "Coffee")
	}
}

func TestListExpenses_InvalidFilter(t *testing.T) {
	svc := newTestExpenseService()

	_, err := svc.List(context.Background(), "user-1", model.ExpenseFilter{Month: 13, Year: 2026})
	if err != ErrInvalidFilter {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestCategoriesIncludeDefault(t *testing.T) {
	svc := newTestExpenseService()

	found := false
	for _, c := range svc.Categories() {
		if c == "General" {
			found = true
		}
	}
	if !found {
		t.Error("Categories() should include General")
	}
}
