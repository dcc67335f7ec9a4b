package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"finbook/internal/core"
)

// BudgetCheck is the result of an advisory budget evaluation. Exceeded is
// false for INCOME categories and for projections within the limit; the
// remaining fields are only meaningful when Exceeded is true.
type BudgetCheck struct {
	Exceeded  bool
	Proposed  core.Money
	Limit     core.Money
	Spent     core.Money
	Projected core.Money
	Overage   core.Money
}

// CheckBudget evaluates whether posting amount against the category would
// push the current month's spending past its budget limit. It is advisory:
// posting proceeds regardless of the result. Spending is monotonic in
// amount, so a zero amount only reports exceeded when the month is already
// over the limit.
func (s *FinanceService) CheckBudget(ctx context.Context, categoryID int64, amount core.Money) (BudgetCheck, error) {
	category, err := s.store.CategoryByID(ctx, categoryID)
	if err != nil {
		return BudgetCheck{}, err
	}

	// Budget semantics apply to expenses only
	if category.Type != core.Expense {
		return BudgetCheck{Proposed: amount}, nil
	}

	spent, err := s.store.SpentInMonth(ctx, categoryID, core.CurrentMonth())
	if err != nil {
		return BudgetCheck{}, err
	}

	projected := spent.Add(amount)
	check := BudgetCheck{
		Proposed:  amount,
		Limit:     category.BudgetLimit,
		Spent:     spent,
		Projected: projected,
	}
	if projected.GreaterThan(category.BudgetLimit) {
		check.Exceeded = true
		check.Overage = projected.Sub(category.BudgetLimit)
	}
	return check, nil
}

// BudgetWarning adapts CheckBudget to the single-string contract the
// presentation layer displays: empty when nothing is wrong, a warning when
// the budget would be exceeded, and a diagnostic when the check itself
// failed.
func (s *FinanceService) BudgetWarning(ctx context.Context, categoryID int64, amount core.Money) string {
	check, err := s.CheckBudget(ctx, categoryID, amount)
	if errors.Is(err, core.ErrNotFound) {
		return "Category not found."
	}
	if err != nil {
		slog.ErrorContext(ctx, "Budget check failed",
			"category_id", categoryID, "error", err)
		return fmt.Sprintf("Error checking budget: %v", err)
	}
	if !check.Exceeded {
		return ""
	}
	return fmt.Sprintf(
		"Budget Warning: Adding this transaction (%s) would exceed the budget limit (%s) by %s. "+
			"Current month spending: %s, Projected total: %s",
		check.Proposed, check.Limit, check.Overage, check.Spent, check.Projected)
}
