// Package services hosts the finance operations the presentation layer
// calls: transaction posting, budget checks, the recurring-due scan,
// administrative resets, aggregates and the monthly report export.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"finbook/internal/core"
	"finbook/internal/storage"
)

// FinanceService orchestrates all finance operations over one Store.
type FinanceService struct {
	store     *storage.Store
	backupDir string
	exportDir string
}

func NewFinanceService(store *storage.Store, backupDir, exportDir string) *FinanceService {
	return &FinanceService{
		store:     store,
		backupDir: backupDir,
		exportDir: exportDir,
	}
}

// AddTransaction validates and posts a transaction. The transaction row and
// the signed balance update on the account commit or roll back together.
func (s *FinanceService) AddTransaction(ctx context.Context, n core.NewTransaction) error {
	if err := n.Validate(); err != nil {
		return fmt.Errorf("validate transaction: %w", err)
	}
	if err := s.store.PostTransaction(ctx, n); err != nil {
		slog.ErrorContext(ctx, "Failed to post transaction",
			"account_id", n.AccountID, "category_id", n.CategoryID, "error", err)
		return fmt.Errorf("post transaction: %w", err)
	}
	return nil
}

// ResetAllBalances sets every account balance to zero without touching
// transactions. Afterward balances may drift from the transaction history;
// that is the documented meaning of an administrative reset.
func (s *FinanceService) ResetAllBalances(ctx context.Context) error {
	if err := s.store.ResetBalances(ctx); err != nil {
		slog.ErrorContext(ctx, "Failed to reset balances", "error", err)
		return err
	}
	return nil
}

// ClearAllTransactions deletes every transaction row. Callers wanting a
// safety copy should use ResetAndClear, which backs up first.
func (s *FinanceService) ClearAllTransactions(ctx context.Context) error {
	if err := s.store.ClearTransactions(ctx); err != nil {
		slog.ErrorContext(ctx, "Failed to clear transactions", "error", err)
		return err
	}
	return nil
}

// ResetAndClear backs up the database file, then clears all transactions and
// zeroes every balance. A failing backup aborts the whole operation.
func (s *FinanceService) ResetAndClear(ctx context.Context) (string, error) {
	backupPath, err := s.store.Backup(s.backupDir)
	if err != nil {
		slog.ErrorContext(ctx, "Backup failed, aborting reset", "error", err)
		return "", fmt.Errorf("backup before reset: %w", err)
	}
	if err := s.ClearAllTransactions(ctx); err != nil {
		return backupPath, err
	}
	if err := s.ResetAllBalances(ctx); err != nil {
		return backupPath, err
	}
	return backupPath, nil
}

// Backup copies the database file into the configured backup directory.
func (s *FinanceService) Backup(ctx context.Context) (string, error) {
	path, err := s.store.Backup(s.backupDir)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to back up database", "error", err)
		return "", err
	}
	return path, nil
}

// TotalBalance sums the balance of every account.
func (s *FinanceService) TotalBalance(ctx context.Context) (core.Money, error) {
	return s.store.TotalBalance(ctx)
}

// ExpensesByCategory maps EXPENSE category names to their in-month totals.
// Categories with no activity in the month are omitted.
func (s *FinanceService) ExpensesByCategory(ctx context.Context, month core.Month) (map[string]core.Money, error) {
	totals, err := s.store.ExpenseTotalsByCategory(ctx, month)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to aggregate expenses by category",
			"month", month.String(), "error", err)
		return nil, err
	}
	out := make(map[string]core.Money, len(totals))
	for _, ct := range totals {
		out[ct.Name] = ct.Total
	}
	return out, nil
}

func (s *FinanceService) Accounts(ctx context.Context) ([]core.Account, error) {
	return s.store.Accounts(ctx)
}

func (s *FinanceService) Categories(ctx context.Context) ([]core.Category, error) {
	return s.store.Categories(ctx)
}

func (s *FinanceService) RecurringExpenses(ctx context.Context) ([]core.RecurringExpense, error) {
	return s.store.RecurringExpenses(ctx)
}

// CreateAccount validates and inserts an account.
func (s *FinanceService) CreateAccount(ctx context.Context, a core.Account) (int64, error) {
	if err := a.Validate(); err != nil {
		return 0, fmt.Errorf("validate account: %w", err)
	}
	return s.store.CreateAccount(ctx, a)
}

// CreateCategory validates and inserts a category. The category type is
// immutable from then on: changing it would invalidate already-posted
// balances, so no update operation exists.
func (s *FinanceService) CreateCategory(ctx context.Context, c core.Category) (int64, error) {
	if err := c.Validate(); err != nil {
		return 0, fmt.Errorf("validate category: %w", err)
	}
	return s.store.CreateCategory(ctx, c)
}

// AddRecurringExpense validates and inserts a recurring expense template.
func (s *FinanceService) AddRecurringExpense(ctx context.Context, re core.RecurringExpense) (int64, error) {
	if err := re.Validate(); err != nil {
		return 0, fmt.Errorf("validate recurring expense: %w", err)
	}
	return s.store.InsertRecurringExpense(ctx, re)
}

// DeleteAccount removes an account; its transactions cascade away.
func (s *FinanceService) DeleteAccount(ctx context.Context, id int64) error {
	return s.store.DeleteAccount(ctx, id)
}

// DeleteCategory removes a category; its transactions cascade away.
func (s *FinanceService) DeleteCategory(ctx context.Context, id int64) error {
	return s.store.DeleteCategory(ctx, id)
}
