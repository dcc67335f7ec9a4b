package core

import (
	"errors"
	"strings"
)

const (
	AccountCash    AccountType = "CASH"
	AccountBank    AccountType = "BANK"
	AccountDigital AccountType = "DIGITAL"
)

const (
	Income  CategoryType = "INCOME"
	Expense CategoryType = "EXPENSE"
)

type (
	AccountType  string
	CategoryType string

	// Account is a named bucket of money with an incrementally maintained balance.
	Account struct {
		ID      int64
		Name    string
		Type    AccountType
		Balance Money
	}

	// Category classifies transactions. The type decides the polarity applied
	// to the account balance at post time; BudgetLimit is a per-calendar-month
	// cap and only meaningful for EXPENSE categories.
	Category struct {
		ID          int64
		Name        string
		BudgetLimit Money
		Type        CategoryType
	}

	// Transaction is one recorded movement. Amount is always positive; the
	// sign is implicit in the referenced category's type.
	Transaction struct {
		ID         int64
		AccountID  int64
		CategoryID int64
		Amount     Money
		Date       Date
		Note       string
		ImagePath  string
	}

	// NewTransaction carries the input of a posting. Note and ImagePath are
	// optional; empty strings are stored as NULL.
	NewTransaction struct {
		AccountID  int64
		CategoryID int64
		Amount     Money
		Date       Date
		Note       string
		ImagePath  string
	}

	// RecurringExpense is a monthly-repeating scheduled charge template.
	// It is informational only and never auto-posts.
	RecurringExpense struct {
		ID     int64
		Name   string
		Amount Money
		DueDay int
	}
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
	ErrEmptyName     = errors.New("empty name")
	ErrInvalidDueDay = errors.New("due day must be between 1 and 31")
	ErrInvalidType   = errors.New("invalid type")
)

func (t AccountType) Validate() error {
	switch t {
	case AccountCash, AccountBank, AccountDigital:
		return nil
	}
	return ErrInvalidType
}

func (t CategoryType) Validate() error {
	switch t {
	case Income, Expense:
		return nil
	}
	return ErrInvalidType
}

func (a Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	return a.Type.Validate()
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if c.BudgetLimit.IsNegative() {
		return ErrInvalidAmount
	}
	return c.Type.Validate()
}

func (n NewTransaction) Validate() error {
	if !n.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if err := n.Date.Validate(); err != nil {
		return err
	}
	return nil
}

func (re RecurringExpense) Validate() error {
	if strings.TrimSpace(re.Name) == "" {
		return ErrEmptyName
	}
	if !re.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if re.DueDay < 1 || re.DueDay > 31 {
		return ErrInvalidDueDay
	}
	return nil
}
