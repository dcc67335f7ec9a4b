package storage

import (
	"context"
	"database/sql"
	"fmt"

	"finbook/internal/core"
)

// CategoryByID returns a single category or core.ErrNotFound.
func (s *Store) CategoryByID(ctx context.Context, id int64) (core.Category, error) {
	var (
		c     core.Category
		limit float64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, budget_limit, type FROM Categories WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &limit, &c.Type)
	if err == sql.ErrNoRows {
		return core.Category{}, fmt.Errorf("category %d: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return core.Category{}, fmt.Errorf("get category: %w", err)
	}
	c.BudgetLimit = core.MoneyFromFloat(limit)
	return c, nil
}

// Accounts lists all accounts ordered by name.
func (s *Store) Accounts(ctx context.Context) ([]core.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, type, balance FROM Accounts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []core.Account
	for rows.Next() {
		var (
			a       core.Account
			balance float64
		)
		if err := rows.Scan(&a.ID, &a.Name, &a.Type, &balance); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		a.Balance = core.MoneyFromFloat(balance)
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// Categories lists all categories ordered by name.
func (s *Store) Categories(ctx context.Context) ([]core.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, budget_limit, type FROM Categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []core.Category
	for rows.Next() {
		var (
			c     core.Category
			limit float64
		)
		if err := rows.Scan(&c.ID, &c.Name, &limit, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.BudgetLimit = core.MoneyFromFloat(limit)
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// RecurringExpenses lists all recurring expense templates ordered by due day.
func (s *Store) RecurringExpenses(ctx context.Context) ([]core.RecurringExpense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, amount, due_day FROM RecurringExpenses ORDER BY due_day, name`)
	if err != nil {
		return nil, fmt.Errorf("list recurring expenses: %w", err)
	}
	defer rows.Close()

	return scanRecurring(rows)
}

// RecurringExpensesDueOn returns the templates whose due_day equals day.
func (s *Store) RecurringExpensesDueOn(ctx context.Context, day int) ([]core.RecurringExpense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, amount, due_day FROM RecurringExpenses WHERE due_day = ?`, day)
	if err != nil {
		return nil, fmt.Errorf("query recurring expenses due: %w", err)
	}
	defer rows.Close()

	return scanRecurring(rows)
}

func scanRecurring(rows *sql.Rows) ([]core.RecurringExpense, error) {
	var expenses []core.RecurringExpense
	for rows.Next() {
		var (
			re     core.RecurringExpense
			amount float64
		)
		if err := rows.Scan(&re.ID, &re.Name, &amount, &re.DueDay); err != nil {
			return nil, fmt.Errorf("scan recurring expense: %w", err)
		}
		re.Amount = core.MoneyFromFloat(amount)
		expenses = append(expenses, re)
	}
	return expenses, rows.Err()
}

// TotalBalance sums the balance of every account.
func (s *Store) TotalBalance(ctx context.Context) (core.Money, error) {
	var total float64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(balance), 0) FROM Accounts`).Scan(&total)
	if err != nil {
		return core.Money{}, fmt.Errorf("get total balance: %w", err)
	}
	return core.MoneyFromFloat(total), nil
}

// SpentInMonth sums the transaction amounts recorded against a category
// within the month. Months with no activity yield 0.00.
func (s *Store) SpentInMonth(ctx context.Context, categoryID int64, month core.Month) (core.Money, error) {
	start, end := month.Bounds()
	var spent float64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0)
		 FROM Transactions
		 WHERE category_id = ? AND date >= ? AND date <= ?`,
		categoryID, start.String(), end.String()).Scan(&spent)
	if err != nil {
		return core.Money{}, fmt.Errorf("sum month spending: %w", err)
	}
	return core.MoneyFromFloat(spent), nil
}

// ExpenseTotalsByCategory aggregates in-month spending per EXPENSE category,
// descending by total. Categories without in-month activity are omitted.
func (s *Store) ExpenseTotalsByCategory(ctx context.Context, month core.Month) ([]core.CategoryTotal, error) {
	start, end := month.Bounds()
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.name, COALESCE(SUM(t.amount), 0) AS total
		 FROM Categories c
		 LEFT JOIN Transactions t ON c.id = t.category_id
		 WHERE c.type = 'EXPENSE' AND t.date >= ? AND t.date <= ?
		 GROUP BY c.id, c.name
		 HAVING total > 0
		 ORDER BY total DESC`,
		start.String(), end.String())
	if err != nil {
		return nil, fmt.Errorf("aggregate expenses by category: %w", err)
	}
	defer rows.Close()

	var totals []core.CategoryTotal
	for rows.Next() {
		var (
			ct    core.CategoryTotal
			total float64
		)
		if err := rows.Scan(&ct.Name, &total); err != nil {
			return nil, fmt.Errorf("scan category total: %w", err)
		}
		ct.Total = core.MoneyFromFloat(total)
		totals = append(totals, ct)
	}
	return totals, rows.Err()
}

// MonthTransactions lists every transaction dated within the month, ascending
// by date, joined with account and category names for the report.
func (s *Store) MonthTransactions(ctx context.Context, month core.Month) ([]core.TransactionDetail, error) {
	start, end := month.Bounds()
	rows, err := s.db.QueryContext(ctx,
		`SELECT t.date, t.amount, t.note, a.name AS account_name, c.name AS category_name
		 FROM Transactions t
		 LEFT JOIN Accounts a ON t.account_id = a.id
		 LEFT JOIN Categories c ON t.category_id = c.id
		 WHERE t.date >= ? AND t.date <= ?
		 ORDER BY t.date ASC`,
		start.String(), end.String())
	if err != nil {
		return nil, fmt.Errorf("list month transactions: %w", err)
	}
	defer rows.Close()

	var details []core.TransactionDetail
	for rows.Next() {
		var (
			date    string
			amount  float64
			note    sql.NullString
			account sql.NullString
			cat     sql.NullString
		)
		if err := rows.Scan(&date, &amount, &note, &account, &cat); err != nil {
			return nil, fmt.Errorf("scan transaction detail: %w", err)
		}
		d, err := core.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("parse transaction date: %w", err)
		}
		details = append(details, core.TransactionDetail{
			Date:     d,
			Account:  account.String,
			Category: cat.String,
			Amount:   core.MoneyFromFloat(amount),
			Note:     note.String,
		})
	}
	return details, rows.Err()
}

// TransactionCount returns the number of rows in Transactions.
func (s *Store) TransactionCount(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM Transactions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return count, nil
}

// CreateAccount inserts an account and returns its assigned id.
func (s *Store) CreateAccount(ctx context.Context, a core.Account) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO Accounts (name, type, balance) VALUES (?, ?, ?)`,
		a.Name, a.Type, a.Balance.Float64())
	if err != nil {
		return 0, fmt.Errorf("insert account: %w", err)
	}
	return res.LastInsertId()
}

// CreateCategory inserts a category and returns its assigned id.
func (s *Store) CreateCategory(ctx context.Context, c core.Category) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO Categories (name, budget_limit, type) VALUES (?, ?, ?)`,
		c.Name, c.BudgetLimit.Float64(), c.Type)
	if err != nil {
		return 0, fmt.Errorf("insert category: %w", err)
	}
	return res.LastInsertId()
}

// InsertRecurringExpense inserts a recurring expense template and returns
// its assigned id.
func (s *Store) InsertRecurringExpense(ctx context.Context, re core.RecurringExpense) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO RecurringExpenses (name, amount, due_day) VALUES (?, ?, ?)`,
		re.Name, re.Amount.Float64(), re.DueDay)
	if err != nil {
		return 0, fmt.Errorf("insert recurring expense: %w", err)
	}
	return res.LastInsertId()
}

// DeleteAccount removes an account; its transactions cascade.
func (s *Store) DeleteAccount(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "Accounts", id)
}

// DeleteCategory removes a category; its transactions cascade.
func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "Categories", id)
}

func (s *Store) deleteByID(ctx context.Context, table string, id int64) error {
	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table), id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%s id %d: %w", table, id, core.ErrNotFound)
	}
	return nil
}
