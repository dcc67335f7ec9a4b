// Package storage owns the embedded SQLite database: schema migrations,
// default seeding, file backups and every SQL statement the finance core
// issues. One Store value wraps one *sql.DB; it is constructed at startup
// and passed explicitly to the service layer.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"finbook/internal/core"

	_ "modernc.org/sqlite"
)

// backupTimestamp matches the backup file naming scheme
// finance-db-backup-YYYYMMDD-HHmmss.db.
const backupTimestamp = "20060102-150405"

// Store is the single process-wide handle to the finance database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the database file at dbPath and runs the
// schema migrations. The connection has foreign keys enabled so cascade
// deletes on Transactions work.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", "file:"+dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Seed inserts the default accounts and categories when their tables are
// empty. Calling it repeatedly leaves seeded rows unchanged.
func (s *Store) Seed(ctx context.Context) error {
	var accounts int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM Accounts`).Scan(&accounts); err != nil {
		return fmt.Errorf("count accounts: %w", err)
	}
	if accounts == 0 {
		_, err := s.db.ExecContext(ctx, `INSERT INTO Accounts (name, type, balance) VALUES
			('Cash', 'CASH', 100.0),
			('Checking', 'BANK', 1000.0),
			('Credit Card', 'DIGITAL', 500.0)`)
		if err != nil {
			return fmt.Errorf("seed accounts: %w", err)
		}
		slog.InfoContext(ctx, "Database seeded with default accounts")
	}

	var categories int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM Categories`).Scan(&categories); err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if categories == 0 {
		_, err := s.db.ExecContext(ctx, `INSERT INTO Categories (name, budget_limit, type) VALUES
			('Groceries', 500.0, 'EXPENSE'),
			('Utilities', 200.0, 'EXPENSE'),
			('Transport', 150.0, 'EXPENSE'),
			('Salary', 0.0, 'INCOME')`)
		if err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		slog.InfoContext(ctx, "Database seeded with default categories")
	}

	return nil
}

// Backup copies the live database file into dir, creating it if missing.
// Returns the path of the backup file.
func (s *Store) Backup(dir string) (string, error) {
	if _, err := os.Stat(s.path); err != nil {
		return "", fmt.Errorf("database file not found for backup: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	dest := filepath.Join(dir, fmt.Sprintf("finance-db-backup-%s.db",
		time.Now().Format(backupTimestamp)))

	src, err := os.Open(s.path)
	if err != nil {
		return "", fmt.Errorf("open database file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create backup file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("copy database file: %w", err)
	}

	slog.Info("Database backup created", "path", dest)
	return dest, nil
}

// PostTransaction runs the atomic posting protocol: the transaction row and
// the signed balance delta on its account are one indivisible unit.
func (s *Store) PostTransaction(ctx context.Context, n core.NewTransaction) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var categoryType core.CategoryType
	err = tx.QueryRowContext(ctx,
		`SELECT type FROM Categories WHERE id = ?`, n.CategoryID).Scan(&categoryType)
	if err == sql.ErrNoRows {
		return fmt.Errorf("category %d: %w", n.CategoryID, core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("look up category type: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO Transactions (account_id, category_id, amount, date, note, image_path)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		n.AccountID, n.CategoryID, n.Amount.Float64(), n.Date.String(),
		nullable(n.Note), nullable(n.ImagePath))
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	update := `UPDATE Accounts SET balance = balance - ? WHERE id = ?`
	if categoryType == core.Income {
		update = `UPDATE Accounts SET balance = balance + ? WHERE id = ?`
	}
	res, err := tx.ExecContext(ctx, update, n.Amount.Float64(), n.AccountID)
	if err != nil {
		return fmt.Errorf("update account balance: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("account %d: %w", n.AccountID, core.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction posted",
		"account_id", n.AccountID,
		"category_id", n.CategoryID,
		"amount", n.Amount.String(),
		"date", n.Date.String())
	return nil
}

// ClearTransactions deletes every transaction row and, best-effort, resets
// the autoincrement sequence. Both statements run in one transaction.
func (s *Store) ClearTransactions(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM Transactions`); err != nil {
		return fmt.Errorf("delete transactions: %w", err)
	}

	// Not critical if sqlite_sequence does not exist
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM sqlite_sequence WHERE name = 'Transactions'`); err != nil {
		slog.WarnContext(ctx, "Could not reset transactions sequence", "error", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	slog.InfoContext(ctx, "All transactions cleared")
	return nil
}

// ResetBalances sets every account balance to zero. Transactions are not
// touched, so balances may no longer equal the signed transaction sum.
func (s *Store) ResetBalances(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE Accounts SET balance = 0`); err != nil {
		return fmt.Errorf("reset account balances: %w", err)
	}
	slog.InfoContext(ctx, "All account balances reset to zero")
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
