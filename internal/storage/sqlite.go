package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fintrack/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists every collection in a single SQLite database.
// Saves replace the whole collection inside one transaction, matching the
// whole-collection persistence contract of the stores.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// replaceAll runs a delete-then-insert of a full collection in one
// transaction.
func (s *SQLiteStore) replaceAll(ctx context.Context, table string, insert func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	if err := insert(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) LoadAccounts(ctx context.Context) ([]core.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, bank_name, currency, amount FROM accounts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []core.Account
	for rows.Next() {
		var a core.Account
		var currency string
		if err := rows.Scan(&a.ID, &a.BankName, &currency, &a.Balance); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		a.Currency = core.Currency(currency)
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (s *SQLiteStore) SaveAccounts(ctx context.Context, accounts []core.Account) error {
	return s.replaceAll(ctx, "accounts", func(tx *sql.Tx) error {
		for i, a := range accounts {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO accounts (id, bank_name, currency, amount, position) VALUES (?, ?, ?, ?, ?)`,
				a.ID, a.BankName, string(a.Currency), a.Balance, i)
			if err != nil {
				return fmt.Errorf("insert account %s: %w", a.ID, err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) LoadLoans(ctx context.Context) ([]core.Loan, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, bank_name, currency, loan_amount, interest_rate, tenure_months,
		        emi_paid_count, linked_account_id
		 FROM loans ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var loans []core.Loan
	for rows.Next() {
		var l core.Loan
		var currency string
		var linked sql.NullString
		if err := rows.Scan(&l.ID, &l.BankName, &currency, &l.Principal, &l.InterestRate,
			&l.TenureMonths, &l.EMIsPaid, &linked); err != nil {
			return nil, fmt.Errorf("scan loan: %w", err)
		}
		l.Currency = core.Currency(currency)
		l.LinkedAccountID = linked.String
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

func (s *SQLiteStore) SaveLoans(ctx context.Context, loans []core.Loan) error {
	return s.replaceAll(ctx, "loans", func(tx *sql.Tx) error {
		for i, l := range loans {
			var linked any
			if l.LinkedAccountID != "" {
				linked = l.LinkedAccountID
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO loans (id, bank_name, currency, loan_amount, interest_rate,
				                    tenure_months, emi_paid_count, linked_account_id, position)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				l.ID, l.BankName, string(l.Currency), l.Principal, l.InterestRate,
				l.TenureMonths, l.EMIsPaid, linked, i)
			if err != nil {
				return fmt.Errorf("insert loan %s: %w", l.ID, err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) LoadTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, amount, currency, date, category, description FROM transactions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var t core.Transaction
		var currency, category, date string
		if err := rows.Scan(&t.ID, &t.Amount, &currency, &date, &category, &t.Description); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Currency = core.Currency(currency)
		t.Category = core.Category(category)
		t.Date = parseStoredTime(ctx, date)
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

func (s *SQLiteStore) SaveTransactions(ctx context.Context, txs []core.Transaction) error {
	return s.replaceAll(ctx, "transactions", func(tx *sql.Tx) error {
		for i, t := range txs {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO transactions (id, amount, currency, date, category, description, position)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				t.ID, t.Amount, string(t.Currency), formatStoredTime(t.Date),
				string(t.Category), t.Description, i)
			if err != nil {
				return fmt.Errorf("insert transaction %s: %w", t.ID, err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) LoadBudgets(ctx context.Context) ([]core.Budget, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, limit_amount, currency, period, due_date, spent FROM budgets ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query budgets: %w", err)
	}
	defer rows.Close()

	var budgets []core.Budget
	for rows.Next() {
		var b core.Budget
		var category, currency, period string
		var due sql.NullString
		if err := rows.Scan(&b.ID, &category, &b.Limit, &currency, &period, &due, &b.Spent); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		b.Category = core.Category(category)
		b.Currency = core.Currency(currency)
		b.Period = core.Period(period)
		if due.Valid {
			b.DueDate = parseStoredTime(ctx, due.String)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func (s *SQLiteStore) SaveBudgets(ctx context.Context, budgets []core.Budget) error {
	return s.replaceAll(ctx, "budgets", func(tx *sql.Tx) error {
		for i, b := range budgets {
			var due any
			if !b.DueDate.IsZero() {
				due = formatStoredTime(b.DueDate)
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO budgets (id, category, limit_amount, currency, period, due_date, spent, position)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				b.ID, string(b.Category), b.Limit, string(b.Currency), string(b.Period), due, b.Spent, i)
			if err != nil {
				return fmt.Errorf("insert budget %s: %w", b.ID, err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) LoadReminders(ctx context.Context) ([]core.Reminder, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, amount, due_date, is_completed, reminder_type FROM reminders ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query reminders: %w", err)
	}
	defer rows.Close()

	var reminders []core.Reminder
	for rows.Next() {
		var r core.Reminder
		var due, rt string
		if err := rows.Scan(&r.ID, &r.Title, &r.Amount, &due, &r.Completed, &rt); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		r.DueDate = parseStoredTime(ctx, due)
		r.Type = core.ReminderType(rt)
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}

func (s *SQLiteStore) SaveReminders(ctx context.Context, reminders []core.Reminder) error {
	return s.replaceAll(ctx, "reminders", func(tx *sql.Tx) error {
		for i, r := range reminders {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO reminders (id, title, amount, due_date, is_completed, reminder_type, position)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				r.ID, r.Title, r.Amount, formatStoredTime(r.DueDate), r.Completed, string(r.Type), i)
			if err != nil {
				return fmt.Errorf("insert reminder %s: %w", r.ID, err)
			}
		}
		return nil
	})
}

// Timestamps are stored as RFC 3339 text so the schema stays portable
// across sqlite drivers.

func formatStoredTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func parseStoredTime(ctx context.Context, s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		slog.WarnContext(ctx, "Unparseable stored timestamp", "value", s, "error", err)
		return time.Time{}
	}
	return t
}
