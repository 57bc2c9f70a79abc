package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"spendlog/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository stores expenses in a SQLite database file. It honors the
// same append-only contract as the CSV store: records are inserted once and
// read back in insertion order.
type SQLiteRepository struct {
	db     *sql.DB
	dbPath string
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
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

	return &SQLiteRepository{db: db, dbPath: dbPath}, nil
}

// Initialize applies the embedded schema migrations. Running it again is a
// no-op once the schema is current.
func (r *SQLiteRepository) Initialize(ctx context.Context) error {
	if err := RunMigrations(r.dbPath); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	slog.DebugContext(ctx, "Expense schema ready", "path", r.dbPath)
	return nil
}

func (r *SQLiteRepository) Append(ctx context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (spent_on, category, amount, description) VALUES (?, ?, ?, ?)`,
		e.Date.String(), e.Category.String(), e.Amount.StringFixed(2), e.Description)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense appended",
		"date", e.Date.String(),
		"category", e.Category.String(),
		"amount", e.Amount.StringFixed(2))
	return nil
}

func (r *SQLiteRepository) LoadAll(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, spent_on, category, amount, description FROM expenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select expenses: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		var id int64
		var date, category, amount, detail string
		if err := rows.Scan(&id, &date, &category, &amount, &detail); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e, err := decodeExpense(date, category, amount, detail)
		if err != nil {
			return nil, malformedRow(int(id), err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	return expenses, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}
