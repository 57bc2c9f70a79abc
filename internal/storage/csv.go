package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"spendlog/internal/core"
)

// csvHeader is the fixed schema row of the store.
var csvHeader = []string{"Date", "Category", "Amount", "Description"}

// CSVRepository persists expenses as a header-prefixed CSV file, one record
// per row. Appends never read or rewrite existing content.
type CSVRepository struct {
	path string
}

func NewCSVRepository(path string) (*CSVRepository, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}
	return &CSVRepository{path: path}, nil
}

// Initialize creates the store with only the header row when it does not
// exist yet. Calling it again is a no-op: the header is never duplicated and
// existing records are never erased.
func (r *CSVRepository) Initialize(ctx context.Context) error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat store: %w", err)
	}

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}

	slog.InfoContext(ctx, "Expense store created", "path", r.path)
	return nil
}

// Append validates the record and writes it as one CSV row at the end of the
// store. The file handle is scoped to the call and released on all paths.
func (r *CSVRepository) Append(ctx context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open store for append: %w", err)
	}

	w := csv.NewWriter(f)
	record := []string{
		e.Date.String(),
		e.Category.String(),
		e.Amount.StringFixed(2),
		e.Description,
	}
	if err := w.Write(record); err != nil {
		f.Close()
		return fmt.Errorf("append expense: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("append expense: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}

	slog.InfoContext(ctx, "Expense appended",
		"date", e.Date.String(),
		"category", e.Category.String(),
		"amount", e.Amount.StringFixed(2))
	return nil
}

// LoadAll scans the store from the top and parses every data row into a typed
// expense, preserving append order. A row that cannot be parsed yields
// ErrMalformedRow; nothing is silently coerced.
func (r *CSVRepository) LoadAll(ctx context.Context) ([]core.Expense, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(csvHeader)

	// Header row; an entirely empty store is treated as having no records.
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var expenses []core.Expense
	row := 1
	for {
		row++
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, malformedRow(row, err)
		}
		e, err := decodeExpense(record[0], record[1], record[2], record[3])
		if err != nil {
			return nil, malformedRow(row, err)
		}
		expenses = append(expenses, e)
	}

	slog.DebugContext(ctx, "Expense store loaded", "path", r.path, "records", len(expenses))
	return expenses, nil
}

func (r *CSVRepository) Close() error {
	return nil
}
