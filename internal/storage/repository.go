// Package storage provides the durable expense stores. The CSV repository is
// the primary store and defines the interchange format; SQLite and in-memory
// repositories implement the same contract for alternative deployments and
// tests.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"spendlog/internal/core"
)

// Repository is the durable sequential store of expense records.
type Repository interface {
	// Initialize prepares the store on first use and is a no-op afterwards.
	Initialize(ctx context.Context) error
	// Append adds one record to the end of the store. Existing records are
	// never touched.
	Append(ctx context.Context, e core.Expense) error
	// LoadAll reads the whole store from the beginning, in append order.
	LoadAll(ctx context.Context) ([]core.Expense, error)
	Close() error
}

// ErrMalformedRow marks a stored record that cannot be parsed back into an
// expense. This is a data-integrity fault, not recoverable here.
var ErrMalformedRow = errors.New("malformed expense row")

func malformedRow(row int, cause error) error {
	return fmt.Errorf("%w %d: %v", ErrMalformedRow, row, cause)
}

// decodeExpense rebuilds a typed expense from its stored textual fields.
// The stored amount must be numeric and positive; a blank description keeps
// the permissive placeholder behavior of the input path.
func decodeExpense(date, category, amount, description string) (core.Expense, error) {
	d, err := core.ParseDate(date)
	if err != nil {
		return core.Expense{}, fmt.Errorf("date %q: %w", date, err)
	}
	c, err := core.ParseCategory(category)
	if err != nil {
		return core.Expense{}, fmt.Errorf("category %q: %w", category, err)
	}
	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil || !value.IsPositive() {
		return core.Expense{}, fmt.Errorf("amount %q: %w", amount, core.ErrInvalidAmount)
	}
	return core.NewExpense(d, c, value, description), nil
}
