package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"spendlog/internal/core"
	"spendlog/internal/storage"
)

// LedgerService orchestrates validation and the expense repository. Reads
// always go back to the store; no record state is cached between calls.
type LedgerService struct {
	repo storage.Repository
}

func NewLedgerService(repo storage.Repository) *LedgerService {
	return &LedgerService{repo: repo}
}

// Initialize prepares the underlying store. Safe to call on every start.
func (s *LedgerService) Initialize(ctx context.Context) error {
	if err := s.repo.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	return nil
}

// AddExpense validates the record and appends it to the store. Invalid
// records never reach storage.
func (s *LedgerService) AddExpense(ctx context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := s.repo.Append(ctx, e); err != nil {
		return fmt.Errorf("save expense: %w", err)
	}
	return nil
}

// ListExpenses returns every stored expense in append order.
func (s *LedgerService) ListExpenses(ctx context.Context) ([]core.Expense, error) {
	expenses, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	return expenses, nil
}

// Summary loads all expenses and aggregates them per category.
func (s *LedgerService) Summary(ctx context.Context) (core.Summary, error) {
	expenses, err := s.repo.LoadAll(ctx)
	if err != nil {
		return core.Summary{}, fmt.Errorf("load expenses: %w", err)
	}
	return core.Summarize(expenses), nil
}

// ExpensesByCategory returns the expenses for one category plus their
// subtotal.
func (s *LedgerService) ExpensesByCategory(ctx context.Context, category core.Category) ([]core.Expense, decimal.Decimal, error) {
	expenses, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("load expenses: %w", err)
	}
	matched, subtotal := core.FilterByCategory(expenses, category)
	return matched, subtotal, nil
}

// Close releases the repository.
func (s *LedgerService) Close() error {
	if s.repo == nil {
		return nil
	}
	if err := s.repo.Close(); err != nil {
		return fmt.Errorf("close repository: %w", err)
	}
	return nil
}
