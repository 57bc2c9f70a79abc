package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendlog/internal/core"
	"spendlog/internal/storage"
)

func newTestService(t *testing.T) *LedgerService {
	t.Helper()
	svc := NewLedgerService(storage.NewMemoryRepository())
	require.NoError(t, svc.Initialize(context.Background()))
	return svc
}

func expense(c core.Category, amount string) core.Expense {
	return core.NewExpense(core.NewDate(2025, 5, 20), c, decimal.RequireFromString(amount), "test")
}

func TestAddAndListExpenses(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddExpense(ctx, expense(core.Food, "5.00")))
	require.NoError(t, svc.AddExpense(ctx, expense(core.Transport, "10.00")))

	expenses, err := svc.ListExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, core.Food, expenses[0].Category)
	assert.Equal(t, core.Transport, expenses[1].Category)
}

func TestAddExpenseRejectsInvalid(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	err := svc.AddExpense(ctx, expense(core.Food, "0"))
	assert.ErrorIs(t, err, core.ErrInvalidAmount)

	err = svc.AddExpense(ctx, expense("Groceries", "5.00"))
	assert.ErrorIs(t, err, core.ErrUnknownCategory)

	expenses, err := svc.ListExpenses(ctx)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestSummary(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddExpense(ctx, expense(core.Food, "5.00")))
	require.NoError(t, svc.AddExpense(ctx, expense(core.Food, "15.00")))
	require.NoError(t, svc.AddExpense(ctx, expense(core.Transport, "10.00")))

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.True(t, summary.GrandTotal.Equal(decimal.RequireFromString("30.00")))
	assert.Equal(t, core.Food, summary.Top)
}

func TestSummaryEmptyLedger(t *testing.T) {
	svc := newTestService(t)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.True(t, summary.IsEmpty())
}

func TestExpensesByCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddExpense(ctx, expense(core.Food, "5.00")))
	require.NoError(t, svc.AddExpense(ctx, expense(core.Transport, "10.00")))

	matched, subtotal, err := svc.ExpensesByCategory(ctx, core.Transport)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.True(t, subtotal.Equal(decimal.RequireFromString("10.00")))

	matched, subtotal, err = svc.ExpensesByCategory(ctx, core.Bills)
	require.NoError(t, err)
	assert.Empty(t, matched)
	assert.True(t, subtotal.IsZero())
}

func TestCloseWithNilRepository(t *testing.T) {
	svc := &LedgerService{}
	assert.NoError(t, svc.Close())
}
