package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendlog/internal/core"
)

func TestMemoryRepository(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.Initialize(ctx))

	require.NoError(t, repo.Append(ctx, testExpense(core.Food, "5.00", "Lunch")))
	require.NoError(t, repo.Append(ctx, testExpense(core.Bills, "30.00", "Water")))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, core.Food, loaded[0].Category)
	assert.Equal(t, core.Bills, loaded[1].Category)

	// LoadAll hands out a copy; mutating it must not touch the store.
	loaded[0].Description = "changed"
	again, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Lunch", again[0].Description)
}

func TestMemoryRepositoryRejectsInvalid(t *testing.T) {
	repo := NewMemoryRepository()

	err := repo.Append(context.Background(), testExpense(core.Food, "0", "free"))
	assert.ErrorIs(t, err, core.ErrInvalidAmount)
}
