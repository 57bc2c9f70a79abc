package storage

import (
	"context"
	"sync"

	"spendlog/internal/core"
)

// MemoryRepository keeps expenses in a slice. Used by tests and by the
// memory backend; nothing survives the process.
type MemoryRepository struct {
	mu    sync.Mutex
	items []core.Expense
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Initialize(_ context.Context) error {
	return nil
}

func (r *MemoryRepository) Append(_ context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, e)
	return nil
}

func (r *MemoryRepository) LoadAll(_ context.Context) ([]core.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]core.Expense(nil), r.items...), nil
}

func (r *MemoryRepository) Close() error {
	return nil
}
