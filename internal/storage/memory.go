package storage

import (
	"context"
	"sync"
)

// MemorySource serves rows held in process memory.
type MemorySource struct {
	mu   sync.RWMutex
	rows []Row
}

// NewMemorySource creates a memory source holding a copy of rows
func NewMemorySource(rows []Row) *MemorySource {
	ms := &MemorySource{}
	ms.DumpRows(rows)
	return ms
}

// DumpRows swaps the held rows for a copy of rows.
func (ms *MemorySource) DumpRows(rows []Row) {
	cp := make([]Row, len(rows))
	for i, r := range rows {
		cp[i] = cloneRow(r)
	}

	ms.mu.Lock()
	ms.rows = cp
	ms.mu.Unlock()
}

func (ms *MemorySource) ImportRows(_ context.Context, _ string, rows []Row) error {
	ms.DumpRows(rows)
	return nil
}

func (ms *MemorySource) FetchRows(ctx context.Context) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ms.mu.RLock()
	defer ms.mu.RUnlock()

	out := make([]Row, len(ms.rows))
	for i, r := range ms.rows {
		out[i] = cloneRow(r)
	}
	return out, nil
}

func (ms *MemorySource) Close() error { return nil }

func cloneRow(r Row) Row {
	cp := make(Row, len(r))
	for k, v := range r {
		cp[k] = v
	}
	return cp
}
