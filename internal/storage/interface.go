package storage

import (
	"context"
	"time"
)

// Source supplies the rows of a rate table. Every call re-reads the
// underlying store; implementations keep no cross-request copy.
type Source interface {
	FetchRows(ctx context.Context) ([]Row, error)
	Close() error
}

// Importer replaces the stored rows of a sheet.
type Importer interface {
	ImportRows(ctx context.Context, sheet string, rows []Row) error
}

// Refresher is implemented by targets whose snapshots can expire.
// RefreshTable extends the snapshot of sheet and reports whether it still exists.
type Refresher interface {
	RefreshTable(ctx context.Context, sheet string) (bool, error)
}

// Locker elects a single publisher among replicas sharing a store.
type Locker interface {
	AcquireLock(ctx context.Context, owner string, ttl time.Duration) (bool, error)
	RenewLock(ctx context.Context, owner string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, owner string) error
}
