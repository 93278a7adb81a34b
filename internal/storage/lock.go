package storage

import (
	"context"
	"sync"
	"time"
)

// LocalLock is a Locker for a single process, used when the target store
// has no shared lock of its own.
type LocalLock struct {
	mu      sync.Mutex
	owner   string
	expires time.Time
	now     func() time.Time
}

func NewLocalLock() *LocalLock {
	return &LocalLock{now: time.Now}
}

func (l *LocalLock) AcquireLock(_ context.Context, owner string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if l.owner != "" && l.owner != owner && now.Before(l.expires) {
		return false, nil
	}
	l.owner = owner
	l.expires = now.Add(ttl)
	return true, nil
}

func (l *LocalLock) RenewLock(_ context.Context, owner string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if l.owner != owner || !now.Before(l.expires) {
		return false, nil
	}
	l.expires = now.Add(ttl)
	return true, nil
}

func (l *LocalLock) ReleaseLock(_ context.Context, owner string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.owner == owner {
		l.owner = ""
		l.expires = time.Time{}
	}
	return nil
}
