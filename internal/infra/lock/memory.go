// Package lock provides the per-user locks the request gate serializes on.
package lock

import (
	"context"
	"sync"

	"vidgate/internal/domain/service"
)

// memoryLocker is a keyed mutex for a single process. Entries are dropped once nobody holds or waits on them.
type memoryLocker struct {
	mu      sync.Mutex
	entries map[int64]*memoryEntry
}

type memoryEntry struct {
	sem  chan struct{}
	refs int
}

// NewMemoryLocker creates an in-process locker.
func NewMemoryLocker() service.UserLocker {
	return &memoryLocker{entries: make(map[int64]*memoryEntry)}
}

func (l *memoryLocker) Lock(ctx context.Context, userID int64) (func(), error) {
	entry := l.acquire(userID)

	select {
	case entry.sem <- struct{}{}:
	case <-ctx.Done():
		l.release(userID)

		return nil, ctx.Err()
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			<-entry.sem
			l.release(userID)
		})
	}, nil
}

func (l *memoryLocker) acquire(userID int64) *memoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[userID]
	if !ok {
		entry = &memoryEntry{sem: make(chan struct{}, 1)}
		l.entries[userID] = entry
	}
	entry.refs++

	return entry
}

func (l *memoryLocker) release(userID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := l.entries[userID]
	entry.refs--
	if entry.refs == 0 {
		delete(l.entries, userID)
	}
}
