// Package lock implements service.PropertyLocker for a single process (memory)
// and for a fleet of API instances sharing a redis server.
package lock

import (
	"context"
	"sync"

	"rental/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// memoryLocker holds one channel-backed mutex per property. Entries are
// reference counted and dropped when no goroutine holds or waits for them.
type memoryLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*memoryEntry
}

type memoryEntry struct {
	sem  chan struct{}
	refs int
}

// NewMemoryLocker creates an in-process property locker.
func NewMemoryLocker() service.PropertyLocker {
	return &memoryLocker{locks: make(map[uuid.UUID]*memoryEntry)}
}

// Lock blocks until propertyID is free or ctx is done.
func (l *memoryLocker) Lock(ctx context.Context, propertyID uuid.UUID) (func(), error) {
	entry := l.acquireEntry(propertyID)

	select {
	case entry.sem <- struct{}{}:
	case <-ctx.Done():
		l.releaseEntry(propertyID, entry)

		return nil, errors.Wrap(ctx.Err(), "wait for property lock")
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			<-entry.sem
			l.releaseEntry(propertyID, entry)
		})
	}, nil
}

func (l *memoryLocker) acquireEntry(propertyID uuid.UUID) *memoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.locks[propertyID]
	if !ok {
		entry = &memoryEntry{sem: make(chan struct{}, 1)}
		l.locks[propertyID] = entry
	}
	entry.refs++

	return entry
}

func (l *memoryLocker) releaseEntry(propertyID uuid.UUID, entry *memoryEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, propertyID)
	}
}

// size reports the number of tracked properties.
func (l *memoryLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.locks)
}
