package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocker_MutualExclusion(t *testing.T) {
	locker := NewMemoryLocker()
	propertyID := uuid.New()

	var inside, maxInside int32
	var wg sync.WaitGroup

	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock, err := locker.Lock(context.Background(), propertyID)
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()

			n := atomic.AddInt32(&inside, 1)
			for {
				cur := atomic.LoadInt32(&maxInside)
				if n <= cur || atomic.CompareAndSwapInt32(&maxInside, cur, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Equal(t, 0, locker.(*memoryLocker).size())
}

func TestMemoryLocker_IndependentProperties(t *testing.T) {
	locker := NewMemoryLocker()

	unlockA, err := locker.Lock(context.Background(), uuid.New())
	require.NoError(t, err)
	defer unlockA()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	unlockB, err := locker.Lock(ctx, uuid.New())
	require.NoError(t, err)
	unlockB()
}

func TestMemoryLocker_TimesOut(t *testing.T) {
	locker := NewMemoryLocker()
	propertyID := uuid.New()

	unlock, err := locker.Lock(context.Background(), propertyID)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = locker.Lock(ctx, propertyID)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	unlock() // second call is a no-op

	assert.Equal(t, 0, locker.(*memoryLocker).size())

	again, err := locker.Lock(context.Background(), propertyID)
	require.NoError(t, err)
	again()
}
