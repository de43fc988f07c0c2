package service

import (
	"context"

	"github.com/google/uuid"
)

// PropertyLocker serializes calendar writes per property.
// Lock blocks until the lock is held or ctx is done. The returned unlock
// function must be called exactly once.
type PropertyLocker interface {
	Lock(ctx context.Context, propertyID uuid.UUID) (unlock func(), err error)
}
