package service

import "context"

// UserLocker serializes work for a single user. Different users never contend.
type UserLocker interface {
	// Lock blocks until the user's lock is held or ctx ends. The returned func releases it.
	Lock(ctx context.Context, userID int64) (unlock func(), err error)
}
