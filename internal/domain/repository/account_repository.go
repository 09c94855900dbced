// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"vidgate/internal/domain/entity"
)

// ErrAccountNotFound is returned when no account row exists for the user.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository is the entitlement store. Every mutation is a single
// atomic statement scoped to one user's record.
type AccountRepository interface {
	// EnsureAccount creates the account when missing and refreshes the display name.
	EnsureAccount(ctx context.Context, userID int64, displayName string) error

	// GetAccount retrieves the full account.
	GetAccount(ctx context.Context, userID int64) (*entity.Account, error)

	// GetCredential returns the stored credential, nil when there is none.
	GetCredential(ctx context.Context, userID int64) ([]byte, error)

	// SetCredential stores the credential, creating the account when missing.
	SetCredential(ctx context.Context, userID int64, credential []byte) error

	// DeleteCredential clears the credential. TempPremiumGranted is left untouched.
	DeleteCredential(ctx context.Context, userID int64) error

	// GetUsage returns the quota projection; a missing account reads as a fresh one.
	GetUsage(ctx context.Context, userID int64) (*entity.Usage, error)

	// IncrementUsage adds one to the daily counter, creating the account when missing,
	// unless the counter already reached limit. It reports whether the call counted.
	IncrementUsage(ctx context.Context, userID int64, limit int) (bool, error)

	// TrySetTempPremiumGrant sets the expiry and the granted flag only if the flag is
	// still false. It reports whether this call applied the grant.
	TrySetTempPremiumGrant(ctx context.Context, userID int64, expiry time.Time) (bool, error)

	// ResetDailyUsage zeroes every daily counter and returns how many rows changed.
	ResetDailyUsage(ctx context.Context) (int64, error)
}
