package usecase

import (
	"context"
	"time"

	"vidgate/internal/domain/entity"
)

// EntitlementUsecase computes tiers, decides content requests and hands out the login bonus.
type EntitlementUsecase interface {
	EffectiveTier(ctx context.Context, userID int64) (entity.Tier, error)
	DailyLimitFor(tier entity.Tier) int

	// CheckAndConsume decides a content request. It never increments usage;
	// RecordConsumption does that after the item was delivered.
	CheckAndConsume(ctx context.Context, userID int64) (*entity.Decision, error)

	// RecordConsumption counts one delivered item and remembers it as seen. The count
	// never goes past limit, the limit the Allow decision was made against.
	RecordConsumption(ctx context.Context, userID int64, item *entity.ItemRef, limit int) error

	// GrantLoginBonusIfUnused applies the one-time bonus. It returns the new expiry
	// when this call applied it, nil when the bonus was already used.
	GrantLoginBonusIfUnused(ctx context.Context, userID int64) (*time.Time, error)

	Status(ctx context.Context, userID int64) (*entity.EntitlementStatus, error)

	// ResetDailyUsage closes the daily window for everyone.
	ResetDailyUsage(ctx context.Context) (int64, error)
}
