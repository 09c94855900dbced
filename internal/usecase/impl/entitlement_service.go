// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"vidgate/config"
	deliverycontext "vidgate/internal/delivery/context"
	"vidgate/internal/domain/entity"
	domainerrors "vidgate/internal/domain/errors"
	"vidgate/internal/domain/repository"
	"vidgate/internal/domain/service"
	"vidgate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	grantPathQuota = "quota"
	grantPathLogin = "login"
)

// entitlementService implements the EntitlementUsecase interface.
type entitlementService struct {
	accountRepo repository.AccountRepository
	txManager   repository.TransactionManager
	quota       config.QuotaConfig
	metrics     service.MetricsRecorder
	logger      *slog.Logger
	now         func() time.Time
}

// EntitlementServiceParams holds dependencies for EntitlementService, injected by Fx.
type EntitlementServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	TxManager   repository.TransactionManager
	Config      *config.Config
	Metrics     service.MetricsRecorder
	Logger      *slog.Logger
}

// NewEntitlementService is the constructor for entitlementService.
func NewEntitlementService(params EntitlementServiceParams) usecase.EntitlementUsecase {
	quota := config.DefaultQuota()
	if params.Config != nil && params.Config.Quota != nil {
		quota = params.Config.Quota
	}

	return &entitlementService{
		accountRepo: params.AccountRepo,
		txManager:   params.TxManager,
		quota:       *quota,
		metrics:     params.Metrics,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *entitlementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EffectiveTier reads the user's usage and computes the tier at this instant.
func (srv *entitlementService) EffectiveTier(ctx context.Context, userID int64) (entity.Tier, error) {
	usage, err := srv.accountRepo.GetUsage(ctx, userID)
	if err != nil {
		return "", errors.Wrap(err, "failed to get usage")
	}

	return usage.Tier(srv.now()), nil
}

// DailyLimitFor maps a tier to its daily allowance.
func (srv *entitlementService) DailyLimitFor(tier entity.Tier) int {
	if tier.IsPremium() {
		return srv.quota.PremiumDailyLimit
	}

	return srv.quota.DailyLimit
}

// CheckAndConsume decides whether the user may receive one more item right now.
func (srv *entitlementService) CheckAndConsume(ctx context.Context, userID int64) (*entity.Decision, error) {
	decision, err := srv.decide(ctx, userID, true)
	if err != nil {
		return nil, err
	}

	srv.metrics.ObserveDecision(decision.Verdict)
	srv.log(ctx).Debug("Quota decision",
		slog.Int64("user_id", userID),
		slog.String("verdict", decision.Verdict.String()),
		slog.String("tier", decision.Tier.String()),
		slog.Int("used", decision.Used),
		slog.Int("limit", decision.Limit),
	)

	return decision, nil
}

func (srv *entitlementService) decide(ctx context.Context, userID int64, mayGrant bool) (*entity.Decision, error) {
	usage, err := srv.accountRepo.GetUsage(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get usage")
	}

	now := srv.now()
	tier := usage.Tier(now)
	decision := &entity.Decision{
		Tier:              tier,
		Used:              usage.DailyUsed,
		Limit:             srv.DailyLimitFor(tier),
		TempPremiumExpiry: usage.TempPremiumExpiry,
	}

	if decision.Used < decision.Limit {
		decision.Verdict = entity.VerdictAllow

		return decision, nil
	}

	if tier.IsPremium() {
		decision.Verdict = entity.VerdictDenyPremiumExhausted

		return decision, nil
	}

	credential, err := srv.accountRepo.GetCredential(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get credential")
	}

	switch {
	case len(credential) == 0:
		decision.Verdict = entity.VerdictDenyNeedsLogin

		return decision, nil
	case usage.TempPremiumGranted || !mayGrant:
		decision.Verdict = entity.VerdictDenyNeedsPurchase

		return decision, nil
	}

	expiry := now.Add(srv.quota.TempPremiumDuration)
	applied, err := srv.accountRepo.TrySetTempPremiumGrant(ctx, userID, expiry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to grant temporary premium")
	}

	if !applied {
		// A concurrent request or a login finalize won the grant; decide again on fresh usage.
		srv.log(ctx).Debug("Temporary premium grant lost race, re-evaluating", slog.Int64("user_id", userID))

		return srv.decide(ctx, userID, false)
	}

	srv.metrics.ObserveBonusGrant(grantPathQuota)
	srv.log(ctx).Info("Temporary premium granted on exhausted quota",
		slog.Int64("user_id", userID),
		slog.Time("expires_at", expiry),
	)

	decision.Verdict = entity.VerdictAllow
	decision.Tier = entity.TierTempPremium
	decision.Limit = srv.DailyLimitFor(entity.TierTempPremium)
	decision.BonusGranted = true
	decision.TempPremiumExpiry = &expiry

	return decision, nil
}

// RecordConsumption counts a delivered item and remembers it as seen, in one transaction.
func (srv *entitlementService) RecordConsumption(
	ctx context.Context,
	userID int64,
	item *entity.ItemRef,
	limit int,
) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		counted, err := repoFactory.AccountRepo().IncrementUsage(ctx, userID, limit)
		if err != nil {
			return errors.Wrap(err, "failed to increment usage")
		}
		if !counted {
			// Only reachable when another request for the user slipped past the lock.
			srv.log(ctx).Warn("Usage already at limit, delivery not counted",
				slog.Int64("user_id", userID),
				slog.Int("limit", limit),
			)
		}

		if item == nil {
			return nil
		}

		if err := repoFactory.CatalogRepo().MarkSeen(ctx, userID, item.ID); err != nil {
			return errors.Wrap(err, "failed to mark item seen")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to record consumption", slog.Any("error", err), slog.Int64("user_id", userID))

		return domainerrors.ErrTransactionFailed.WithCause(err)
	}

	return nil
}

// GrantLoginBonusIfUnused applies the bonus unless the user already had it.
func (srv *entitlementService) GrantLoginBonusIfUnused(ctx context.Context, userID int64) (*time.Time, error) {
	expiry := srv.now().Add(srv.quota.TempPremiumDuration)

	applied, err := srv.accountRepo.TrySetTempPremiumGrant(ctx, userID, expiry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to grant login bonus")
	}

	if !applied {
		srv.log(ctx).Debug("Login bonus already used", slog.Int64("user_id", userID))

		return nil, nil
	}

	srv.metrics.ObserveBonusGrant(grantPathLogin)
	srv.log(ctx).Info("Login bonus granted", slog.Int64("user_id", userID), slog.Time("expires_at", expiry))

	return &expiry, nil
}

// Status summarizes the user's quota.
func (srv *entitlementService) Status(ctx context.Context, userID int64) (*entity.EntitlementStatus, error) {
	usage, err := srv.accountRepo.GetUsage(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get usage")
	}

	credential, err := srv.accountRepo.GetCredential(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get credential")
	}

	tier := usage.Tier(srv.now())
	limit := srv.DailyLimitFor(tier)

	return &entity.EntitlementStatus{
		Tier:               tier,
		Used:               usage.DailyUsed,
		Limit:              limit,
		Remaining:          max(limit-usage.DailyUsed, 0),
		TempPremiumExpiry:  usage.TempPremiumExpiry,
		TempPremiumGranted: usage.TempPremiumGranted,
		LoggedIn:           len(credential) > 0,
	}, nil
}

// ResetDailyUsage zeroes all counters at the window boundary.
func (srv *entitlementService) ResetDailyUsage(ctx context.Context) (int64, error) {
	rows, err := srv.accountRepo.ResetDailyUsage(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to reset daily usage")
	}

	srv.log(ctx).Info("Daily usage reset", slog.Int64("accounts", rows))

	return rows, nil
}
