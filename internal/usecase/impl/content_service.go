package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vidgate/internal/delivery/context"
	"vidgate/internal/domain/entity"
	domainerrors "vidgate/internal/domain/errors"
	"vidgate/internal/domain/repository"
	"vidgate/internal/domain/service"
	"vidgate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contentService implements the ContentUsecase interface.
type contentService struct {
	locker      service.UserLocker
	accountRepo repository.AccountRepository
	catalogRepo repository.CatalogRepository
	entitlement usecase.EntitlementUsecase
	sender      service.ContentSender
	metrics     service.MetricsRecorder
	logger      *slog.Logger
	now         func() time.Time
}

// ContentServiceParams holds dependencies for ContentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	Locker      service.UserLocker
	AccountRepo repository.AccountRepository
	CatalogRepo repository.CatalogRepository
	Entitlement usecase.EntitlementUsecase
	Sender      service.ContentSender
	Metrics     service.MetricsRecorder
	Logger      *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		locker:      params.Locker,
		accountRepo: params.AccountRepo,
		catalogRepo: params.CatalogRepo,
		entitlement: params.Entitlement,
		sender:      params.Sender,
		metrics:     params.Metrics,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestContent decides, delivers and records one item while holding the user's lock,
// so two requests from the same user can never both pass the same quota check.
func (srv *contentService) RequestContent(
	ctx context.Context,
	input *usecase.RequestContentInput,
) (*entity.ContentResult, error) {
	userID := input.UserID

	unlock, err := srv.locker.Lock(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Failed to acquire user lock", slog.Int64("user_id", userID), slog.Any("error", err))

		return nil, domainerrors.ErrUserBusy.WithCause(err)
	}
	defer unlock()

	if err := srv.accountRepo.EnsureAccount(ctx, userID, input.DisplayName); err != nil {
		return nil, errors.Wrap(err, "failed to ensure account")
	}

	decision, err := srv.entitlement.CheckAndConsume(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check quota")
	}

	result := &entity.ContentResult{Decision: decision}
	if !decision.Allowed() {
		return result, nil
	}

	item, err := srv.pickItem(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := srv.sender.SendItem(ctx, userID, item); err != nil {
		srv.metrics.ObserveDelivery(false)
		srv.log(ctx).Error("Failed to deliver item",
			slog.Int64("user_id", userID),
			slog.Int64("item_id", item.ID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrDeliveryFailed.WithCause(err)
	}
	srv.metrics.ObserveDelivery(true)

	if err := srv.entitlement.RecordConsumption(ctx, userID, item, decision.Limit); err != nil {
		return nil, err
	}

	decision.Used++
	result.Item = item
	deliveredAt := srv.now()
	result.DeliveredAt = &deliveredAt

	srv.log(ctx).Info("Item delivered",
		slog.Int64("user_id", userID),
		slog.Int64("item_id", item.ID),
		slog.String("tier", decision.Tier.String()),
		slog.Int("used", decision.Used),
		slog.Int("limit", decision.Limit),
	)

	return result, nil
}

// pickItem prefers an item the user has not seen and falls back to any item.
func (srv *contentService) pickItem(ctx context.Context, userID int64) (*entity.ItemRef, error) {
	item, err := srv.catalogRepo.GetUnseenItem(ctx, userID)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, repository.ErrCatalogEmpty) {
		return nil, errors.Wrap(err, "failed to get unseen item")
	}

	item, err = srv.catalogRepo.GetRandomItem(ctx)
	if errors.Is(err, repository.ErrCatalogEmpty) {
		return nil, domainerrors.ErrNoContent
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get random item")
	}

	return item, nil
}

func (srv *contentService) AddItem(ctx context.Context, input *usecase.AddItemInput) (*entity.ItemRef, error) {
	item := &entity.ItemRef{
		FileID:   input.FileID,
		Caption:  input.Caption,
		MimeType: input.MimeType,
	}

	if err := srv.catalogRepo.AddItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to add item")
	}

	srv.log(ctx).Info("Item indexed", slog.Int64("item_id", item.ID))

	return item, nil
}
