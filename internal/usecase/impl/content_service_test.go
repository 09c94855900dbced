package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"vidgate/internal/domain/entity"
	domainerrors "vidgate/internal/domain/errors"
	"vidgate/internal/domain/repository"
	"vidgate/internal/infra/lock"
	"vidgate/internal/infra/persistence/memory"
	mockRepo "vidgate/internal/mocks/repository"
	mockSvc "vidgate/internal/mocks/service"
	mockUsecase "vidgate/internal/mocks/usecase"
	"vidgate/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contentMocks struct {
	locker      *mockSvc.MockUserLocker
	accountRepo *mockRepo.MockAccountRepository
	catalogRepo *mockRepo.MockCatalogRepository
	entitlement *mockUsecase.MockEntitlementUsecase
	sender      *mockSvc.MockContentSender
	unlocked    *atomic.Int32
}

func newContentServiceWithMocks(t *testing.T) (*contentService, *contentMocks) {
	t.Helper()

	m := &contentMocks{
		locker:      mockSvc.NewMockUserLocker(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		catalogRepo: mockRepo.NewMockCatalogRepository(t),
		entitlement: mockUsecase.NewMockEntitlementUsecase(t),
		sender:      mockSvc.NewMockContentSender(t),
		unlocked:    &atomic.Int32{},
	}

	m.locker.EXPECT().Lock(mock.Anything, mock.AnythingOfType("int64")).
		Return(func() { m.unlocked.Add(1) }, nil).Maybe()
	m.accountRepo.EXPECT().EnsureAccount(mock.Anything, mock.AnythingOfType("int64"), mock.AnythingOfType("string")).
		Return(nil).Maybe()

	srv := NewContentService(ContentServiceParams{
		Locker:      m.locker,
		AccountRepo: m.accountRepo,
		CatalogRepo: m.catalogRepo,
		Entitlement: m.entitlement,
		Sender:      m.sender,
		Metrics:     newTestMetrics(),
		Logger:      newDiscardLogger(),
	}).(*contentService)
	srv.now = fixedClock(testNow)

	return srv, m
}

func TestContentService_RequestContent_Delivers(t *testing.T) {
	srv, m := newContentServiceWithMocks(t)
	ctx := context.Background()
	item := &entity.ItemRef{ID: 4, FileID: "file-4"}

	m.entitlement.EXPECT().CheckAndConsume(ctx, int64(1)).
		Return(&entity.Decision{Verdict: entity.VerdictAllow, Tier: entity.TierFree, Used: 3, Limit: 10}, nil)
	m.catalogRepo.EXPECT().GetUnseenItem(ctx, int64(1)).Return(item, nil)
	m.sender.EXPECT().SendItem(ctx, int64(1), item).Return(nil)
	m.entitlement.EXPECT().RecordConsumption(ctx, int64(1), item, 10).Return(nil)

	result, err := srv.RequestContent(ctx, &usecase.RequestContentInput{UserID: 1, DisplayName: "alice"})

	require.NoError(t, err)
	assert.Equal(t, item, result.Item)
	assert.Equal(t, 4, result.Decision.Used)
	require.NotNil(t, result.DeliveredAt)
	assert.Equal(t, int32(1), m.unlocked.Load())
}

func TestContentService_RequestContent_FallsBackToSeenItem(t *testing.T) {
	srv, m := newContentServiceWithMocks(t)
	ctx := context.Background()
	item := &entity.ItemRef{ID: 2}

	m.entitlement.EXPECT().CheckAndConsume(ctx, int64(1)).
		Return(&entity.Decision{Verdict: entity.VerdictAllow, Limit: 10}, nil)
	m.catalogRepo.EXPECT().GetUnseenItem(ctx, int64(1)).Return(nil, repository.ErrCatalogEmpty)
	m.catalogRepo.EXPECT().GetRandomItem(ctx).Return(item, nil)
	m.sender.EXPECT().SendItem(ctx, int64(1), item).Return(nil)
	m.entitlement.EXPECT().RecordConsumption(ctx, int64(1), item, 10).Return(nil)

	result, err := srv.RequestContent(ctx, &usecase.RequestContentInput{UserID: 1})

	require.NoError(t, err)
	assert.Equal(t, item, result.Item)
}

func TestContentService_RequestContent_Denied(t *testing.T) {
	verdicts := []entity.Verdict{
		entity.VerdictDenyNeedsLogin,
		entity.VerdictDenyNeedsPurchase,
		entity.VerdictDenyPremiumExhausted,
	}

	for _, verdict := range verdicts {
		t.Run(verdict.String(), func(t *testing.T) {
			srv, m := newContentServiceWithMocks(t)
			ctx := context.Background()

			m.entitlement.EXPECT().CheckAndConsume(ctx, int64(1)).Return(&entity.Decision{Verdict: verdict}, nil)

			result, err := srv.RequestContent(ctx, &usecase.RequestContentInput{UserID: 1})

			require.NoError(t, err)
			assert.Equal(t, verdict, result.Decision.Verdict)
			assert.Nil(t, result.Item)
			assert.Equal(t, int32(1), m.unlocked.Load())
		})
	}
}

func TestContentService_RequestContent_Failures(t *testing.T) {
	item := &entity.ItemRef{ID: 5}

	tests := []struct {
		name    string
		setup   func(ctx context.Context, m *contentMocks)
		wantErr error
	}{
		{
			name: "empty catalog",
			setup: func(ctx context.Context, m *contentMocks) {
				m.catalogRepo.EXPECT().GetUnseenItem(ctx, int64(1)).Return(nil, repository.ErrCatalogEmpty)
				m.catalogRepo.EXPECT().GetRandomItem(ctx).Return(nil, repository.ErrCatalogEmpty)
			},
			wantErr: domainerrors.ErrNoContent,
		},
		{
			name: "delivery failure does not consume",
			setup: func(ctx context.Context, m *contentMocks) {
				m.catalogRepo.EXPECT().GetUnseenItem(ctx, int64(1)).Return(item, nil)
				m.sender.EXPECT().SendItem(ctx, int64(1), item).Return(errors.New("bot api 502"))
			},
			wantErr: domainerrors.ErrDeliveryFailed,
		},
		{
			name: "record failure",
			setup: func(ctx context.Context, m *contentMocks) {
				m.catalogRepo.EXPECT().GetUnseenItem(ctx, int64(1)).Return(item, nil)
				m.sender.EXPECT().SendItem(ctx, int64(1), item).Return(nil)
				m.entitlement.EXPECT().RecordConsumption(ctx, int64(1), item, 10).
					Return(domainerrors.ErrTransactionFailed.WithCause(errors.New("db down")))
			},
			wantErr: domainerrors.ErrTransactionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newContentServiceWithMocks(t)
			ctx := context.Background()

			m.entitlement.EXPECT().CheckAndConsume(ctx, int64(1)).
				Return(&entity.Decision{Verdict: entity.VerdictAllow, Limit: 10}, nil)
			tt.setup(ctx, m)

			result, err := srv.RequestContent(ctx, &usecase.RequestContentInput{UserID: 1})

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
			assert.Equal(t, int32(1), m.unlocked.Load())
		})
	}
}

func TestContentService_RequestContent_LockFailure(t *testing.T) {
	locker := mockSvc.NewMockUserLocker(t)
	srv := NewContentService(ContentServiceParams{
		Locker:  locker,
		Metrics: newTestMetrics(),
		Logger:  newDiscardLogger(),
	})
	ctx := context.Background()

	locker.EXPECT().Lock(ctx, int64(1)).Return(nil, context.DeadlineExceeded)

	_, err := srv.RequestContent(ctx, &usecase.RequestContentInput{UserID: 1})

	require.ErrorIs(t, err, domainerrors.ErrUserBusy)
}

// Concurrent requests from one user at the edge of the quota must never overshoot it.
func TestContentService_RequestContent_SerializesPerUser(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	accounts := memory.NewAccountRepository(store)
	catalog := memory.NewCatalogRepository(store)
	recorder := newTestMetrics()

	for i := range 3 {
		require.NoError(t, catalog.AddItem(ctx, &entity.ItemRef{FileID: "file", Caption: string(rune('a' + i))}))
	}
	for range 9 {
		_, err := accounts.IncrementUsage(ctx, 1, 10)
		require.NoError(t, err)
	}

	entitlement := NewEntitlementService(EntitlementServiceParams{
		AccountRepo: accounts,
		TxManager:   memory.NewTransactionManager(store),
		Config:      newTestConfig(),
		Metrics:     recorder,
		Logger:      newDiscardLogger(),
	})

	var sent atomic.Int32
	sender := mockSvc.NewMockContentSender(t)
	sender.EXPECT().SendItem(mock.Anything, int64(1), mock.Anything).
		RunAndReturn(func(context.Context, int64, *entity.ItemRef) error {
			sent.Add(1)

			return nil
		}).Maybe()

	srv := NewContentService(ContentServiceParams{
		Locker:      lock.NewMemoryLocker(),
		AccountRepo: accounts,
		CatalogRepo: catalog,
		Entitlement: entitlement,
		Sender:      sender,
		Metrics:     recorder,
		Logger:      newDiscardLogger(),
	})

	const requests = 8
	var wg sync.WaitGroup
	var allowed atomic.Int32

	for range requests {
		wg.Go(func() {
			result, err := srv.RequestContent(ctx, &usecase.RequestContentInput{UserID: 1})
			assert.NoError(t, err)
			if result != nil && result.Item != nil {
				allowed.Add(1)
			}
		})
	}
	wg.Wait()

	assert.Equal(t, int32(1), allowed.Load())
	assert.Equal(t, int32(1), sent.Load())

	usage, err := accounts.GetUsage(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, usage.DailyUsed)
}

// Two replicas share a store; the first replica's lease lapses mid-send and the second gets in.
func TestContentService_RequestContent_LapsedLeaseDoesNotOverCount(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	store := memory.NewStore()
	accounts := memory.NewAccountRepository(store)
	catalog := memory.NewCatalogRepository(store)

	require.NoError(t, catalog.AddItem(ctx, &entity.ItemRef{FileID: "file"}))
	for range 9 {
		_, err := accounts.IncrementUsage(ctx, 1, 10)
		require.NoError(t, err)
	}

	newReplica := func(sender *mockSvc.MockContentSender) usecase.ContentUsecase {
		client, err := lock.NewRedisClient("redis://" + mr.Addr())
		require.NoError(t, err)
		t.Cleanup(func() { _ = client.Close() })

		entitlement := NewEntitlementService(EntitlementServiceParams{
			AccountRepo: accounts,
			TxManager:   memory.NewTransactionManager(store),
			Config:      newTestConfig(),
			Metrics:     newTestMetrics(),
			Logger:      newDiscardLogger(),
		})

		return NewContentService(ContentServiceParams{
			Locker:      lock.NewRedisLocker(client, 30*time.Second, time.Second, newDiscardLogger()),
			AccountRepo: accounts,
			CatalogRepo: catalog,
			Entitlement: entitlement,
			Sender:      sender,
			Metrics:     newTestMetrics(),
			Logger:      newDiscardLogger(),
		})
	}

	sending := make(chan struct{})
	release := make(chan struct{})
	slowSender := mockSvc.NewMockContentSender(t)
	slowSender.EXPECT().SendItem(mock.Anything, int64(1), mock.Anything).
		RunAndReturn(func(context.Context, int64, *entity.ItemRef) error {
			close(sending)
			<-release

			return nil
		}).Once()
	fastSender := mockSvc.NewMockContentSender(t)
	fastSender.EXPECT().SendItem(mock.Anything, int64(1), mock.Anything).Return(nil).Once()

	replicaA := newReplica(slowSender)
	replicaB := newReplica(fastSender)

	done := make(chan error, 1)
	go func() {
		_, err := replicaA.RequestContent(ctx, &usecase.RequestContentInput{UserID: 1})
		done <- err
	}()

	<-sending
	mr.FastForward(31 * time.Second)

	result, err := replicaB.RequestContent(ctx, &usecase.RequestContentInput{UserID: 1})
	require.NoError(t, err)
	require.NotNil(t, result.Item)

	close(release)
	require.NoError(t, <-done)

	usage, err := accounts.GetUsage(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, usage.DailyUsed)
}

func TestContentService_AddItem(t *testing.T) {
	srv, m := newContentServiceWithMocks(t)
	ctx := context.Background()

	m.catalogRepo.EXPECT().AddItem(ctx, mock.AnythingOfType("*entity.ItemRef")).
		RunAndReturn(func(_ context.Context, item *entity.ItemRef) error {
			item.ID = 11

			return nil
		})

	item, err := srv.AddItem(ctx, &usecase.AddItemInput{FileID: "BAAC-1", Caption: "clip"})

	require.NoError(t, err)
	assert.Equal(t, &entity.ItemRef{ID: 11, FileID: "BAAC-1", Caption: "clip"}, item)
}

func TestContentService_AddItem_StoreError(t *testing.T) {
	srv, m := newContentServiceWithMocks(t)
	ctx := context.Background()

	m.catalogRepo.EXPECT().AddItem(ctx, mock.Anything).Return(errors.New("db down"))

	_, err := srv.AddItem(ctx, &usecase.AddItemInput{FileID: "BAAC-1"})

	require.Error(t, err)
}
