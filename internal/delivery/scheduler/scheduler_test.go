package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"
	_ "time/tzdata"

	"vidgate/config"
	deliverycontext "vidgate/internal/delivery/context"
	mockusecase "vidgate/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type schedulerFixture struct {
	lc          *fxtest.Lifecycle
	login       *mockusecase.MockLoginUsecase
	entitlement *mockusecase.MockEntitlementUsecase
}

func newFixture(t *testing.T) *schedulerFixture {
	t.Helper()

	return &schedulerFixture{
		lc:          fxtest.NewLifecycle(t),
		login:       mockusecase.NewMockLoginUsecase(t),
		entitlement: mockusecase.NewMockEntitlementUsecase(t),
	}
}

func (f *schedulerFixture) params(cfg *config.Config) Params {
	return Params{
		Lifecycle:   f.lc,
		Config:      cfg,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Login:       f.login,
		Entitlement: f.entitlement,
	}
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

func TestNew_RegistersJobs(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		wantJobs int
	}{
		{name: "enabled", enabled: true, wantJobs: 2},
		{name: "reset disabled", enabled: false, wantJobs: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			cfg := testConfig()
			cfg.Scheduler.Enabled = tt.enabled

			d, err := New(f.params(cfg))
			require.NoError(t, err)

			assert.Len(t, d.(*scheduler).cron.Entries(), tt.wantJobs)
		})
	}
}

func TestNew_InvalidResetSpec(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	cfg.Scheduler.DailyResetSpec = "every midnight"

	_, err := New(f.params(cfg))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "every midnight")
}

func TestNew_ResetRunsAtLocalMidnight(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	cfg.Quota.Timezone = "Asia/Kolkata"

	d, err := New(f.params(cfg))
	require.NoError(t, err)

	entries := d.(*scheduler).cron.Entries()
	require.Len(t, entries, 2)

	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	from := time.Date(2026, 3, 14, 12, 0, 0, 0, kolkata)

	next := entries[1].Schedule.Next(from)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, kolkata), next.In(kolkata))
}

func TestScheduler_SweepSessions(t *testing.T) {
	f := newFixture(t)
	d, err := New(f.params(testConfig()))
	require.NoError(t, err)

	f.login.EXPECT().ExpireIdle(mock.Anything).
		RunAndReturn(func(ctx context.Context) int {
			assert.NotEmpty(t, deliverycontext.GetRequestIDFromContext(ctx))
			assert.NotNil(t, deliverycontext.GetLogger(ctx))

			return 2
		}).Once()

	d.(*scheduler).sweepSessions()
}

func TestScheduler_ResetDailyUsage(t *testing.T) {
	f := newFixture(t)
	d, err := New(f.params(testConfig()))
	require.NoError(t, err)
	s := d.(*scheduler)

	f.entitlement.EXPECT().ResetDailyUsage(mock.Anything).Return(int64(12), nil).Once()
	s.resetDailyUsage()

	f.entitlement.EXPECT().ResetDailyUsage(mock.Anything).Return(int64(0), errors.New("connection reset")).Once()
	s.resetDailyUsage()
}

func TestScheduler_ServeUntilStop(t *testing.T) {
	f := newFixture(t)
	d, err := New(f.params(testConfig()))
	require.NoError(t, err)

	f.login.EXPECT().CancelAll(mock.Anything).Return(1).Once()

	served := make(chan error, 1)
	go func() {
		served <- d.Serve(context.Background())
	}()

	f.lc.RequireStart()
	f.lc.RequireStop()

	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after stop")
	}
}
