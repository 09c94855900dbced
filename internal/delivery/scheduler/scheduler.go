// Package scheduler runs the periodic jobs: the idle login sweep and the daily usage reset.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"vidgate/config"
	"vidgate/internal/delivery"
	deliverycontext "vidgate/internal/delivery/context"
	"vidgate/internal/domain/lifecycle"
	"vidgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Params holds dependencies for the scheduler, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config      *config.Config
	Logger      *slog.Logger
	Login       usecase.LoginUsecase
	Entitlement usecase.EntitlementUsecase
}

type scheduler struct {
	cron        *cron.Cron
	login       usecase.LoginUsecase
	entitlement usecase.EntitlementUsecase
	logger      *slog.Logger
	done        chan struct{}
}

// New registers the jobs. Login sessions live in process memory, so the sweep always runs;
// Scheduler.Enabled only gates the daily reset, which one replica is enough to run.
func New(params Params) (delivery.Delivery, error) {
	loginCfg := config.DefaultLogin()
	if params.Config.Login != nil {
		loginCfg = params.Config.Login
	}
	quotaCfg := config.DefaultQuota()
	if params.Config.Quota != nil {
		quotaCfg = params.Config.Quota
	}

	s := &scheduler{
		cron: cron.New(
			cron.WithLocation(quotaCfg.Location()),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		login:       params.Login,
		entitlement: params.Entitlement,
		logger:      params.Logger,
		done:        make(chan struct{}),
	}

	if _, err := s.cron.AddFunc("@every "+loginCfg.SweepInterval.String(), s.sweepSessions); err != nil {
		return nil, errors.Wrap(err, "failed to schedule login sweep")
	}

	if params.Config.Scheduler != nil && params.Config.Scheduler.Enabled {
		if _, err := s.cron.AddFunc(params.Config.Scheduler.DailyResetSpec, s.resetDailyUsage); err != nil {
			return nil, errors.Wrapf(err, "failed to schedule daily reset %q", params.Config.Scheduler.DailyResetSpec)
		}
	}

	params.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve runs the jobs until the application stops.
func (s *scheduler) Serve(ctx context.Context) error {
	s.cron.Start()
	s.logger.Info("Scheduler started", slog.Int("jobs", len(s.cron.Entries())))

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}

func (s *scheduler) stop(ctx context.Context) error {
	defer close(s.done)

	s.logger.Info("Stopping scheduler")

	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	// Wait for running jobs before tearing down the sessions they may touch
	select {
	case <-s.cron.Stop().Done():
	case <-stopCtx.Done():
		s.logger.Warn("Scheduler jobs still running at shutdown")
	}

	s.login.CancelAll(stopCtx)

	return nil
}

func (s *scheduler) sweepSessions() {
	ctx, logger := s.jobContext("login_sweep")

	if expired := s.login.ExpireIdle(ctx); expired > 0 {
		logger.Info("Expired idle login sessions", slog.Int("count", expired))
	}
}

func (s *scheduler) resetDailyUsage() {
	ctx, logger := s.jobContext("daily_reset")
	start := time.Now()

	reset, err := s.entitlement.ResetDailyUsage(ctx)
	if err != nil {
		logger.Error("Daily usage reset failed", slog.Any("error", err))

		return
	}

	logger.Info("Daily usage reset",
		slog.Int64("accounts", reset),
		slog.Duration("took", time.Since(start)),
	)
}

// jobContext gives each run its own id, the way requests get one.
func (s *scheduler) jobContext(job string) (context.Context, *slog.Logger) {
	runID := uuid.New().String()
	logger := s.logger.With(slog.String("job", job), slog.String("request_id", runID))

	ctx := deliverycontext.WithRequestID(context.Background(), runID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	return ctx, logger
}
