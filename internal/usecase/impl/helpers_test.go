package impl

import (
	"io"
	"log/slog"
	"time"

	"vidgate/config"
	"vidgate/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Quota: config.DefaultQuota(),
		Login: &config.LoginConfig{
			SessionTTL:     10 * time.Minute,
			CallTimeout:    5 * time.Second,
			ReleaseTimeout: time.Second,
		},
	}

	return cfg
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
