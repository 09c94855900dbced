package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"quota": map[string]any{
			"dailyLimit":          10,
			"tempPremiumDuration": "24h",
		},
		"authGateway": map[string]any{
			"apiHash": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "QUOTA_DAILYLIMIT", want: "quota.dailyLimit"},
		{envKey: "QUOTA_TEMPPREMIUMDURATION", want: "quota.tempPremiumDuration"},
		{envKey: "AUTHGATEWAY_APIHASH", want: "authGateway.apiHash"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
env:
  env: test
  log:
    level: debug
quota:
  dailyLimit: 10
  premiumDailyLimit: 50
  tempPremiumDuration: 24h
login:
  sessionTTL: 5m
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlBody), 0o600))
	t.Chdir(dir)
	t.Setenv("QUOTA_DAILYLIMIT", "3")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, 3, cfg.Quota.DailyLimit)
	assert.Equal(t, 50, cfg.Quota.PremiumDailyLimit)
	assert.Equal(t, 24*time.Hour, cfg.Quota.TempPremiumDuration)
	assert.Equal(t, 5*time.Minute, cfg.Login.SessionTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.ErrorContains(t, err, "not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, 10, cfg.Quota.DailyLimit)
	assert.Equal(t, 20, cfg.Quota.VerificationDailyLimit)
	assert.Equal(t, 50, cfg.Quota.PremiumDailyLimit)
	assert.Equal(t, 24*time.Hour, cfg.Quota.TempPremiumDuration)
	assert.Equal(t, "Asia/Kolkata", cfg.Quota.Timezone)
	assert.Equal(t, 10*time.Minute, cfg.Login.SessionTTL)
	assert.Equal(t, "memory", cfg.Lock.Provider)
	assert.Equal(t, defaultLockTTL, cfg.Lock.TTL)
	assert.Equal(t, defaultDailyResetSpec, cfg.Scheduler.DailyResetSpec)
}

func TestApplyDefaults_KeepsZeroDailyLimit(t *testing.T) {
	cfg := &Config{Quota: &QuotaConfig{DailyLimit: 0, PremiumDailyLimit: 5}}
	cfg.ApplyDefaults()

	assert.Equal(t, 0, cfg.Quota.DailyLimit)
	assert.Equal(t, 5, cfg.Quota.PremiumDailyLimit)
	assert.Equal(t, "Asia/Kolkata", cfg.Quota.Timezone)
}

func TestValidate_LockMustOutliveTransportSend(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		ttl      time.Duration
		wantErr  bool
	}{
		{name: "redis ttl longer than send", provider: "redis", ttl: 45 * time.Second},
		{name: "redis ttl equal to send", provider: "redis", ttl: 30 * time.Second, wantErr: true},
		{name: "redis ttl shorter than send", provider: "redis", ttl: 10 * time.Second, wantErr: true},
		{name: "memory ignores ttl", provider: "memory", ttl: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Lock:      &LockConfig{Provider: tt.provider, TTL: tt.ttl},
				Transport: &TransportConfig{Timeout: 30 * time.Second},
			}

			err := cfg.Validate()

			if tt.wantErr {
				assert.ErrorContains(t, err, "lock.ttl")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuotaConfig_Location(t *testing.T) {
	assert.Equal(t, time.UTC, (&QuotaConfig{Timezone: "Not/AZone"}).Location())
	assert.Equal(t, "Asia/Kolkata", (&QuotaConfig{Timezone: "Asia/Kolkata"}).Location().String())
}
