package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "16KB"
	defaultTimezone           = "Asia/Kolkata"
	defaultDailyResetSpec     = "0 0 * * *"
	defaultLockTTL            = 45 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Store selects the entitlement store backend
	Store *StoreConfig `json:"store" yaml:"store"`

	// ServiceToken secures the API used by the bot front end
	ServiceToken *ServiceTokenConfig `json:"serviceToken" yaml:"serviceToken"`

	// Quota holds the daily limits and the login bonus window
	Quota *QuotaConfig `json:"quota" yaml:"quota"`

	// Login tunes the per-user login sessions
	Login *LoginConfig `json:"login" yaml:"login"`

	// AuthGateway points at the external login service
	AuthGateway *AuthGatewayConfig `json:"authGateway" yaml:"authGateway"`

	// Transport points at the bot transport that delivers messages to users
	Transport *TransportConfig `json:"transport" yaml:"transport"`

	// Credential configures at-rest sealing of exported credentials
	Credential *CredentialConfig `json:"credential" yaml:"credential"`

	// Lock selects the per-user content lock backend
	Lock *LockConfig `json:"lock" yaml:"lock"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Scheduler configures background jobs
	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig defines which entitlement store backs the service
type StoreConfig struct {
	// Driver is "postgres" or "memory"
	Driver string `json:"driver" yaml:"driver"`

	// Migrate runs the embedded schema migrations on start
	Migrate bool `json:"migrate" yaml:"migrate"`
}

// ServiceTokenConfig defines the shared secret for service-to-service tokens
type ServiceTokenConfig struct {
	Secret string        `json:"secret" yaml:"secret"`
	Issuer string        `json:"issuer" yaml:"issuer"`
	TTL    time.Duration `json:"ttl" yaml:"ttl"`
}

// QuotaConfig defines daily limits per tier
type QuotaConfig struct {
	DailyLimit int `json:"dailyLimit" yaml:"dailyLimit"`

	// VerificationDailyLimit belongs to the verification tier which is served elsewhere
	VerificationDailyLimit int `json:"verificationDailyLimit" yaml:"verificationDailyLimit"`

	PremiumDailyLimit   int           `json:"premiumDailyLimit" yaml:"premiumDailyLimit"`
	TempPremiumDuration time.Duration `json:"tempPremiumDuration" yaml:"tempPremiumDuration"`

	// Timezone is the zone whose midnight closes the daily usage window
	Timezone string `json:"timezone" yaml:"timezone"`
}

// LoginConfig defines login session behaviour
type LoginConfig struct {
	// SessionTTL is how long a session may stay idle before it is cancelled
	SessionTTL time.Duration `json:"sessionTTL" yaml:"sessionTTL"`

	// SweepInterval is how often idle sessions are swept
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`

	// CallTimeout bounds each external auth call
	CallTimeout time.Duration `json:"callTimeout" yaml:"callTimeout"`

	// ReleaseTimeout bounds the disconnect of a released client
	ReleaseTimeout time.Duration `json:"releaseTimeout" yaml:"releaseTimeout"`

	// ProgressInterval is the tick of the loading indicator, zero disables it
	ProgressInterval time.Duration `json:"progressInterval" yaml:"progressInterval"`
}

// AuthGatewayConfig defines the external login service endpoint
type AuthGatewayConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	APIID   int           `json:"apiId" yaml:"apiId"`
	APIHash string        `json:"apiHash" yaml:"apiHash"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// TransportConfig defines the bot transport endpoint
type TransportConfig struct {
	BaseURL        string        `json:"baseUrl" yaml:"baseUrl"`
	Token          string        `json:"token" yaml:"token"`
	ProtectContent bool          `json:"protectContent" yaml:"protectContent"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout"`
}

// CredentialConfig defines the age keys used to seal stored credentials
type CredentialConfig struct {
	// Recipient is an age1... public key; empty stores credentials unsealed
	Recipient string `json:"recipient" yaml:"recipient"`

	// Identity is the matching AGE-SECRET-KEY-1... private key
	Identity string `json:"identity" yaml:"identity"`
}

// LockConfig defines the per-user lock backend
type LockConfig struct {
	// Provider is "memory" or "redis"
	Provider string        `json:"provider" yaml:"provider"`
	RedisURL string        `json:"redisUrl" yaml:"redisUrl"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
	Wait     time.Duration `json:"wait" yaml:"wait"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// SchedulerConfig defines the cron jobs
type SchedulerConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// DailyResetSpec is a cron spec evaluated in Quota.Timezone
	DailyResetSpec string `json:"dailyResetSpec" yaml:"dailyResetSpec"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// ENV_VAR_NAME is aligned with the YAML keys, QUOTA_DAILYLIMIT -> quota.dailyLimit
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills sections the config file left out.
// Numeric quota values are taken as given when the section exists, so a zero limit stays zero.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{Driver: "postgres"}
	}

	if cfg.Quota == nil {
		cfg.Quota = DefaultQuota()
	}
	if cfg.Quota.Timezone == "" {
		cfg.Quota.Timezone = defaultTimezone
	}

	if cfg.Login == nil {
		cfg.Login = &LoginConfig{}
	}
	defaults := DefaultLogin()
	if cfg.Login.SessionTTL <= 0 {
		cfg.Login.SessionTTL = defaults.SessionTTL
	}
	if cfg.Login.SweepInterval <= 0 {
		cfg.Login.SweepInterval = defaults.SweepInterval
	}
	if cfg.Login.CallTimeout <= 0 {
		cfg.Login.CallTimeout = defaults.CallTimeout
	}
	if cfg.Login.ReleaseTimeout <= 0 {
		cfg.Login.ReleaseTimeout = defaults.ReleaseTimeout
	}

	if cfg.Lock == nil {
		cfg.Lock = &LockConfig{Provider: "memory"}
	}
	if cfg.Lock.TTL <= 0 {
		cfg.Lock.TTL = defaultLockTTL
	}
	if cfg.Lock.Wait <= 0 {
		cfg.Lock.Wait = 10 * time.Second
	}

	if cfg.Scheduler == nil {
		cfg.Scheduler = &SchedulerConfig{Enabled: true}
	}
	if cfg.Scheduler.DailyResetSpec == "" {
		cfg.Scheduler.DailyResetSpec = defaultDailyResetSpec
	}

	if cfg.Credential == nil {
		cfg.Credential = &CredentialConfig{}
	}
}

// Validate rejects combinations that ApplyDefaults cannot repair.
func (cfg *Config) Validate() error {
	// A redis lock is held across a transport send and must outlive it.
	if cfg.Lock != nil && cfg.Lock.Provider == "redis" && cfg.Transport != nil &&
		cfg.Lock.TTL <= cfg.Transport.Timeout {
		return errors.Errorf("lock.ttl (%s) must be longer than transport.timeout (%s)",
			cfg.Lock.TTL, cfg.Transport.Timeout)
	}

	return nil
}

// DefaultQuota returns the stock limits.
func DefaultQuota() *QuotaConfig {
	return &QuotaConfig{
		DailyLimit:             10,
		VerificationDailyLimit: 20,
		PremiumDailyLimit:      50,
		TempPremiumDuration:    24 * time.Hour,
		Timezone:               defaultTimezone,
	}
}

// DefaultLogin returns the stock session timings. The progress indicator is off.
func DefaultLogin() *LoginConfig {
	return &LoginConfig{
		SessionTTL:     10 * time.Minute,
		SweepInterval:  time.Minute,
		CallTimeout:    30 * time.Second,
		ReleaseTimeout: 5 * time.Second,
	}
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (q *QuotaConfig) Location() *time.Location {
	loc, err := time.LoadLocation(q.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds read replicas from POSTGRES_REPLICAS_{index}_{field}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
