package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for civic-engine.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values for fields that support both.
// Secrets (API keys, database password) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Authentication configuration
	Auth AuthConfig `yaml:"auth"`

	// Watchlist store (PostgreSQL). Optional: when Host is empty the
	// watchlist API is disabled and the rest of the service still runs.
	Database DatabaseConfig `yaml:"database"`

	// Upstream response cache (Redis). Optional: when Host is empty the
	// service falls back to an in-process TTL cache.
	Redis RedisConfig `yaml:"redis"`

	// Upstream data sources
	Upstream UpstreamConfig `yaml:"upstream"`
}

// AuthConfig holds authentication-related configuration. The service does
// not own user identities; it only resolves a bearer token to a user ID.
type AuthConfig struct {
	// EnableVerification controls whether JWT signatures are validated
	// against JWKSURL. Set to false for local development.
	EnableVerification bool `yaml:"enable_verification" env:"AUTH_ENABLE_VERIFICATION" env-default:"false"`

	// JWKSURL is the JWKS endpoint of the external identity provider.
	// Required when EnableVerification is true.
	JWKSURL string `yaml:"jwks_url" env:"AUTH_JWKS_URL" env-default:""`
}

// DatabaseConfig holds PostgreSQL configuration for the watchlist store.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"PGHOST" env-default:""`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"civic"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"civic_engine"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"10"`
	MigrationsPath string `yaml:"migrations_path" env:"PGMIGRATIONS_PATH" env-default:"migrations"`
}

// RedisConfig holds Redis configuration for the upstream response cache.
type RedisConfig struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:""`
	Port     int    `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"-" env:"REDIS_PASSWORD"` // Secret - not in YAML
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// UpstreamConfig holds endpoints, keys, and cache policy for every
// external data source. Mirror lists are ordered: the canonical host
// first, community mirrors after, and the fallback resolver preserves
// that order exactly.
type UpstreamConfig struct {
	// Mirror lists for sources with equivalent hosts.
	LegislatorMirrors []string `yaml:"legislator_mirrors" env:"LEGISLATOR_MIRRORS" env-separator:","`
	SocialMirrors     []string `yaml:"social_mirrors" env:"SOCIAL_MIRRORS" env-separator:","`
	TradeMirrors      []string `yaml:"trade_mirrors" env:"TRADE_MIRRORS" env-separator:","`

	// Single-host sources.
	CongressBaseURL    string `yaml:"congress_base_url" env:"CONGRESS_BASE_URL" env-default:"https://api.congress.gov/v3"`
	FECBaseURL         string `yaml:"fec_base_url" env:"FEC_BASE_URL" env-default:"https://api.open.fec.gov/v1"`
	OpenSecretsBaseURL string `yaml:"opensecrets_base_url" env:"OPENSECRETS_BASE_URL" env-default:"https://www.opensecrets.org/api/"`
	LobbyingBaseURL    string `yaml:"lobbying_base_url" env:"LOBBYING_BASE_URL" env-default:"https://lda.senate.gov/api/v1"`
	NewsBaseURL        string `yaml:"news_base_url" env:"NEWS_BASE_URL" env-default:"https://api.gdeltproject.org/api/v2/doc/doc"`
	WikipediaBaseURL   string `yaml:"wikipedia_base_url" env:"WIKIPEDIA_BASE_URL" env-default:"https://en.wikipedia.org/w/api.php"`

	// API keys. Secrets - env only. Sources degrade when absent.
	CongressAPIKey    string `yaml:"-" env:"CONGRESS_API_KEY"`
	FECAPIKey         string `yaml:"-" env:"FEC_API_KEY"`
	OpenSecretsAPIKey string `yaml:"-" env:"OPENSECRETS_API_KEY"`

	// AttemptTimeoutSeconds bounds each individual mirror attempt.
	AttemptTimeoutSeconds int `yaml:"attempt_timeout_seconds" env:"UPSTREAM_ATTEMPT_TIMEOUT_SECONDS" env-default:"10"`

	// Cache TTLs by source volatility. Registry, congress, finance, and
	// lobbying data are slow-changing; trades and news churn hourly.
	SlowTTLHours int `yaml:"slow_ttl_hours" env:"UPSTREAM_SLOW_TTL_HOURS" env-default:"24"`
	FastTTLHours int `yaml:"fast_ttl_hours" env:"UPSTREAM_FAST_TTL_HOURS" env-default:"1"`
}

// AttemptTimeout returns the per-mirror attempt timeout as a duration.
func (u *UpstreamConfig) AttemptTimeout() time.Duration {
	return time.Duration(u.AttemptTimeoutSeconds) * time.Second
}

// SlowTTL is the cache TTL for slow-changing sources.
func (u *UpstreamConfig) SlowTTL() time.Duration {
	return time.Duration(u.SlowTTLHours) * time.Hour
}

// FastTTL is the cache TTL for the trade dataset and news index.
func (u *UpstreamConfig) FastTTL() time.Duration {
	return time.Duration(u.FastTTLHours) * time.Hour
}

// IsEnabled reports whether the watchlist store is configured.
func (d *DatabaseConfig) IsEnabled() bool {
	return d.Host != ""
}

// ConnectionString returns a PostgreSQL connection string.
func (d *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode,
	)
}

// Load reads configuration from config.yaml with environment variable overrides.
// The version parameter is injected at build time and set on the returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills in the canonical mirror lists when none are
// configured. Order matters: the canonical host is first.
func (c *Config) applyDefaults() {
	if len(c.Upstream.LegislatorMirrors) == 0 {
		c.Upstream.LegislatorMirrors = []string{
			"https://unitedstates.github.io/congress-legislators/legislators-current.json",
			"https://theunitedstates.io/congress-legislators/legislators-current.json",
		}
	}
	if len(c.Upstream.SocialMirrors) == 0 {
		c.Upstream.SocialMirrors = []string{
			"https://unitedstates.github.io/congress-legislators/legislators-social-media.json",
			"https://theunitedstates.io/congress-legislators/legislators-social-media.json",
		}
	}
	if len(c.Upstream.TradeMirrors) == 0 {
		c.Upstream.TradeMirrors = []string{
			"https://raw.githubusercontent.com/timothycarambat/senate-stock-watcher-data/master/data/all_transactions.json",
			"https://senate-stock-watcher-data.s3.amazonaws.com/all_transactions.json",
		}
	}
}

func (c *Config) validate() error {
	if c.Auth.EnableVerification && c.Auth.JWKSURL == "" {
		return fmt.Errorf("auth.jwks_url is required when auth.enable_verification is true")
	}
	if c.Upstream.AttemptTimeoutSeconds <= 0 {
		return fmt.Errorf("upstream.attempt_timeout_seconds must be positive")
	}
	return nil
}
