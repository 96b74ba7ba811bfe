package config

import (
	"crypto/rsa"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Security SecurityConfig
	Rewards  RewardsConfig
	Cache    CacheConfig
	Tracing  TracingConfig

	// Warnings collects non-fatal findings for the caller to log once a
	// logger exists
	Warnings []string
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// AutoMigrate applies the SQL migrations under db/migrations at startup.
	// When false the schema comes from gorm AutoMigrate.
	AutoMigrate  bool
	SeedDemoData bool
}

// JWTConfig holds the keys used to verify bearer tokens. Tokens are issued by
// the identity service; PrivateKey is only populated outside production so the
// dev token endpoint can mint tokens locally.
type JWTConfig struct {
	AccessTokenDuration time.Duration
	PrivateKey          *rsa.PrivateKey
	PublicKey           *rsa.PublicKey
	Issuer              string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
	MaxBodySize        string
}

// RewardsConfig tunes the recommendation and optimization core.
type RewardsConfig struct {
	BonusMultiplier      decimal.Decimal
	MonthsPerYear        decimal.Decimal
	MinWindowMonths      decimal.Decimal
	PointValue           decimal.Decimal
	ExpiryThresholdDays  int
	HighRiskDays         int
	MinOccurrences       int
	RecurringBillLimit   int
	OfferLimit           int
	UpstreamFailureLimit int
	UpstreamResetTimeout time.Duration
}

type CacheConfig struct {
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	IdempotencyTTL time.Duration
}

type TracingConfig struct {
	Enabled        bool
	JaegerEndpoint string
	ServiceName    string
	ServiceVersion string
}

// Load reads the configuration from the environment. Unset or unparseable
// values fall back to their defaults.
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:         envString("SERVER_PORT", "8080"),
			Host:         envString("SERVER_HOST", "localhost"),
			Environment:  envString("APP_ENV", "development"),
			ReadTimeout:  envDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: envDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            envString("DB_HOST", "localhost"),
			Port:            envString("DB_PORT", "5432"),
			User:            envString("DB_USER", "rewards_user"),
			Password:        envString("DB_PASSWORD", "rewards_password"),
			Name:            envString("DB_NAME", "card_rewards"),
			SSLMode:         envString("DB_SSL_MODE", "disable"),
			MaxConnections:  envInt("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: envDuration("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     envBool("AUTO_MIGRATE", false),
			SeedDemoData:    envBool("SEED_DATABASE", false),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: envInt("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     envInt("RATE_LIMIT_BURST", 40),
			MaxBodySize:        envString("MAX_BODY_SIZE", "1M"),
		},
		JWT: JWTConfig{
			AccessTokenDuration: envDuration("JWT_ACCESS_TOKEN_DURATION", 24*time.Hour),
			Issuer:              envString("JWT_ISSUER", "card-rewards-identity"),
		},
		Rewards: RewardsConfig{
			BonusMultiplier:      envDecimal("REWARDS_BONUS_MULTIPLIER", decimal.NewFromFloat(1.5)),
			MonthsPerYear:        envDecimal("REWARDS_MONTHS_PER_YEAR", decimal.NewFromInt(12)),
			MinWindowMonths:      envDecimal("REWARDS_MIN_WINDOW_MONTHS", decimal.NewFromInt(1)),
			PointValue:           envDecimal("REWARDS_POINT_VALUE", decimal.NewFromFloat(0.01)),
			ExpiryThresholdDays:  envInt("REWARDS_EXPIRY_THRESHOLD_DAYS", 60),
			HighRiskDays:         envInt("REWARDS_HIGH_RISK_DAYS", 14),
			MinOccurrences:       envInt("REWARDS_MIN_OCCURRENCES", 2),
			RecurringBillLimit:   envInt("REWARDS_RECURRING_LIMIT", 10),
			OfferLimit:           envInt("REWARDS_OFFER_LIMIT", 6),
			UpstreamFailureLimit: envInt("UPSTREAM_FAILURE_LIMIT", 5),
			UpstreamResetTimeout: envDuration("UPSTREAM_RESET_TIMEOUT", 30*time.Second),
		},
		Cache: CacheConfig{
			RedisAddr:      envString("REDIS_ADDR", ""),
			RedisPassword:  envString("REDIS_PASSWORD", ""),
			RedisDB:        envInt("REDIS_DB", 0),
			IdempotencyTTL: envDuration("IDEMPOTENCY_TTL", 24*time.Hour),
		},
		Tracing: TracingConfig{
			Enabled:        envBool("TRACING_ENABLED", false),
			JaegerEndpoint: envString("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
			ServiceName:    envString("SERVICE_NAME", "card-rewards-api"),
			ServiceVersion: envString("SERVICE_VERSION", "dev"),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	var err error
	config.JWT.PrivateKey, config.JWT.PublicKey, err = config.loadJWTKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to load RSA keys: %w", err)
	}

	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// loadCORSAllowOrigins reads the comma separated CORS_ALLOW_ORIGINS, defaulting to "*"
func (c *Config) loadCORSAllowOrigins() []string {
	raw := os.Getenv("CORS_ALLOW_ORIGINS")
	if raw == "" {
		if c.IsProduction() {
			c.Warnings = append(c.Warnings, "CORS_ALLOW_ORIGINS is not set in production, allowing all origins")
		}
		return []string{"*"}
	}

	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
