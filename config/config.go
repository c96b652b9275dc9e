package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Currency   CurrencyConfig   `mapstructure:"currency"`
	Withdrawal WithdrawalConfig `mapstructure:"withdrawal"`
	CORS       CORSConfig       `mapstructure:"cors"`
	RateLimit  RateLimitConfig  `mapstructure:"ratelimit"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Audit      AuditConfig      `mapstructure:"audit"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	OpenAPIPath     string        `mapstructure:"openapi_path"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// CurrencyConfig describes the single currency and note set the ATM dispenses.
type CurrencyConfig struct {
	Code          string   `mapstructure:"code"` // ISO 4217
	Symbol        string   `mapstructure:"symbol"`
	Name          string   `mapstructure:"name"`
	Denominations []string `mapstructure:"denominations"` // decimal strings, any order
}

type WithdrawalConfig struct {
	MaxAmount string `mapstructure:"max_amount"` // decimal string, empty disables the cap
}

// MaxAmountDecimal parses MaxAmount. ok is false when no cap is configured.
func (w WithdrawalConfig) MaxAmountDecimal() (max decimal.Decimal, ok bool, err error) {
	if strings.TrimSpace(w.MaxAmount) == "" {
		return decimal.Zero, false, nil
	}
	max, err = decimal.NewFromString(strings.TrimSpace(w.MaxAmount))
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("parsing withdrawal.max_amount %q: %w", w.MaxAmount, err)
	}
	if !max.IsPositive() {
		return decimal.Zero, false, fmt.Errorf("withdrawal.max_amount must be positive, got %s", max)
	}
	return max, true, nil
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Limit   int64         `mapstructure:"limit"`
	Window  time.Duration `mapstructure:"window"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type AuditConfig struct {
	IPHashKey string `mapstructure:"ip_hash_key"` // empty: random per process
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: ATM_.
// Nested keys use underscore: ATM_SERVER_PORT, ATM_CURRENCY_DENOMINATIONS, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.openapi_path", "docs/api/openapi.yaml")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("currency.code", "ZAR")
	v.SetDefault("currency.symbol", "R")
	v.SetDefault("currency.name", "Rands")
	v.SetDefault("currency.denominations", []string{"100", "50", "20", "10"})
	v.SetDefault("withdrawal.max_amount", "100000")
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173", "http://localhost:3000"})
	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.limit", 60)
	v.SetDefault("ratelimit.window", "1m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "atm_withdrawal")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("audit.ip_hash_key", "")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: ATM_REDIS_HOST -> redis.host
	v.SetEnvPrefix("ATM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that cannot be caught by decoding alone.
// The denomination set itself is validated when the calculator is built.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if len(c.Currency.Denominations) == 0 {
		return errors.New("currency.denominations must not be empty")
	}
	if _, _, err := c.Withdrawal.MaxAmountDecimal(); err != nil {
		return err
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.Limit <= 0 {
			return fmt.Errorf("ratelimit.limit must be positive, got %d", c.RateLimit.Limit)
		}
		if c.RateLimit.Window <= 0 {
			return fmt.Errorf("ratelimit.window must be positive, got %s", c.RateLimit.Window)
		}
	}
	return nil
}
