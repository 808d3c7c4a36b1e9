package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/database"
)

// Config holds the application configuration.
type Config struct {
	Port            int           `koanf:"port"`
	DatabaseDriver  string        `koanf:"database-driver"`
	DatabaseDSN     string        `koanf:"database-dsn"`
	JWTSecret       string        `koanf:"jwt-secret"`
	TokenTTL        time.Duration `koanf:"token-ttl"`
	BcryptCost      int           `koanf:"bcrypt-cost"`
	CORSOrigins     []string      `koanf:"cors-origins"`
	LogLevel        string        `koanf:"log-level"`
	LogPretty       bool          `koanf:"log-pretty"`
	MetricsAddr     string        `koanf:"metrics-addr"`
	HealthSchedule  string        `koanf:"health-schedule"`
	DBRetryBase     time.Duration `koanf:"db-retry-base"`
	DBRetryMax      time.Duration `koanf:"db-retry-max"`
	DBRetryTimeout  time.Duration `koanf:"db-retry-timeout"`
	ProxyTimeout    time.Duration `koanf:"proxy-timeout"`
	DefaultPageSize int           `koanf:"default-page-size"`
	MaxPageSize     int           `koanf:"max-page-size"`
}

// Retry returns the startup connection backoff settings.
func (c *Config) Retry() database.RetryConfig {
	return database.RetryConfig{Base: c.DBRetryBase, Max: c.DBRetryMax, Timeout: c.DBRetryTimeout}
}

// RegisterFlags declares every configuration flag on fs. Defaults come from
// the environment when the matching variable is set.
func RegisterFlags(fs *pflag.FlagSet) error {
	var errs []error
	durationEnv := func(key string, fallback time.Duration) time.Duration {
		d, err := time.ParseDuration(getEnv(key, fallback.String()))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return fallback
		}
		return d
	}
	intEnv := func(key string, fallback int) int {
		n, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return fallback
		}
		return n
	}
	boolEnv := func(key string, fallback bool) bool {
		b, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return fallback
		}
		return b
	}

	fs.String("config", getEnv("CONFIG_FILE", ""), "optional YAML config file")
	fs.Int("port", intEnv("PORT", 3000), "HTTP listen port")
	fs.String("database-driver", getEnv("DATABASE_DRIVER", database.DriverSQLite), "database driver: sqlite or pgx")
	fs.String("database-dsn", getEnv("DATABASE_DSN", "./fifa.db"), "database DSN (file path for sqlite, URL for pgx)")
	fs.String("jwt-secret", getEnv("JWT_SECRET", ""), "HS256 signing secret")
	fs.Duration("token-ttl", durationEnv("TOKEN_TTL", time.Hour), "bearer token lifetime")
	fs.Int("bcrypt-cost", intEnv("BCRYPT_COST", 10), "bcrypt work factor")
	fs.StringSlice("cors-origins", splitList(getEnv("CORS_ORIGINS", "http://localhost:4200")), "allowed CORS origins")
	fs.String("log-level", getEnv("LOG_LEVEL", "info"), "log level")
	fs.Bool("log-pretty", boolEnv("LOG_PRETTY", true), "human readable console logs")
	fs.String("metrics-addr", getEnv("METRICS_ADDR", ":9100"), "metrics and health listen address, empty to disable")
	fs.String("health-schedule", getEnv("HEALTH_SCHEDULE", "@every 15s"), "cron spec for background database checks")
	fs.Duration("db-retry-base", durationEnv("DB_RETRY_BASE", 2*time.Second), "first database connect retry delay")
	fs.Duration("db-retry-max", durationEnv("DB_RETRY_MAX", 30*time.Second), "maximum database connect retry delay")
	fs.Duration("db-retry-timeout", durationEnv("DB_RETRY_TIMEOUT", 0), "give up connecting after this long, 0 retries until shutdown")
	fs.Duration("proxy-timeout", durationEnv("PROXY_TIMEOUT", 10*time.Second), "image proxy fetch timeout")
	fs.Int("default-page-size", intEnv("DEFAULT_PAGE_SIZE", 20), "player listing page size when none is given")
	fs.Int("max-page-size", intEnv("MAX_PAGE_SIZE", 100), "largest player listing page a client may ask for")

	return errors.Join(errs...)
}

// Load builds the configuration from flag defaults, the optional YAML file
// named by --config and explicitly set flags, in increasing precedence.
func Load(fs *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if path, _ := fs.GetString("config"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}
	if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
		return nil, fmt.Errorf("failed to read flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports configuration that cannot work.
func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("jwt-secret is required (set JWT_SECRET)"))
	}
	if !database.ValidDriver(c.DatabaseDriver) {
		errs = append(errs, fmt.Errorf("database-driver %q is not one of sqlite, pgx", c.DatabaseDriver))
	}
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database-dsn is required"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d is out of range", c.Port))
	}
	if c.DefaultPageSize <= 0 {
		errs = append(errs, fmt.Errorf("default-page-size must be positive, got %d", c.DefaultPageSize))
	}
	if c.MaxPageSize < c.DefaultPageSize {
		errs = append(errs, fmt.Errorf("max-page-size %d is below default-page-size %d", c.MaxPageSize, c.DefaultPageSize))
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		errs = append(errs, fmt.Errorf("bcrypt-cost must be between 4 and 31, got %d", c.BcryptCost))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("token-ttl must be positive, got %s", c.TokenTTL))
	}
	if c.DBRetryBase <= 0 {
		errs = append(errs, fmt.Errorf("db-retry-base must be positive, got %s", c.DBRetryBase))
	}
	if c.ProxyTimeout <= 0 {
		errs = append(errs, fmt.Errorf("proxy-timeout must be positive, got %s", c.ProxyTimeout))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log-level: %w", err))
	}
	return errors.Join(errs...)
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
