package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	JournalNone     = "none"
	JournalPostgres = "postgres"
	JournalRedis    = "redis"
)

// Config is the process configuration, read from the environment
// (after an optional .env file has been loaded by the caller).
type Config struct {
	Port              string        `mapstructure:"port"                validate:"required,numeric"`
	LogLevel          string        `mapstructure:"log_level"           validate:"oneof=debug info warn error"`
	LogFormat         string        `mapstructure:"log_format"          validate:"oneof=json console"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" validate:"gt=0"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"        validate:"gt=0"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"       validate:"gt=0"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"        validate:"gt=0"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"    validate:"gt=0"`

	JournalBackend    string `mapstructure:"journal_backend"     validate:"oneof=none postgres redis"`
	DatabaseURL       string `mapstructure:"database_url"        validate:"required_if=JournalBackend postgres"`
	RedisAddr         string `mapstructure:"redis_addr"          validate:"required_if=JournalBackend redis"`
	RedisPassword     string `mapstructure:"redis_password"`
	RedisDB           int    `mapstructure:"redis_db"            validate:"gte=0"`
	RedisStream       string `mapstructure:"redis_stream"`
	RedisStreamMaxLen int64  `mapstructure:"redis_stream_maxlen" validate:"gte=0"`
}

var defaults = map[string]any{
	"port":                "8080",
	"log_level":           "info",
	"log_format":          "json",
	"read_header_timeout": 5 * time.Second,
	"read_timeout":        10 * time.Second,
	"write_timeout":       10 * time.Second,
	"idle_timeout":        60 * time.Second,
	"shutdown_timeout":    10 * time.Second,
	"journal_backend":     JournalNone,
	"database_url":        "",
	"redis_addr":          "",
	"redis_password":      "",
	"redis_db":            0,
	"redis_stream":        "calculations",
	"redis_stream_maxlen": 10000,
}

// Load reads configuration from environment variables (PORT, LOG_LEVEL,
// JOURNAL_BACKEND, ...) and validates it.
func Load() (*Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
		// port -> PORT, redis_stream_maxlen -> REDIS_STREAM_MAXLEN.
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("load config: bind env %q: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("load config: unmarshal: %w", err)
	}

	cfg.JournalBackend = strings.ToLower(strings.TrimSpace(cfg.JournalBackend))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("load config: validate: %w", err)
	}

	return &cfg, nil
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
