package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string    `yaml:"log-format" env:"LOG_FORMAT" env-default:"text"`
	HTTP      HTTP      `yaml:"http"`
	Session   Session   `yaml:"session"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type HTTP struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read-timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// Session controls how long abandoned games are kept in memory.
type Session struct {
	IdleTTL       time.Duration `yaml:"idle-ttl" env:"SESSION_IDLE_TTL" env-default:"30m"`
	SweepInterval time.Duration `yaml:"sweep-interval" env:"SESSION_SWEEP_INTERVAL" env-default:"1m"`
}

type Telemetry struct {
	Enabled      bool   `yaml:"enabled" env:"OTEL_ENABLED" env-default:"false"`
	OTLPEndpoint string `yaml:"otlp-endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"otel-collector:4317"`
	ServiceName  string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"tic-tac-toe"`
}

// Load reads the YAML file at path, then applies environment overrides.
// An empty path or a missing file falls back to environment and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err := cleanenv.ReadConfig(path, cfg); err != nil {
				return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
			}
			return cfg, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("unable to stat config file %s: %w", path, err)
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("unable to load config from environment: %w", err)
	}
	return cfg, nil
}

// MustLoad is Load for main packages.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return cfg
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
