package cliparse

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	DefaultPort        = 8000
	DefaultDatabaseURL = "db.sqlite3"
	DefaultEnvFile     = ".env"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	LogLevel     string
	LogFormat    string
	EnvFile      string
}

// BindFlags registers the configuration flags on fs
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	// Network config (can be CLI args or env)
	fs.IntVarP(&cfg.Port, "port", "p", 0, "Server port")
	fs.StringVarP(&cfg.DatabaseURL, "database-url", "d", "", "Database URL or SQLite file path")
	fs.StringVarP(&cfg.DatabaseType, "database-type", "t", "", "Database type (sqlite, postgres or pgx)")

	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text or json)")
	fs.StringVar(&cfg.EnvFile, "env-file", DefaultEnvFile, "Optional dotenv file read before the environment")
}

// ParseFlags validates flags and fills unset values from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := pflag.NewFlagSet("polls", pflag.ContinueOnError)
	BindFlags(fs, &cfg)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return Resolve(cfg)
}

// Resolve applies fallbacks to flag values: environment variables first
// (after loading EnvFile, which never overrides the real environment), then
// defaults.
func Resolve(cfg Config) (Config, error) {
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", cfg.EnvFile, err)
		}
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port out of range: %d", cfg.Port)
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != "sqlite" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultDatabaseURL
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
		if cfg.LogLevel == "" {
			cfg.LogLevel = "info"
		}
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = os.Getenv("LOG_FORMAT")
		if cfg.LogFormat == "" {
			cfg.LogFormat = "text"
		}
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("invalid log format %q (use text or json)", cfg.LogFormat)
	}

	return cfg, nil
}

// ParseLogLevel maps a level name to its slog.Level
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
