package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Addr                 string
	Environment          string
	LogLevel             string
	DatabaseURL          string
	RunMigrations        bool
	SeedFixtures         bool
	FixturesPath         string
	Timezone             string
	ReviewDueDays        int
	ReviewDigestSchedule string
	ShutdownTimeout      time.Duration
	MetricsEnabled       bool
}

// Load reads envFile (or ./.env when empty) if present, then the process environment.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	return Config{
		Addr:                 getEnv("APP_ADDR", ":8080"),
		Environment:          getEnv("APP_ENV", "development"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		RunMigrations:        getEnvBool("RUN_MIGRATIONS", true),
		SeedFixtures:         getEnvBool("SEED_FIXTURES", false),
		FixturesPath:         getEnv("FIXTURES_PATH", ""),
		Timezone:             getEnv("APP_TIMEZONE", "Asia/Manila"),
		ReviewDueDays:        getEnvInt("REVIEW_DUE_DAYS", 30),
		ReviewDigestSchedule: getEnvOptional("REVIEW_DIGEST_SCHEDULE", "0 8 * * 1"),
		ShutdownTimeout:      getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		MetricsEnabled:       getEnvBool("METRICS_ENABLED", true),
	}, nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Location resolves Timezone; "today" is the calendar day observed there.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("APP_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvOptional lets an explicitly empty variable switch a feature off.
func getEnvOptional(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("APP_ADDR must not be empty")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.LogLevel)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.ReviewDueDays < 0 {
		return fmt.Errorf("REVIEW_DUE_DAYS must not be negative")
	}
	if c.ReviewDigestSchedule != "" {
		if _, err := cron.ParseStandard(c.ReviewDigestSchedule); err != nil {
			return fmt.Errorf("REVIEW_DIGEST_SCHEDULE %q: %w", c.ReviewDigestSchedule, err)
		}
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	if c.DatabaseURL == "" && c.IsProduction() && c.FixturesPath == "" {
		return fmt.Errorf("DATABASE_URL or FIXTURES_PATH must be set in production")
	}
	return nil
}
