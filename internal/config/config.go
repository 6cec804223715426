package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port     int
	LogLevel string
	LogDir   string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// SessionTTL is how long idle per-user session scratch space is
	// retained before eviction.
	SessionTTL time.Duration

	// SessionCapacity bounds the number of concurrently tracked
	// sessions.
	SessionCapacity int

	// LeaderboardLimit is the number of entries returned by the daily
	// leaderboard.
	LeaderboardLimit int

	// TrustedProxies lists proxy IPs whose X-Forwarded-For header is
	// believed.
	TrustedProxies []string

	// SweepInterval is how often the background growth sweep runs. A
	// plant not settled within one interval is picked up by the sweep.
	SweepInterval time.Duration

	// SweepBatchSize caps how many plants a single sweep pass settles.
	SweepBatchSize int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:   getEnv("LOG_LEVEL", "INFO"),
		LogDir:     getEnv("LOG_DIR", "logs"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "astrobotany"),

		SessionTTL:       getEnvAsDuration("SESSION_TTL", 30*time.Minute),
		SessionCapacity:  getEnvAsInt("SESSION_CAPACITY", 2048),
		LeaderboardLimit: getEnvAsInt("LEADERBOARD_LIMIT", 10),
		TrustedProxies:   splitAndTrim(getEnv("TRUSTED_PROXIES", "")),
		SweepInterval:    getEnvAsDuration("SWEEP_INTERVAL", time.Hour),
		SweepBatchSize:   getEnvAsInt("SWEEP_BATCH_SIZE", 500),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.SessionCapacity <= 0 {
		return nil, fmt.Errorf("SESSION_CAPACITY must be positive")
	}
	if cfg.LeaderboardLimit <= 0 {
		return nil, fmt.Errorf("LEADERBOARD_LIMIT must be positive")
	}
	if cfg.SweepBatchSize <= 0 {
		return nil, fmt.Errorf("SWEEP_BATCH_SIZE must be positive")
	}

	return cfg, nil
}

// splitAndTrim turns a comma separated list into trimmed entries,
// dropping empties.
func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an int, falling back
// to the default on absence or parse failure.
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration retrieves an environment variable as a duration,
// falling back to the default on absence or parse failure.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
