package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// LikePolicyUnlimited allows the same viewer to like a post or comment any
// number of times; LikePolicyOnce records one like per session identity.
const (
	LikePolicyUnlimited = "unlimited"
	LikePolicyOnce      = "once"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Ledger (embedded storage) configuration
	Ledger LedgerConfig

	// Authentication configuration
	Auth AuthConfig

	// Engagement configuration
	Engagement EngagementConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// LedgerConfig holds embedded key-value store settings
type LedgerConfig struct {
	Path       string
	InMemory   bool
	SyncWrites bool
}

// AuthConfig holds credential and token settings
type AuthConfig struct {
	// InsecurePlaintext stores passwords verbatim, matching the original
	// browser demo. Leave false to store bcrypt hashes.
	InsecurePlaintext bool
	TokenSecret       string
	TokenTTL          time.Duration
}

// EngagementConfig holds like/comment behavior settings
type EngagementConfig struct {
	LikePolicy string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Ledger: LedgerConfig{
			Path:       getEnv("LEDGER_PATH", "./data/ledger"),
			InMemory:   getBoolEnv("LEDGER_IN_MEMORY", false),
			SyncWrites: getBoolEnv("LEDGER_SYNC_WRITES", true),
		},
		Auth: AuthConfig{
			InsecurePlaintext: getBoolEnv("AUTH_INSECURE_PLAINTEXT", false),
			TokenSecret:       getEnv("TOKEN_SECRET", ""),
			TokenTTL:          getDurationEnv("TOKEN_TTL", 12*time.Hour),
		},
		Engagement: EngagementConfig{
			LikePolicy: getEnv("LIKE_POLICY", LikePolicyUnlimited),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !c.Ledger.InMemory && c.Ledger.Path == "" {
		return fmt.Errorf("LEDGER_PATH is required unless LEDGER_IN_MEMORY is set")
	}
	if c.Auth.TokenSecret == "" {
		return fmt.Errorf("TOKEN_SECRET is required")
	}
	if c.Engagement.LikePolicy != LikePolicyUnlimited && c.Engagement.LikePolicy != LikePolicyOnce {
		return fmt.Errorf("LIKE_POLICY must be %q or %q", LikePolicyUnlimited, LikePolicyOnce)
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
