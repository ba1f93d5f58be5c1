package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the full process configuration for both the engine server
// and the vehicle-side brake agent. Safety knobs (debounce, liveness window,
// fail-safe timeout, lookahead horizon) have development defaults only;
// production deployments must set them explicitly.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Engine evaluation cadence
	TickInterval   time.Duration `env:"TICK_INTERVAL" envDefault:"200ms"`
	LivenessWindow time.Duration `env:"LIVENESS_WINDOW" envDefault:"2s"`
	DebounceTicks  int           `env:"DEBOUNCE_TICKS" envDefault:"3"`

	// Minimum displacement (metres) before a fix counts as real movement;
	// smaller deltas are treated as localization jitter
	PositionJitterMeters float64 `env:"POSITION_JITTER_METERS" envDefault:"0.8"`

	// Pedestrian-way lookahead horizon for projected zone entry
	LookaheadHorizon time.Duration `env:"LOOKAHEAD_HORIZON" envDefault:"2s"`

	// Engine-wide fallback bands for vehicles without a config row (metres)
	DefaultProximityMeters float64 `env:"DEFAULT_PROXIMITY_METERS" envDefault:"10"`
	DefaultWarningMeters   float64 `env:"DEFAULT_WARNING_METERS" envDefault:"5"`
	DefaultBrakingMeters   float64 `env:"DEFAULT_BRAKING_METERS" envDefault:"2"`
	DefaultZoneMultiplier  float64 `env:"DEFAULT_ZONE_MULTIPLIER" envDefault:"1.5"`

	// Config store hot-reload interval
	ConfigReloadInterval time.Duration `env:"CONFIG_RELOAD_INTERVAL" envDefault:"10s"`

	// Vehicle agent
	VehicleID       string        `env:"VEHICLE_ID"`
	FailsafeTimeout time.Duration `env:"FAILSAFE_TIMEOUT" envDefault:"3s"`
	WatchdogTick    time.Duration `env:"WATCHDOG_TICK" envDefault:"100ms"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig loads configuration from environment variables and an optional
// .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		TickInterval:           getEnvAsDuration("TICK_INTERVAL", 200*time.Millisecond),
		LivenessWindow:         getEnvAsDuration("LIVENESS_WINDOW", 2*time.Second),
		DebounceTicks:          getEnvAsInt("DEBOUNCE_TICKS", 3),
		PositionJitterMeters:   getEnvAsFloat("POSITION_JITTER_METERS", 0.8),
		LookaheadHorizon:       getEnvAsDuration("LOOKAHEAD_HORIZON", 2*time.Second),
		DefaultProximityMeters: getEnvAsFloat("DEFAULT_PROXIMITY_METERS", 10),
		DefaultWarningMeters:   getEnvAsFloat("DEFAULT_WARNING_METERS", 5),
		DefaultBrakingMeters:   getEnvAsFloat("DEFAULT_BRAKING_METERS", 2),
		DefaultZoneMultiplier:  getEnvAsFloat("DEFAULT_ZONE_MULTIPLIER", 1.5),
		ConfigReloadInterval:   getEnvAsDuration("CONFIG_RELOAD_INTERVAL", 10*time.Second),
		VehicleID:              os.Getenv("VEHICLE_ID"),
		FailsafeTimeout:        getEnvAsDuration("FAILSAFE_TIMEOUT", 3*time.Second),
		WatchdogTick:           getEnvAsDuration("WATCHDOG_TICK", 100*time.Millisecond),
	}

	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DebounceTicks < 1 {
		return nil, fmt.Errorf("DEBOUNCE_TICKS must be at least 1, got %d", cfg.DebounceTicks)
	}
	if cfg.PositionJitterMeters < 0 {
		return nil, fmt.Errorf("POSITION_JITTER_METERS must not be negative, got %v", cfg.PositionJitterMeters)
	}
	if cfg.DefaultBrakingMeters > cfg.DefaultWarningMeters || cfg.DefaultWarningMeters > cfg.DefaultProximityMeters {
		return nil, fmt.Errorf("default bands must be ordered braking <= warning <= proximity")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns an environment variable parsed as int or a default.
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat returns an environment variable parsed as float64 or a default.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns an environment variable parsed as time.Duration or a default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
