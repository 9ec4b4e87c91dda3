package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Values every package reaches for directly. Load refreshes them once
// godotenv has had a chance to populate the environment.
var (
	JWTSecret   = []byte(getEnv("JWT_SECRET", defaultJWTSecret))
	JWTExpiry   = getEnvDuration("JWT_EXPIRY", 24*time.Hour)
	DeliveryFee = getEnvFloat("DELIVERY_FEE", 40)
)

const defaultJWTSecret = "quickbite_super_secret_2024"

// Config holds server-level settings resolved at startup.
type Config struct {
	Port      string
	GinMode   string
	DBPath    string
	LogLevel  string
	LogFormat string
}

// Load reads a .env file if present and resolves all configuration.
func Load() *Config {
	_ = godotenv.Load()

	JWTSecret = []byte(getEnv("JWT_SECRET", defaultJWTSecret))
	JWTExpiry = getEnvDuration("JWT_EXPIRY", 24*time.Hour)
	DeliveryFee = getEnvFloat("DELIVERY_FEE", 40)

	return &Config{
		Port:      getEnv("PORT", "8080"),
		GinMode:   getEnv("GIN_MODE", "debug"),
		DBPath:    getEnv("DB_PATH", "quickbite.db"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return fallback
}
