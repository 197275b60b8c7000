// Package config loads application configuration from environment
// variables.
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values. Each field maps to
// one environment variable; required variables are enforced by must()
// and abort startup when missing.
type Config struct {
	Env          string // APP_ENV (dev/test/prod)
	Port         string // APP_PORT
	DBUser       string // DB_USER
	DBPass       string // DB_PASS (optional)
	DBHost       string // DB_HOST
	DBPort       string // DB_PORT
	DBName       string // DB_NAME
	JWTSecret    string // JWT_SECRET
	AccessTTLMin int    // ACCESS_TOKEN_TTL_MIN
	BcryptCost   int    // BCRYPT_COST
	AMQPURL      string // RABBITMQ_URL (optional; empty disables events)

	// Public traffic controls. The catalog cache and the write rate
	// limit only take effect when Redis is reachable.
	CacheTTL        time.Duration // CACHE_TTL (default 30s)
	RateLimitMax    int           // RATE_LIMIT_MAX (default 20)
	RateLimitWindow time.Duration // RATE_LIMIT_WINDOW (default 1m)
}

// Load reads the environment into a Config. Missing required
// variables are fatal.
func Load() Config {
	return Config{
		Env:          must("APP_ENV"),
		Port:         must("APP_PORT"),
		DBUser:       must("DB_USER"),
		DBPass:       os.Getenv("DB_PASS"),
		DBHost:       must("DB_HOST"),
		DBPort:       must("DB_PORT"),
		DBName:       must("DB_NAME"),
		JWTSecret:    must("JWT_SECRET"),
		AccessTTLMin: mustInt("ACCESS_TOKEN_TTL_MIN"),
		BcryptCost:   mustInt("BCRYPT_COST"),
		AMQPURL:      os.Getenv("RABBITMQ_URL"),

		CacheTTL:        envDur("CACHE_TTL", 30*time.Second),
		RateLimitMax:    envInt("RATE_LIMIT_MAX", 20),
		RateLimitWindow: envDur("RATE_LIMIT_WINDOW", time.Minute),
	}
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is must() plus integer conversion.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

func envInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	if s := os.Getenv(key); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			return d
		}
	}
	return def
}
