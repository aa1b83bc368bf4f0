package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Addr              string
	Environment       string
	JWTSecret         string
	FixtureSeed       int64
	RunSeed           bool
	SeedAdminUsername string
	SeedAdminPassword string
	MaxBodyBytes      int64
	MetricsEnabled    bool
}

func Load() Config {
	return Config{
		Addr:              getEnv("APP_ADDR", ":8080"),
		Environment:       getEnv("APP_ENV", "development"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		FixtureSeed:       getEnvInt64("FIXTURE_SEED", 0),
		RunSeed:           getEnvBool("RUN_SEED", true),
		SeedAdminUsername: getEnv("SEED_ADMIN_USERNAME", "admin"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		MaxBodyBytes:      getEnvInt64("MAX_BODY_BYTES", 1048576),
		MetricsEnabled:    getEnvBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
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

func getEnvInt64(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if c.Environment == "production" {
		if strings.TrimSpace(c.JWTSecret) == "" {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
		if c.RunSeed && strings.TrimSpace(c.SeedAdminPassword) == "" {
			return fmt.Errorf("SEED_ADMIN_PASSWORD must be set or RUN_SEED disabled in production")
		}
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	return nil
}
