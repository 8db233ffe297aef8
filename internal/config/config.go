package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr       = ":8080"
	defaultDSN        = "travelmate.db"
	defaultJWTTTL     = "24h"
	defaultJWTSecret  = "change-me-jwt-secret"
	defaultUploadsDir = "./uploads"
	defaultStaticBase = "/static/uploads"
)

type Config struct {
	AppEnv      string
	Addr        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	UploadsDir  string
	StaticBase  string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = getEnv("ADDR", defaultAddr)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDSN)
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.UploadsDir = getEnv("UPLOADS_DIR", defaultUploadsDir)
	cfg.StaticBase = getEnv("STATIC_BASE", defaultStaticBase)

	ttlRaw := getEnv("JWT_TTL", defaultJWTTTL)
	ttl, err := time.ParseDuration(strings.TrimSpace(ttlRaw))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL value %q: %w", ttlRaw, err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("JWT_TTL must be > 0")
	}
	cfg.JWTTTL = ttl

	if IsProd(cfg.AppEnv) && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}

	return cfg, nil
}

// IsProd reports whether the app should run with production settings.
func IsProd(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
