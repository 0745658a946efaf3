package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	StoreBackend string // sqlite | memory | redis | postgres
	StorePath    string
	RedisAddr    string
	PostgresDSN  string

	AdminEmail    string
	AdminPassword string

	ResumeAPIURL  string
	ResumeAPIKey  string
	ResumeTimeout time.Duration

	DBMaxOpenConns int
	DBMaxIdleConns int
	DBConnMaxIdle  time.Duration
	DBConnMaxLife  time.Duration

	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		StoreBackend:   strings.ToLower(getEnv("STORE_BACKEND", "sqlite")),
		StorePath:      getEnv("STORE_PATH", "jobdesk.db"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		PostgresDSN:    getEnv("DATABASE_URL", ""),
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@jobdesk.local"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "jobdesk-admin"),
		ResumeAPIURL:   getEnv("RESUME_API_URL", ""),
		ResumeAPIKey:   getEnv("RESUME_API_KEY", ""),
		ResumeTimeout:  getDuration("RESUME_TIMEOUT", 20*time.Second),
		DBMaxOpenConns: getInt("DB_MAX_OPEN_CONNS", 5),
		DBMaxIdleConns: getInt("DB_MAX_IDLE_CONNS", 2),
		DBConnMaxIdle:  getDuration("DB_CONN_MAX_IDLE", 5*time.Minute),
		DBConnMaxLife:  getDuration("DB_CONN_MAX_LIFE", 30*time.Minute),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	switch cfg.StoreBackend {
	case "sqlite", "memory", "redis", "postgres":
	default:
		log.Fatalf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
	if cfg.StoreBackend == "postgres" && cfg.PostgresDSN == "" {
		log.Fatal("DATABASE_URL is required when STORE_BACKEND is postgres")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
