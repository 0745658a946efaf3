package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "sqlite", cfg.StoreBackend)
	assert.Equal(t, "jobdesk.db", cfg.StorePath)
	assert.Equal(t, "admin@jobdesk.local", cfg.AdminEmail)
	assert.NotEmpty(t, cfg.AdminPassword)
	assert.Equal(t, 20*time.Second, cfg.ResumeTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("STORE_BACKEND", "MEMORY")
	t.Setenv("STORE_PATH", "/tmp/board.db")
	t.Setenv("ADMIN_EMAIL", "root@example.com")
	t.Setenv("RESUME_TIMEOUT", "5s")
	t.Setenv("DB_MAX_OPEN_CONNS", "12")

	cfg := Load()
	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.Equal(t, "/tmp/board.db", cfg.StorePath)
	assert.Equal(t, "root@example.com", cfg.AdminEmail)
	assert.Equal(t, 5*time.Second, cfg.ResumeTimeout)
	assert.Equal(t, 12, cfg.DBMaxOpenConns)
}

func TestLoadIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("RESUME_TIMEOUT", "soon")
	t.Setenv("DB_MAX_OPEN_CONNS", "many")

	cfg := Load()
	assert.Equal(t, 20*time.Second, cfg.ResumeTimeout)
	assert.Equal(t, 5, cfg.DBMaxOpenConns)
}
