package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("ADMIN_INCLUDE_CANCELLED", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("S3_BUCKET", "")
	t.Setenv("SERVER_PORT", "")

	cfg := Load()

	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.True(t, cfg.AdminIncludeCancelled)
	assert.False(t, cfg.RedisEnabled())
	assert.False(t, cfg.ReportsEnabled())
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("ADMIN_INCLUDE_CANCELLED", "false")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("S3_BUCKET", "relatorios")

	cfg := Load()

	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.False(t, cfg.AdminIncludeCancelled)
	assert.Equal(t, 5, cfg.RateLimitPerMinute)
	assert.True(t, cfg.RedisEnabled())
	assert.True(t, cfg.ReportsEnabled())
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "abc")
	t.Setenv("ADMIN_INCLUDE_CANCELLED", "talvez")

	cfg := Load()

	assert.Equal(t, 20, cfg.RateLimitPerMinute)
	assert.True(t, cfg.AdminIncludeCancelled)
}
