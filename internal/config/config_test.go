package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 25, cfg.PoolMaxOpen)
	assert.Equal(t, 5, cfg.PoolMinIdle)
	assert.Equal(t, 5*time.Minute, cfg.PoolConnMaxLifetime)
	assert.Equal(t, 5*time.Second, cfg.PoolAcquireTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("DB_NAME", "shopdb")
	t.Setenv("POOL_MAX_OPEN", "4")
	t.Setenv("POOL_ACQUIRE_TIMEOUT", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())

	dbCfg := cfg.DatabaseConfig()
	assert.Equal(t, "shopdb", dbCfg.DBName)
	assert.Equal(t, 4, dbCfg.MaxOpenConns)
	assert.Equal(t, 250*time.Millisecond, dbCfg.AcquireTimeout)
}
