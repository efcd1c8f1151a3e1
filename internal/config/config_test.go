package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "STORE_DRIVER", "SQLITE_PATH", "APP_PORT", "REDIS_ENABLED", "SEED_ON_START"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "employees.db", cfg.Store.SQLitePath)
	assert.False(t, cfg.Redis.Enabled)
	assert.True(t, cfg.Seed.OnStart)
}

func TestLoad_ProductionDoesNotSeedByDefault(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SEED_ON_START", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Seed.OnStart)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := Load()
	assert.ErrorContains(t, err, "unsupported STORE_DRIVER")
}

func TestLoad_PostgresDriverIsCaseInsensitive(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
}

func TestLoadDatabaseConfig(t *testing.T) {
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "staff")

	db, err := LoadDatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, 6543, db.Port)
	assert.Equal(t, "staff", db.DBName)
	assert.Equal(t, "disable", db.SSLMode)

	t.Setenv("DB_PORT", "not-a-number")
	_, err = LoadDatabaseConfig()
	assert.ErrorContains(t, err, "invalid DB_PORT")
}

func TestValidate_RedisTTL(t *testing.T) {
	cfg := &Config{
		App:   AppConfig{Port: "8080"},
		Store: StoreConfig{Driver: DriverSQLite, SQLitePath: ":memory:"},
		Redis: RedisConfig{Enabled: true, TTL: 0},
	}
	assert.Error(t, cfg.Validate())

	cfg.Redis.TTL = 60
	assert.NoError(t, cfg.Validate())
}
