package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"API_PORT", "PORT", "STORAGE_BACKEND", "REDIS_ADDRESS", "SQLITE_PATH", "GO_ENV"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageRedis, cfg.StorageBackend)
	assert.Equal(t, "localhost:6379", cfg.RedisAddress)
	assert.Equal(t, "smartpos.db", cfg.SQLitePath)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_PORT", "")
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_BACKEND", "SQLite")
	t.Setenv("STORAGE_KEY_PREFIX", "demo_")
	t.Setenv("GO_ENV", "production")
	t.Setenv("SEED_DEMO_DATA", "yes")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, StorageSQLite, cfg.StorageBackend)
	assert.Equal(t, "demo_", cfg.StorageKeyPrefix)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.SeedDemoData)
}

func TestLoad_UnknownBackendFallsBackToRedis(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "cassandra")
	assert.Equal(t, StorageRedis, Load().StorageBackend)
}

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLDSN(AppConfig{DBUser: "pos", DBPassword: "secret", DBHost: "db", DBPort: "3306", DBName: "smartpos"})
	assert.Contains(t, dsn, "pos:secret@tcp(db:3306)/smartpos")
	assert.Contains(t, dsn, "parseTime=true")

	socket := MySQLDSN(AppConfig{DBUser: "pos", DBHost: "/cloudsql/proj:region:inst", DBName: "smartpos"})
	assert.Contains(t, socket, "@unix(/cloudsql/proj:region:inst)/smartpos")
}

func TestDialector_RejectsNonSQLBackends(t *testing.T) {
	_, err := Dialector(AppConfig{StorageBackend: StorageRedis})
	require.Error(t, err)

	d, err := Dialector(AppConfig{StorageBackend: StorageSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())
}

func TestRetryDelayIsCapped(t *testing.T) {
	assert.Equal(t, 2*time.Second, retryDelay(1))
	assert.Equal(t, 30*time.Second, retryDelay(10))
}

func TestFeatureFlags(t *testing.T) {
	t.Setenv("ALLOW_UNASSIGNED_LOCATION", "")
	assert.False(t, AllowUnassignedLocation())
	t.Setenv("ALLOW_UNASSIGNED_LOCATION", "TRUE")
	assert.True(t, AllowUnassignedLocation())
}
