package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/mmdatafocus/smartpos_backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQL(t *testing.T) *SQLBackend {
	t.Helper()
	db, err := config.OpenDatabase(sqlite.Open(filepath.Join(t.TempDir(), "kv.db")))
	require.NoError(t, err)
	backend, err := NewSQLBackend(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })
	return backend
}

func TestSQLBackendContract(t *testing.T) {
	runBackendContract(t, newTestSQL(t))
}

func TestSQLBackend_ClearIgnoresLikeWildcards(t *testing.T) {
	backend := newTestSQL(t)
	ctx := context.Background()

	require.NoError(t, backend.Set(ctx, "smartpos_orgs", []byte(`[]`)))
	// '_' in the prefix would match any character under LIKE
	require.NoError(t, backend.Set(ctx, "smartposXorgs", []byte(`[]`)))

	require.NoError(t, backend.Clear(ctx, "smartpos_"))

	_, found, err := backend.Get(ctx, "smartpos_orgs")
	require.NoError(t, err)
	assert.False(t, found)
	_, found, err = backend.Get(ctx, "smartposXorgs")
	require.NoError(t, err)
	assert.True(t, found)
}
