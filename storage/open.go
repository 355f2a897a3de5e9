package storage

import (
	"context"
	"fmt"

	"github.com/mmdatafocus/smartpos_backend/config"
	"github.com/sirupsen/logrus"
)

// Open connects the backend selected by cfg.StorageBackend and wraps it in an Adapter.
func Open(ctx context.Context, cfg config.AppConfig, logger *logrus.Logger) (*Adapter, error) {
	var backend Backend
	switch cfg.StorageBackend {
	case config.StorageRedis:
		client, err := config.ConnectRedisWithRetry(ctx, cfg)
		if err != nil {
			return nil, err
		}
		backend = NewRedisBackend(client, config.GetRedisLock(), cfg.StorageKeyPrefix+"commit_lock")
	case config.StorageMySQL, config.StorageSQLite:
		db, err := config.ConnectDatabaseWithRetry(ctx, cfg)
		if err != nil {
			return nil, err
		}
		sqlBackend, err := NewSQLBackend(db)
		if err != nil {
			return nil, fmt.Errorf("migrate kv_records: %w", err)
		}
		backend = sqlBackend
	case config.StorageMemory:
		backend = NewMemoryBackend()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
	return NewAdapter(backend, cfg.StorageKeyPrefix, logger), nil
}
