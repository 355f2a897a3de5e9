package storage

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRecord is one persisted document of the SQL backend.
type KVRecord struct {
	Key       string `gorm:"primaryKey;size:191"`
	Value     string `gorm:"type:longtext;not null"`
	UpdatedAt time.Time
}

func (KVRecord) TableName() string {
	return "kv_records"
}

// SQLBackend stores documents in the kv_records table of a MySQL or SQLite database.
type SQLBackend struct {
	db *gorm.DB
}

// NewSQLBackend migrates kv_records and returns the backend.
func NewSQLBackend(db *gorm.DB) (*SQLBackend, error) {
	if err := db.AutoMigrate(&KVRecord{}); err != nil {
		return nil, err
	}
	return &SQLBackend{db: db}, nil
}

func upsert(tx *gorm.DB, key string, value []byte) error {
	rec := KVRecord{Key: key, Value: string(value), UpdatedAt: time.Now()}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}

func (b *SQLBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var recs []KVRecord
	if err := b.db.WithContext(ctx).Where(clause.Eq{Column: clause.Column{Name: "key"}, Value: key}).Limit(1).Find(&recs).Error; err != nil {
		return nil, false, err
	}
	if len(recs) == 0 {
		return nil, false, nil
	}
	return []byte(recs[0].Value), true, nil
}

func (b *SQLBackend) Set(ctx context.Context, key string, value []byte) error {
	return upsert(b.db.WithContext(ctx), key, value)
}

func (b *SQLBackend) SetMany(ctx context.Context, values map[string][]byte) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for k, v := range values {
			if err := upsert(tx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *SQLBackend) Clear(ctx context.Context, prefix string) error {
	db := b.db.WithContext(ctx)
	if prefix == "" {
		return db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&KVRecord{}).Error
	}

	var keys []string
	if err := db.Model(&KVRecord{}).Where(clause.Like{Column: clause.Column{Name: "key"}, Value: prefix + "%"}).Pluck("key", &keys).Error; err != nil {
		return err
	}
	// LIKE treats '_' as a wildcard; keep exact prefix matches only.
	matched := keys[:0]
	for _, k := range keys {
		if strings.HasPrefix(k, prefix) {
			matched = append(matched, k)
		}
	}
	if len(matched) == 0 {
		return nil
	}
	return db.Where(clause.IN{Column: clause.Column{Name: "key"}, Values: toInterfaces(matched)}).Delete(&KVRecord{}).Error
}

func (b *SQLBackend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func toInterfaces(keys []string) []interface{} {
	out := make([]interface{}, len(keys))
	for i, k := range keys {
		out[i] = k
	}
	return out
}
