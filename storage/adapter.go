package storage

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/mmdatafocus/smartpos_backend/config"
	"github.com/mmdatafocus/smartpos_backend/utils"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("smartpos/storage")

// Backend is a raw key-value store.
type Backend interface {
	// Get returns found=false with a nil error when key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany writes all values or none.
	SetMany(ctx context.Context, values map[string][]byte) error
	// Clear removes every key starting with prefix.
	Clear(ctx context.Context, prefix string) error
	Close() error
}

// Adapter stores JSON documents under prefixed keys. It never returns errors:
// failed reads fall back to the caller's default and failed writes are logged and dropped.
type Adapter struct {
	backend Backend
	prefix  string
	logger  *logrus.Logger
}

func NewAdapter(backend Backend, prefix string, logger *logrus.Logger) *Adapter {
	if logger == nil {
		logger = config.GetLogger()
	}
	return &Adapter{backend: backend, prefix: prefix, logger: logger}
}

func (a *Adapter) Prefix() string {
	return a.prefix
}

func (a *Adapter) Backend() Backend {
	return a.backend
}

func (a *Adapter) key(k string) string {
	return a.prefix + k
}

// Load decodes the value stored under key into dest and reports whether it did.
// dest is left untouched when the key is absent, unreadable or corrupt.
func (a *Adapter) Load(ctx context.Context, key string, dest interface{}) bool {
	raw, found, err := a.backend.Get(ctx, a.key(key))
	if err != nil {
		config.LogError(a.logger, "storage", "Load", a.key(key), utils.LogFieldsFromContext(ctx), err)
		return false
	}
	if !found {
		return false
	}

	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return false
	}
	tmp := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(raw, tmp.Interface()); err != nil {
		config.LogError(a.logger, "storage", "Load", a.key(key), utils.LogFieldsFromContext(ctx), err)
		return false
	}
	rv.Elem().Set(tmp.Elem())
	return true
}

// LoadOr returns the value stored under key, or def.
func LoadOr[T any](ctx context.Context, a *Adapter, key string, def T) T {
	var v T
	if a.Load(ctx, key, &v) {
		return v
	}
	return def
}

func (a *Adapter) Save(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		config.LogError(a.logger, "storage", "Save", a.key(key), utils.LogFieldsFromContext(ctx), err)
		return
	}
	if err := a.backend.Set(ctx, a.key(key), raw); err != nil {
		config.LogError(a.logger, "storage", "Save", a.key(key), utils.LogFieldsFromContext(ctx), err)
	}
}

// SaveMany writes every value in one backend call so related collections land together.
func (a *Adapter) SaveMany(ctx context.Context, values map[string]interface{}) {
	if len(values) == 0 {
		return
	}
	ctx, span := tracer.Start(ctx, "storage.SaveMany", trace.WithAttributes(attribute.Int("keys", len(values))))
	defer span.End()

	encoded := make(map[string][]byte, len(values))
	for k, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			span.RecordError(err)
			config.LogError(a.logger, "storage", "SaveMany", a.key(k), utils.LogFieldsFromContext(ctx), err)
			return
		}
		encoded[a.key(k)] = raw
	}
	if err := a.backend.SetMany(ctx, encoded); err != nil {
		span.RecordError(err)
		config.LogError(a.logger, "storage", "SaveMany", a.prefix, utils.LogFieldsFromContext(ctx), err)
	}
}

// Clear wipes every key under the adapter's prefix.
func (a *Adapter) Clear(ctx context.Context) {
	if err := a.backend.Clear(ctx, a.prefix); err != nil {
		config.LogError(a.logger, "storage", "Clear", a.prefix, utils.LogFieldsFromContext(ctx), err)
	}
}

func (a *Adapter) Close() error {
	return a.backend.Close()
}
