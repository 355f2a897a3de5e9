package store

import (
	"context"

	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/storage"
)

// Collection is an ordered list of records of one entity type, persisted as a whole
// under its storage key after every mutation.
type Collection[T models.Resource] struct {
	key     string
	items   []T
	adapter *storage.Adapter
}

func newCollection[T models.Resource](key string, adapter *storage.Adapter) *Collection[T] {
	return &Collection[T]{key: key, items: []T{}, adapter: adapter}
}

func (c *Collection[T]) Key() string {
	return c.key
}

func (c *Collection[T]) load(ctx context.Context, def []T) {
	c.items = clone(storage.LoadOr(ctx, c.adapter, c.key, def))
	if c.items == nil {
		c.items = []T{}
	}
}

func (c *Collection[T]) persist(ctx context.Context) {
	c.adapter.Save(ctx, c.key, c.items)
}

func (c *Collection[T]) indexOf(id string) int {
	for i, item := range c.items {
		if item.GetId() == id {
			return i
		}
	}
	return -1
}

// Add appends r. A record with the same id is replaced in place.
func (c *Collection[T]) Add(ctx context.Context, r T) {
	if i := c.indexOf(r.GetId()); i >= 0 {
		c.items[i] = r
	} else {
		c.items = append(c.items, r)
	}
	c.persist(ctx)
}

// Prepend puts r first. A record with the same id is removed from its old position.
func (c *Collection[T]) Prepend(ctx context.Context, r T) {
	if i := c.indexOf(r.GetId()); i >= 0 {
		c.items = append(c.items[:i:i], c.items[i+1:]...)
	}
	c.items = append([]T{r}, c.items...)
	c.persist(ctx)
}

// Update replaces the record with r's id and reports whether one existed.
// The collection is persisted either way.
func (c *Collection[T]) Update(ctx context.Context, r T) bool {
	i := c.indexOf(r.GetId())
	if i >= 0 {
		c.items[i] = r
	}
	c.persist(ctx)
	return i >= 0
}

// Delete removes the record with id and reports whether one existed. References to it are not touched.
func (c *Collection[T]) Delete(ctx context.Context, id string) bool {
	i := c.indexOf(id)
	if i >= 0 {
		c.items = append(c.items[:i:i], c.items[i+1:]...)
	}
	c.persist(ctx)
	return i >= 0
}

func (c *Collection[T]) Get(id string) (T, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// All returns a copy of every record in order.
func (c *Collection[T]) All() []T {
	return clone(c.items)
}

func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Find returns the first record matching pred.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	for _, item := range c.items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Stage prepares items to replace the whole collection on the next Store.Commit.
func (c *Collection[T]) Stage(items []T) Change {
	staged := clone(items)
	if staged == nil {
		staged = []T{}
	}
	return Change{key: c.key, apply: func() interface{} {
		c.items = staged
		return staged
	}}
}

func clone[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
