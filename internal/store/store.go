// Package store implements the per-entity collection stores. A store owns
// its keyspace key: it loads the collection through the serialization guard,
// exposes CRUD mutators that persist the whole collection and then broadcast
// the entity topic, and reloads when a signal (or poll tick) arrives. All
// other code must mutate collections through these stores so the broadcast
// contract stays intact.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"coachcore/internal/bus"
	"coachcore/internal/codec"
	"coachcore/internal/metrics"
	"coachcore/pkg/domain"
)

// ErrNotFound reports a mutation aimed at an id that is not in the collection.
var ErrNotFound = errors.New("store: no such id")

// collection is the shared core of every array-backed store. T is the entity
// type; id and setID adapt its id field, clone (optional) deep-copies
// entities that carry reference slices.
type collection[T any] struct {
	key   domain.CollectionKey
	guard *codec.Guard
	bus   *bus.Emitter
	log   *zap.Logger
	rec   metrics.Recorder

	id    func(T) int64
	setID func(*T, int64)
	clone func(T) T
	seed  []T

	mu    sync.RWMutex
	items []T
	rev   uint64
}

// Revision increments on every successful persist or reload. Derived views
// use it as a cheap memoization key: same revision, same contents.
func (c *collection[T]) Revision() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rev
}

func (c *collection[T]) init(ctx context.Context) {
	fallback := c.seed
	if fallback == nil {
		fallback = []T{}
	}
	// Seeded collections are written back on first load so subsequent
	// reads are stable; malformed stored arrays are healed the same way.
	loaded := codec.ReadChecked(ctx, c.guard, string(c.key), fallback, nil, true)
	c.mu.Lock()
	c.items = loaded
	c.rev++
	c.mu.Unlock()
}

// Items returns a copy of the collection in insertion order.
func (c *collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyItems()
}

func (c *collection[T]) copyItems() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	if c.clone != nil {
		for i := range out {
			out[i] = c.clone(out[i])
		}
	}
	return out
}

// Get returns the entity with the given id.
func (c *collection[T]) Get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.id(item) == id {
			if c.clone != nil {
				return c.clone(item), true
			}
			return item, true
		}
	}
	var zero T
	return zero, false
}

// nextID is one greater than the current maximum. Correct only because all
// mutation on one collection is serialized behind the store mutex; nothing
// coordinates ids across processes.
func (c *collection[T]) nextID() int64 {
	var max int64
	for _, item := range c.items {
		if v := c.id(item); v > max {
			max = v
		}
	}
	return max + 1
}

// Create assigns an id, appends, persists, and broadcasts. On persist
// failure the in-memory state is rolled back and no signal fires.
func (c *collection[T]) Create(ctx context.Context, item T) (T, error) {
	c.mu.Lock()
	c.setID(&item, c.nextID())
	prev := c.items
	c.items = append(append([]T(nil), c.items...), item)
	err := c.persistLocked(ctx, "create")
	if err != nil {
		c.items = prev
	}
	c.mu.Unlock()
	if err != nil {
		var zero T
		return zero, err
	}
	c.bus.Broadcast(string(c.key))
	return item, nil
}

// Update replaces the element with the matching id and re-persists the
// whole collection; there are no partial writes.
func (c *collection[T]) Update(ctx context.Context, id int64, item T) error {
	c.mu.Lock()
	idx := -1
	for i := range c.items {
		if c.id(c.items[i]) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return ErrNotFound
	}
	c.setID(&item, id)
	prev := c.items
	next := append([]T(nil), c.items...)
	next[idx] = item
	c.items = next
	err := c.persistLocked(ctx, "update")
	if err != nil {
		c.items = prev
	}
	c.mu.Unlock()
	if err != nil {
		return err
	}
	c.bus.Broadcast(string(c.key))
	return nil
}

// Remove filters the id out of the collection. Removing an id that other
// collections still reference is allowed; consumers drop dangling
// references at read time.
func (c *collection[T]) Remove(ctx context.Context, id int64) error {
	c.mu.Lock()
	next := make([]T, 0, len(c.items))
	found := false
	for _, item := range c.items {
		if c.id(item) == id {
			found = true
			continue
		}
		next = append(next, item)
	}
	if !found {
		c.mu.Unlock()
		return ErrNotFound
	}
	prev := c.items
	c.items = next
	err := c.persistLocked(ctx, "remove")
	if err != nil {
		c.items = prev
	}
	c.mu.Unlock()
	if err != nil {
		return err
	}
	c.bus.Broadcast(string(c.key))
	return nil
}

func (c *collection[T]) persistLocked(ctx context.Context, op string) error {
	start := time.Now()
	err := codec.Write(ctx, c.guard, string(c.key), c.items)
	if c.rec != nil {
		c.rec.Observe(ctx, string(c.key)+"."+op, err == nil, time.Since(start))
	}
	if err != nil {
		c.log.Error("persist failed, rolling back",
			zap.String("key", string(c.key)), zap.String("op", op), zap.Error(err))
	} else {
		c.rev++
	}
	return err
}

// Reload re-reads the collection from the keyspace, discarding in-memory
// state. Called on bus signals and poll ticks.
func (c *collection[T]) Reload(ctx context.Context) {
	loaded := codec.ReadChecked(ctx, c.guard, string(c.key), []T{}, nil, false)
	c.mu.Lock()
	c.items = loaded
	c.rev++
	c.mu.Unlock()
}

// Watch reloads on every signal for this collection's topic (entity-scoped
// or wildcard) until ctx is cancelled. When poll is positive, the store also
// re-reads on that interval, bounding staleness if a broadcast is missed.
func (c *collection[T]) Watch(ctx context.Context, poll time.Duration) {
	sub := c.bus.Subscribe(string(c.key))
	all := c.bus.Subscribe(bus.TopicAll)
	defer sub.Close()
	defer all.Close()

	var tick <-chan time.Time
	if poll > 0 {
		t := time.NewTicker(poll)
		defer t.Stop()
		tick = t.C
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.C:
			c.Reload(ctx)
		case <-all.C:
			c.Reload(ctx)
		case <-tick:
			c.Reload(ctx)
		}
	}
}
