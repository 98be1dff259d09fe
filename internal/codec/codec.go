// Package codec is the serialization guard between the keyspace and typed
// collections. Reads never fail: absent, unparseable, or wrong-shaped data
// yields the caller's fallback, with the incident logged. Writes surface
// errors, since a dropped persist must reach the mutator's caller.
package codec

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"coachcore/internal/kv"
)

// Guard binds a keyspace to a logger for guarded access.
type Guard struct {
	ks  kv.Keyspace
	log *zap.Logger
}

// NewGuard constructs a guard. A nil logger is replaced with zap.NewNop().
func NewGuard(ks kv.Keyspace, log *zap.Logger) *Guard {
	if log == nil {
		log = zap.NewNop()
	}
	return &Guard{ks: ks, log: log}
}

// Keyspace returns the underlying keyspace.
func (g *Guard) Keyspace() kv.Keyspace { return g.ks }

// Read decodes the value stored under key into T. The fallback is returned
// when the key is absent, the stored bytes are not valid JSON for T, or the
// keyspace itself errors. Read never panics and never surfaces a decode
// error to the caller.
func Read[T any](ctx context.Context, g *Guard, key string, fallback T) T {
	raw, ok, err := g.ks.Get(ctx, key)
	if err != nil {
		g.log.Error("keyspace read failed, using fallback", zap.String("key", key), zap.Error(err))
		return fallback
	}
	if !ok {
		return fallback
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		g.log.Warn("stored value malformed, using fallback", zap.String("key", key), zap.Error(err))
		return fallback
	}
	return out
}

// ReadChecked reads like Read and additionally applies a shape check to the
// decoded value. A failing check discards the decoded value; when heal is
// set the fallback is re-persisted so subsequent reads are stable. Heal
// failures are logged, not returned: the caller still gets a usable value.
func ReadChecked[T any](ctx context.Context, g *Guard, key string, fallback T, valid func(T) bool, heal bool) T {
	raw, ok, err := g.ks.Get(ctx, key)
	if err != nil {
		g.log.Error("keyspace read failed, using fallback", zap.String("key", key), zap.Error(err))
		return fallback
	}
	if !ok {
		if heal {
			if err := Write(ctx, g, key, fallback); err != nil {
				g.log.Error("seed write failed", zap.String("key", key), zap.Error(err))
			}
		}
		return fallback
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		g.log.Warn("stored value malformed, using fallback", zap.String("key", key), zap.Error(err))
		return healAndReturn(ctx, g, key, fallback, heal)
	}
	if valid != nil && !valid(out) {
		g.log.Warn("stored value has wrong shape, using fallback", zap.String("key", key))
		return healAndReturn(ctx, g, key, fallback, heal)
	}
	return out
}

func healAndReturn[T any](ctx context.Context, g *Guard, key string, fallback T, heal bool) T {
	if heal {
		if err := Write(ctx, g, key, fallback); err != nil {
			g.log.Error("self-heal write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return fallback
}

// Write serializes value and stores it under key. Keyspace failures are
// returned so mutators can roll back and report them.
func Write[T any](ctx context.Context, g *Guard, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return g.ks.Set(ctx, key, raw)
}

// WriteRaw stores pre-encoded JSON under key. Snapshot import uses this to
// replay document values verbatim.
func (g *Guard) WriteRaw(ctx context.Context, key string, raw json.RawMessage) error {
	return g.ks.Set(ctx, key, raw)
}

// ReadRaw returns the stored bytes for key, reporting presence. Keyspace
// errors are logged and reported as absence.
func (g *Guard) ReadRaw(ctx context.Context, key string) (json.RawMessage, bool) {
	raw, ok, err := g.ks.Get(ctx, key)
	if err != nil {
		g.log.Error("keyspace read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return raw, ok
}
