package kv

import (
	"context"
	"time"

	"coachcore/internal/metrics"
)

// Compile-time contract assertion.
var _ Keyspace = (*Instrumented)(nil)

// Instrumented wraps a keyspace and reports every operation to a recorder.
type Instrumented struct {
	inner Keyspace
	rec   metrics.Recorder
}

// Instrument wraps ks with the recorder. A nil recorder yields ks unchanged.
func Instrument(ks Keyspace, rec metrics.Recorder) Keyspace {
	if rec == nil {
		return ks
	}
	return &Instrumented{inner: ks, rec: rec}
}

func (i *Instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	start := time.Now()
	value, ok, err := i.inner.Get(ctx, key)
	i.rec.Observe(ctx, "kv.get", err == nil, time.Since(start))
	return value, ok, err
}

func (i *Instrumented) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := i.inner.Set(ctx, key, value)
	i.rec.Observe(ctx, "kv.set", err == nil, time.Since(start))
	return err
}

func (i *Instrumented) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := i.inner.Delete(ctx, key)
	i.rec.Observe(ctx, "kv.delete", err == nil, time.Since(start))
	return err
}

func (i *Instrumented) Keys(ctx context.Context) ([]string, error) {
	start := time.Now()
	keys, err := i.inner.Keys(ctx)
	i.rec.Observe(ctx, "kv.keys", err == nil, time.Since(start))
	return keys, err
}

func (i *Instrumented) Close() error { return i.inner.Close() }
