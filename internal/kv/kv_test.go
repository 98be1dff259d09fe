package kv

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func testKeyspaceBasic(t *testing.T, ks Keyspace) {
	t.Helper()
	ctx := context.Background()

	// absent key
	v, ok, err := ks.Get(ctx, "students")
	if err != nil || ok || v != nil {
		t.Fatalf("absent get: %v %v %v", v, ok, err)
	}

	if err := ks.Set(ctx, "students", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err = ks.Get(ctx, "students")
	if err != nil || !ok || string(v) != `[{"id":1}]` {
		t.Fatalf("get after set: %q %v %v", v, ok, err)
	}

	// overwrite
	if err := ks.Set(ctx, "students", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = ks.Get(ctx, "students")
	if string(v) != `[]` {
		t.Fatalf("overwrite not applied: %q", v)
	}

	if err := ks.Set(ctx, "meals", []byte(`[]`)); err != nil {
		t.Fatalf("set meals: %v", err)
	}
	keys, err := ks.Keys(ctx)
	if err != nil || len(keys) != 2 || keys[0] != "meals" || keys[1] != "students" {
		t.Fatalf("keys: %v %v", keys, err)
	}

	if err := ks.Delete(ctx, "meals"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, ok, _ = ks.Get(ctx, "meals")
	if ok {
		t.Fatalf("deleted key still present")
	}
	// deleting an absent key is not an error
	if err := ks.Delete(ctx, "meals"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestMemoryKeyspace(t *testing.T) {
	ks := NewMemory()
	defer func() { _ = ks.Close() }()
	testKeyspaceBasic(t, ks)
}

func TestMemoryKeyspaceCopiesValues(t *testing.T) {
	ks := NewMemory()
	ctx := context.Background()
	in := []byte(`[1,2]`)
	if err := ks.Set(ctx, "k", in); err != nil {
		t.Fatalf("set: %v", err)
	}
	in[0] = 'x'
	out, _, _ := ks.Get(ctx, "k")
	if string(out) != `[1,2]` {
		t.Fatalf("stored value aliased caller slice: %q", out)
	}
	out[0] = 'y'
	again, _, _ := ks.Get(ctx, "k")
	if string(again) != `[1,2]` {
		t.Fatalf("returned value aliased store: %q", again)
	}
}

func TestSQLiteKeyspace(t *testing.T) {
	ks, err := NewSQLite(filepath.Join(t.TempDir(), "coach.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer func() { _ = ks.Close() }()
	testKeyspaceBasic(t, ks)
}

func TestSQLiteKeyspacePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "coach.db")
	ks, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	if err := ks.Set(ctx, "exercises", []byte(`[{"id":6,"name":"Squat"}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := ks.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = reopened.Close() }()
	v, ok, err := reopened.Get(ctx, "exercises")
	if err != nil || !ok {
		t.Fatalf("get after reopen: %v %v", ok, err)
	}
	if string(v) != `[{"id":6,"name":"Squat"}]` {
		t.Fatalf("value lost across reopen: %q", v)
	}
}

func TestOpenFactory(t *testing.T) {
	ks, err := Open(Options{Driver: DriverMemory})
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	if _, ok := ks.(*Memory); !ok {
		t.Fatalf("expected *Memory, got %T", ks)
	}

	ks, err = Open(Options{SQLitePath: filepath.Join(t.TempDir(), "default.db")})
	if err != nil {
		t.Fatalf("open default: %v", err)
	}
	if _, ok := ks.(*SQLite); !ok {
		t.Fatalf("empty driver should default to sqlite, got %T", ks)
	}
	_ = ks.Close()

	if _, err := Open(Options{Driver: "bogus"}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestNewPostgresOpenFailure(t *testing.T) {
	var gotDriver, gotDSN string
	restore := OverrideSQLOpen(func(driverName, dsn string) (*sql.DB, error) {
		gotDriver, gotDSN = driverName, dsn
		return nil, errors.New("boom")
	})
	defer restore()

	if _, err := NewPostgres(""); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected wrapped open error, got %v", err)
	}
	if gotDriver != "pgx" {
		t.Fatalf("unexpected driver %q", gotDriver)
	}
	if gotDSN != pgDefaultDSN {
		t.Fatalf("empty DSN should fall back to the default, got %q", gotDSN)
	}

	// explicit DSN passes through untouched
	if _, err := NewPostgres("postgres://db.example/coach"); err == nil {
		t.Fatalf("expected open error")
	}
	if gotDSN != "postgres://db.example/coach" {
		t.Fatalf("dsn not forwarded: %q", gotDSN)
	}
}
