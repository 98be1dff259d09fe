package blob

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func testStoreBasic(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	payload := []byte(`{"students":[]}`)
	info, err := s.Put(ctx, "snapshot-a.json", payload)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if info.Key != "snapshot-a.json" || info.Size != int64(len(payload)) {
		t.Fatalf("info: %+v", info)
	}

	data, err := s.Get(ctx, "snapshot-a.json")
	if err != nil || string(data) != `{"students":[]}` {
		t.Fatalf("get: %q %v", data, err)
	}

	// overwrite is allowed
	if _, err := s.Put(ctx, "snapshot-a.json", []byte(`{}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	data, _ = s.Get(ctx, "snapshot-a.json")
	if string(data) != `{}` {
		t.Fatalf("overwrite not applied: %q", data)
	}

	if _, err := s.Put(ctx, "other.json", []byte(`1`)); err != nil {
		t.Fatalf("put other: %v", err)
	}
	list, err := s.List(ctx, "snapshot-")
	if err != nil || len(list) != 1 || list[0].Key != "snapshot-a.json" {
		t.Fatalf("prefixed list: %+v %v", list, err)
	}
	list, err = s.List(ctx, "")
	if err != nil || len(list) != 2 {
		t.Fatalf("full list: %+v %v", list, err)
	}

	ok, err := s.Delete(ctx, "snapshot-a.json")
	if err != nil || !ok {
		t.Fatalf("delete: %v %v", ok, err)
	}
	ok, err = s.Delete(ctx, "snapshot-a.json")
	if err != nil || ok {
		t.Fatalf("second delete should report false, got %v %v", ok, err)
	}
	if _, err := s.Get(ctx, "snapshot-a.json"); err == nil {
		t.Fatalf("get after delete should fail")
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemory()
	if s.Driver() != DriverMemory {
		t.Fatalf("driver: %s", s.Driver())
	}
	testStoreBasic(t, s)
}

func TestFilesystemStore(t *testing.T) {
	s, err := NewFilesystem(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.Driver() != DriverFilesystem {
		t.Fatalf("driver: %s", s.Driver())
	}
	testStoreBasic(t, s)
}

func TestFilesystemRejectsTraversal(t *testing.T) {
	root := t.TempDir()
	s, err := NewFilesystem(root)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()

	for _, key := range []string{"", "  ", "/abs.json", "../escape.json", "a/../../escape.json"} {
		if _, err := s.Put(ctx, key, []byte(`{}`)); err == nil {
			t.Errorf("key %q accepted", key)
		}
		if _, err := s.Get(ctx, key); err == nil {
			t.Errorf("get %q accepted", key)
		}
	}
	// nothing escaped the root
	if _, err := os.Stat(filepath.Join(filepath.Dir(root), "escape.json")); err == nil {
		t.Fatalf("file written outside root")
	}
}

func TestFilesystemNestedKeys(t *testing.T) {
	s, err := NewFilesystem(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	if _, err := s.Put(ctx, "2026/08/snapshot-x.json", []byte(`{}`)); err != nil {
		t.Fatalf("nested put: %v", err)
	}
	list, err := s.List(ctx, "2026/")
	if err != nil || len(list) != 1 || list[0].Key != "2026/08/snapshot-x.json" {
		t.Fatalf("nested list: %+v %v", list, err)
	}
}

func TestOpenFactory(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, Options{Driver: DriverMemory})
	if err != nil || s.Driver() != DriverMemory {
		t.Fatalf("memory: %v %v", s, err)
	}

	s, err = Open(ctx, Options{FSRoot: t.TempDir()})
	if err != nil || s.Driver() != DriverFilesystem {
		t.Fatalf("empty driver should default to fs: %v %v", s, err)
	}

	if _, err := Open(ctx, Options{Driver: "bogus"}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
