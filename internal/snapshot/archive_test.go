package snapshot

import (
	"context"
	"strings"
	"testing"

	"coachcore/internal/blob"
	"coachcore/internal/codec"
)

func TestArchiveRoundTrip(t *testing.T) {
	ctx := context.Background()
	ks := newMapKeyspace()
	_ = ks.Set(ctx, "students", []byte(`[{"id":1,"name":"Ali"}]`))
	guard := codec.NewGuard(ks, nil)
	archive := blob.NewMemory()

	info, err := ExportToArchive(ctx, guard, archive)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(info.Key, ArchivePrefix) || !strings.HasSuffix(info.Key, ".json") {
		t.Fatalf("archive key %q", info.Key)
	}
	if info.Size == 0 {
		t.Fatalf("empty archive")
	}

	list, err := ListArchives(ctx, archive)
	if err != nil || len(list) != 1 || list[0].Key != info.Key {
		t.Fatalf("list: %+v %v", list, err)
	}

	// restore into a fresh keyspace
	dst := newMapKeyspace()
	res, err := ImportFromArchive(ctx, codec.NewGuard(dst, nil), nil, archive, info.Key)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Counts["students"] != 1 {
		t.Fatalf("counts: %+v", res.Counts)
	}
	got, _, _ := dst.Get(ctx, "students")
	if string(got) != `[{"id":1,"name":"Ali"}]` {
		t.Fatalf("restored: %s", got)
	}
}

func TestImportFromMissingArchive(t *testing.T) {
	ctx := context.Background()
	guard := codec.NewGuard(newMapKeyspace(), nil)
	if _, err := ImportFromArchive(ctx, guard, nil, blob.NewMemory(), "snapshot-nope.json"); err == nil {
		t.Fatalf("expected fetch error")
	}
}

func TestExportKeysAreUnique(t *testing.T) {
	ctx := context.Background()
	guard := codec.NewGuard(newMapKeyspace(), nil)
	archive := blob.NewMemory()

	a, err := ExportToArchive(ctx, guard, archive)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	b, err := ExportToArchive(ctx, guard, archive)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if a.Key == b.Key {
		t.Fatalf("colliding archive keys %q", a.Key)
	}
}
