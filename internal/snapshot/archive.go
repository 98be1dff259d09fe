package snapshot

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"coachcore/internal/blob"
	"coachcore/internal/bus"
	"coachcore/internal/codec"
)

// ArchivePrefix namespaces snapshot archives within a blob store.
const ArchivePrefix = "snapshot-"

// ExportToArchive exports the keyspace and stores the document in the blob
// store under a fresh uuid-derived key.
func ExportToArchive(ctx context.Context, guard *codec.Guard, store blob.Store) (blob.Info, error) {
	data, err := Export(ctx, guard)
	if err != nil {
		return blob.Info{}, err
	}
	key := fmt.Sprintf("%s%s.json", ArchivePrefix, uuid.NewString())
	return store.Put(ctx, key, data)
}

// ImportFromArchive fetches an archived document and restores it.
func ImportFromArchive(ctx context.Context, guard *codec.Guard, emitter *bus.Emitter, store blob.Store, key string) (ImportResult, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		return ImportResult{}, fmt.Errorf("fetch archive %s: %w", key, err)
	}
	return Import(ctx, guard, emitter, data)
}

// ListArchives returns stored snapshot archives, oldest key first.
func ListArchives(ctx context.Context, store blob.Store) ([]blob.Info, error) {
	return store.List(ctx, ArchivePrefix)
}
