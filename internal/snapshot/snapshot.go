// Package snapshot serializes the full set of collections into one backup
// document and restores collections from such a document. A document maps
// every known collection key to its stored value, or to null when the key
// was absent at export time: on restore, null means "leave the existing
// value alone", not "clear".
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"coachcore/internal/bus"
	"coachcore/internal/codec"
	"coachcore/pkg/domain"
)

// ErrNotABackup reports input that parsed as bytes but is not a backup
// document. Callers distinguish this from I/O failures when reporting to
// the user.
var ErrNotABackup = errors.New("snapshot: not a valid backup document")

// Document is the backup wire format: one JSON object keyed by collection
// key names.
type Document map[string]json.RawMessage

// Export assembles a backup document from every known collection key.
// Absent keys export as null so a restore can tell "never existed" from
// "deliberately empty". A malformed stored slot also exports as null: a
// corrupt value must not poison the whole backup, and on restore null
// leaves the target's value alone.
func Export(ctx context.Context, guard *codec.Guard) ([]byte, error) {
	doc := make(Document, len(domain.CollectionKeys()))
	for _, key := range domain.CollectionKeys() {
		raw, ok := guard.ReadRaw(ctx, string(key))
		if !ok || !json.Valid(raw) {
			doc[string(key)] = nil // marshals as null
			continue
		}
		doc[string(key)] = raw
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ImportResult reports what a restore wrote: per-key entry counts (array
// length, or 1 for the profile object) and the keys skipped as null.
type ImportResult struct {
	Counts  map[string]int
	Skipped []string
}

// Total sums the per-key counts.
func (r ImportResult) Total() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	return total
}

// Import restores collections from a backup document. Only keys in the
// known key list are written; null values are skipped, leaving any existing
// stored value untouched. Import is not transactional across keys: on a
// write failure the keys already written stay written, and the partial
// result is returned alongside the error. After the final write a wildcard
// broadcast makes every store in this process reload.
func Import(ctx context.Context, guard *codec.Guard, emitter *bus.Emitter, data []byte) (ImportResult, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", ErrNotABackup, err)
	}
	res := ImportResult{Counts: make(map[string]int)}
	for _, key := range domain.CollectionKeys() {
		raw, present := doc[string(key)]
		if !present {
			continue
		}
		if isNull(raw) {
			res.Skipped = append(res.Skipped, string(key))
			continue
		}
		if err := guard.WriteRaw(ctx, string(key), raw); err != nil {
			return res, fmt.Errorf("restore %s: %w", key, err)
		}
		res.Counts[string(key)] = countEntries(raw)
	}
	if emitter != nil {
		emitter.Broadcast(bus.TopicAll)
	}
	return res, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// countEntries reports array length, or 1 for a non-array value.
func countEntries(raw json.RawMessage) int {
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err == nil {
		return len(arr)
	}
	return 1
}
