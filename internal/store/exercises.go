package store

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"coachcore/internal/bus"
	"coachcore/internal/codec"
	"coachcore/internal/metrics"
	"coachcore/pkg/domain"
)

// Exercises manages the exercise catalog.
type Exercises struct {
	collection[domain.Exercise]
}

// NewExercises constructs the catalog store, seeding the built-in default
// dataset when the keyspace slot is empty.
func NewExercises(ctx context.Context, guard *codec.Guard, emitter *bus.Emitter, log *zap.Logger, rec metrics.Recorder) *Exercises {
	e := &Exercises{collection[domain.Exercise]{
		key:   domain.KeyExercises,
		guard: guard,
		bus:   emitter,
		log:   log,
		rec:   rec,
		seed:  seedExercises(),
		id:    func(ex domain.Exercise) int64 { return ex.ID },
		setID: func(ex *domain.Exercise, id int64) { ex.ID = id },
	}}
	e.init(ctx)
	return e
}

// BulkAddResult reports the outcome of a bulk add: how many lines became new
// catalog entries and how many were skipped as duplicates.
type BulkAddResult struct {
	Added   int
	Skipped int
}

// BulkAdd creates one exercise per non-empty line of text, all in the given
// category. Names that already exist in the catalog, or that repeat within
// the batch, are skipped case-insensitively; the whole batch is persisted
// with a single write and a single broadcast. Duplicates are not an error.
func (e *Exercises) BulkAdd(ctx context.Context, text string, categoryID int64) (BulkAddResult, error) {
	var res BulkAddResult
	e.mu.Lock()
	seen := make(map[string]struct{}, len(e.items))
	for _, ex := range e.items {
		seen[strings.ToLower(strings.TrimSpace(ex.Name))] = struct{}{}
	}
	prev := e.items
	next := append([]domain.Exercise(nil), e.items...)
	nextID := e.nextID()
	for _, line := range strings.Split(text, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		folded := strings.ToLower(name)
		if _, dup := seen[folded]; dup {
			res.Skipped++
			continue
		}
		seen[folded] = struct{}{}
		next = append(next, domain.Exercise{ID: nextID, Name: name, CategoryID: categoryID})
		nextID++
		res.Added++
	}
	if res.Added == 0 {
		e.mu.Unlock()
		return res, nil
	}
	e.items = next
	err := e.persistLocked(ctx, "bulkAdd")
	if err != nil {
		e.items = prev
	}
	e.mu.Unlock()
	if err != nil {
		return BulkAddResult{}, err
	}
	e.bus.Broadcast(string(domain.KeyExercises))
	return res, nil
}
