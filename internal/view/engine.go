package view

import (
	"fmt"
	"sync"

	"coachcore/internal/store"
	"coachcore/pkg/domain"
)

// Engine memoizes projections per source revision and parameter set, so that
// repeated calls with unchanged inputs return the cached result instead of
// recomputing.
type Engine struct {
	mu    sync.Mutex
	cache map[string]memoEntry
}

type memoEntry struct {
	rev   uint64
	value any
}

// NewEngine constructs an empty projection cache.
func NewEngine() *Engine {
	return &Engine{cache: make(map[string]memoEntry)}
}

func lookup[R any](e *Engine, key string, rev uint64, compute func() R) R {
	e.mu.Lock()
	if entry, ok := e.cache[key]; ok && entry.rev == rev {
		value := entry.value.(R)
		e.mu.Unlock()
		return value
	}
	e.mu.Unlock()

	value := compute()

	e.mu.Lock()
	e.cache[key] = memoEntry{rev: rev, value: value}
	e.mu.Unlock()
	return value
}

// Students returns the roster filtered and sorted, recomputed only when the
// roster revision or a parameter changes.
func (e *Engine) Students(s *store.Students, query string, field StudentSortField, desc bool) []domain.Student {
	key := fmt.Sprintf("students|%s|%s|%t", query, field, desc)
	return lookup(e, key, s.Revision(), func() []domain.Student {
		return SortStudents(FilterStudents(s.Items(), query), field, desc)
	})
}

// Exercises returns the catalog filtered by query.
func (e *Engine) Exercises(s *store.Exercises, query string) []domain.Exercise {
	key := "exercises|" + query
	return lookup(e, key, s.Revision(), func() []domain.Exercise {
		return FilterExercises(s.Items(), query)
	})
}

// Supplements returns the catalog entries of one kind, keeping supplement
// and vitamin pickers separate views over the shared collection.
func (e *Engine) Supplements(s *store.Supplements, kind domain.SupplementKind) []domain.Supplement {
	key := "supplements|" + string(kind)
	return lookup(e, key, s.Revision(), func() []domain.Supplement {
		return s.OfKind(kind)
	})
}

// MealGroups returns the weekly meal plan grouped by day then slot.
func (e *Engine) MealGroups(s *store.Meals) []DayGroup {
	return lookup(e, "mealGroups", s.Revision(), func() []DayGroup {
		return GroupMeals(s.Items())
	})
}

// Program resolves one student's assignment against the catalogs. The memo
// key spans all four source revisions, so a catalog deletion invalidates
// the cached program.
func (e *Engine) Program(id int64, students *store.Students, exercises *store.Exercises, meals *store.Meals, supplements *store.Supplements) (Program, bool) {
	st, ok := students.Get(id)
	if !ok {
		return Program{}, false
	}
	rev := students.Revision() ^ exercises.Revision()<<16 ^ meals.Revision()<<32 ^ supplements.Revision()<<48
	key := fmt.Sprintf("program|%d", id)
	return lookup(e, key, rev, func() Program {
		return ResolveProgram(st, exercises.Items(), meals.Items(), supplements.Items())
	}), true
}
