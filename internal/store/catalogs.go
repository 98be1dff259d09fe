package store

import (
	"context"

	"go.uber.org/zap"

	"coachcore/internal/bus"
	"coachcore/internal/codec"
	"coachcore/internal/metrics"
	"coachcore/pkg/domain"
)

// Categories manages exercise category definitions.
type Categories struct {
	collection[domain.ExerciseCategory]
}

// NewCategories constructs the category store with its seed dataset.
func NewCategories(ctx context.Context, guard *codec.Guard, emitter *bus.Emitter, log *zap.Logger, rec metrics.Recorder) *Categories {
	c := &Categories{collection[domain.ExerciseCategory]{
		key:   domain.KeyExerciseCategories,
		guard: guard,
		bus:   emitter,
		log:   log,
		rec:   rec,
		seed:  seedCategories(),
		id:    func(cat domain.ExerciseCategory) int64 { return cat.ID },
		setID: func(cat *domain.ExerciseCategory, id int64) { cat.ID = id },
	}}
	c.init(ctx)
	return c
}

// Types manages the open, user-editable set of category type labels.
type Types struct {
	collection[domain.ExerciseType]
}

// NewTypes constructs the type store with its seed dataset.
func NewTypes(ctx context.Context, guard *codec.Guard, emitter *bus.Emitter, log *zap.Logger, rec metrics.Recorder) *Types {
	t := &Types{collection[domain.ExerciseType]{
		key:   domain.KeyExerciseTypes,
		guard: guard,
		bus:   emitter,
		log:   log,
		rec:   rec,
		seed:  seedTypes(),
		id:    func(et domain.ExerciseType) int64 { return et.ID },
		setID: func(et *domain.ExerciseType, id int64) { et.ID = id },
	}}
	t.init(ctx)
	return t
}

// Meals manages the diet catalog.
type Meals struct {
	collection[domain.Meal]
}

// NewMeals constructs the meal store.
func NewMeals(ctx context.Context, guard *codec.Guard, emitter *bus.Emitter, log *zap.Logger, rec metrics.Recorder) *Meals {
	m := &Meals{collection[domain.Meal]{
		key:   domain.KeyMeals,
		guard: guard,
		bus:   emitter,
		log:   log,
		rec:   rec,
		id:    func(meal domain.Meal) int64 { return meal.ID },
		setID: func(meal *domain.Meal, id int64) { meal.ID = id },
	}}
	m.init(ctx)
	return m
}

// Supplements manages supplement and vitamin entries, discriminated by kind
// within one collection.
type Supplements struct {
	collection[domain.Supplement]
}

// NewSupplements constructs the supplement store.
func NewSupplements(ctx context.Context, guard *codec.Guard, emitter *bus.Emitter, log *zap.Logger, rec metrics.Recorder) *Supplements {
	s := &Supplements{collection[domain.Supplement]{
		key:   domain.KeySupplements,
		guard: guard,
		bus:   emitter,
		log:   log,
		rec:   rec,
		id:    func(sup domain.Supplement) int64 { return sup.ID },
		setID: func(sup *domain.Supplement, id int64) { sup.ID = id },
	}}
	s.init(ctx)
	return s
}

// OfKind returns the entries matching one discriminator value.
func (s *Supplements) OfKind(kind domain.SupplementKind) []domain.Supplement {
	var out []domain.Supplement
	for _, sup := range s.Items() {
		if sup.Kind == kind {
			out = append(out, sup)
		}
	}
	return out
}

// SupplementCategories manages supplement category definitions.
type SupplementCategories struct {
	collection[domain.SupplementCategory]
}

// NewSupplementCategories constructs the supplement category store.
func NewSupplementCategories(ctx context.Context, guard *codec.Guard, emitter *bus.Emitter, log *zap.Logger, rec metrics.Recorder) *SupplementCategories {
	c := &SupplementCategories{collection[domain.SupplementCategory]{
		key:   domain.KeySupplementCategories,
		guard: guard,
		bus:   emitter,
		log:   log,
		rec:   rec,
		id:    func(cat domain.SupplementCategory) int64 { return cat.ID },
		setID: func(cat *domain.SupplementCategory, id int64) { cat.ID = id },
	}}
	c.init(ctx)
	return c
}
