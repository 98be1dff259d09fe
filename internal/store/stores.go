package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"coachcore/internal/bus"
	"coachcore/internal/codec"
	"coachcore/internal/metrics"
)

// Stores bundles every collection store over one guard and one emitter.
type Stores struct {
	Students             *Students
	Exercises            *Exercises
	Categories           *Categories
	Types                *Types
	Meals                *Meals
	Supplements          *Supplements
	SupplementCategories *SupplementCategories
	Profile              *Profile
}

// Open constructs and loads all collection stores. Seeded catalogs are
// written back on first open.
func Open(ctx context.Context, guard *codec.Guard, emitter *bus.Emitter, log *zap.Logger, rec metrics.Recorder) *Stores {
	if log == nil {
		log = zap.NewNop()
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Stores{
		Students:             NewStudents(ctx, guard, emitter, log, rec),
		Exercises:            NewExercises(ctx, guard, emitter, log, rec),
		Categories:           NewCategories(ctx, guard, emitter, log, rec),
		Types:                NewTypes(ctx, guard, emitter, log, rec),
		Meals:                NewMeals(ctx, guard, emitter, log, rec),
		Supplements:          NewSupplements(ctx, guard, emitter, log, rec),
		SupplementCategories: NewSupplementCategories(ctx, guard, emitter, log, rec),
		Profile:              NewProfile(ctx, guard, emitter, log, rec),
	}
}

// Watch runs every store's signal loop until ctx is cancelled. A positive
// poll interval adds timer-driven re-reads on top of the bus signals.
func (s *Stores) Watch(ctx context.Context, poll time.Duration) {
	go s.Students.Watch(ctx, poll)
	go s.Exercises.Watch(ctx, poll)
	go s.Categories.Watch(ctx, poll)
	go s.Types.Watch(ctx, poll)
	go s.Meals.Watch(ctx, poll)
	go s.Supplements.Watch(ctx, poll)
	go s.SupplementCategories.Watch(ctx, poll)
	go s.Profile.Watch(ctx, poll)
}

// Reload re-reads every collection, used after a snapshot import in this
// process when watchers are not running.
func (s *Stores) Reload(ctx context.Context) {
	s.Students.Reload(ctx)
	s.Exercises.Reload(ctx)
	s.Categories.Reload(ctx)
	s.Types.Reload(ctx)
	s.Meals.Reload(ctx)
	s.Supplements.Reload(ctx)
	s.SupplementCategories.Reload(ctx)
	s.Profile.reload(ctx)
}
