package store

import (
	"context"

	"go.uber.org/zap"

	"coachcore/internal/bus"
	"coachcore/internal/codec"
	"coachcore/internal/metrics"
	"coachcore/pkg/domain"
)

// Students manages the student roster.
type Students struct {
	collection[domain.Student]
}

// NewStudents constructs the roster store and loads it from the keyspace.
func NewStudents(ctx context.Context, guard *codec.Guard, emitter *bus.Emitter, log *zap.Logger, rec metrics.Recorder) *Students {
	s := &Students{collection[domain.Student]{
		key:   domain.KeyStudents,
		guard: guard,
		bus:   emitter,
		log:   log,
		rec:   rec,
		id:    func(st domain.Student) int64 { return st.ID },
		setID: func(st *domain.Student, id int64) { st.ID = id },
		clone: domain.CloneStudent,
	}}
	s.init(ctx)
	return s
}

// SaveExercises merges a student's exercise assignment (overall list plus
// per-training-day lists) into that one record, recomputes progress, and
// persists. Ids are stored as given; unresolved ids are tolerated and
// filtered at render time.
func (s *Students) SaveExercises(ctx context.Context, id int64, overall []int64, perDay map[int][]int64) error {
	return s.mergeStudent(ctx, id, "saveExercises", func(st *domain.Student) {
		st.ExerciseIDs = append([]int64(nil), overall...)
		if perDay == nil {
			st.DayExerciseIDs = nil
		} else {
			st.DayExerciseIDs = make(map[int][]int64, len(perDay))
			for day, ids := range perDay {
				if day < 1 || day > domain.TrainingDays {
					continue
				}
				st.DayExerciseIDs[day] = append([]int64(nil), ids...)
			}
		}
	})
}

// SaveDiet merges a student's meal assignment into that one record.
func (s *Students) SaveDiet(ctx context.Context, id int64, mealIDs []int64) error {
	return s.mergeStudent(ctx, id, "saveDiet", func(st *domain.Student) {
		st.MealIDs = append([]int64(nil), mealIDs...)
	})
}

// SaveSupplements merges a student's supplement and vitamin assignments into
// that one record.
func (s *Students) SaveSupplements(ctx context.Context, id int64, supplementIDs, vitaminIDs []int64) error {
	return s.mergeStudent(ctx, id, "saveSupplements", func(st *domain.Student) {
		st.SupplementIDs = append([]int64(nil), supplementIDs...)
		st.VitaminIDs = append([]int64(nil), vitaminIDs...)
	})
}

func (s *Students) mergeStudent(ctx context.Context, id int64, op string, merge func(*domain.Student)) error {
	s.mu.Lock()
	idx := -1
	for i := range s.items {
		if s.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	prev := s.items
	next := make([]domain.Student, len(s.items))
	for i := range s.items {
		next[i] = domain.CloneStudent(s.items[i])
	}
	merge(&next[idx])
	next[idx].Progress = ProgressOf(next[idx])
	s.items = next
	err := s.persistLocked(ctx, op)
	if err != nil {
		s.items = prev
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.bus.Broadcast(string(domain.KeyStudents))
	return nil
}

// ProgressOf derives a student's completion percentage from the four
// assignment groups: overall exercises, per-day split, diet, supplements or
// vitamins. Each filled group contributes a quarter.
func ProgressOf(st domain.Student) int {
	done := 0
	if len(st.ExerciseIDs) > 0 {
		done++
	}
	if len(st.DayExerciseIDs) > 0 {
		done++
	}
	if len(st.MealIDs) > 0 {
		done++
	}
	if len(st.SupplementIDs) > 0 || len(st.VitaminIDs) > 0 {
		done++
	}
	return done * 100 / 4
}
