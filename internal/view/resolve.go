package view

import "coachcore/pkg/domain"

// Program is a student's assignment with every loose reference resolved
// against the catalogs. Ids that no longer resolve are dropped, not
// repaired: the stored lists keep them, the rendered program does not.
type Program struct {
	Student      domain.Student
	Exercises    []domain.Exercise
	DayExercises map[int][]domain.Exercise
	Meals        []domain.Meal
	Supplements  []domain.Supplement
	Vitamins     []domain.Supplement
}

// ResolveProgram materializes a student's program from the raw catalogs.
func ResolveProgram(st domain.Student, exercises []domain.Exercise, meals []domain.Meal, supplements []domain.Supplement) Program {
	exByID := make(map[int64]domain.Exercise, len(exercises))
	for _, ex := range exercises {
		exByID[ex.ID] = ex
	}
	mealByID := make(map[int64]domain.Meal, len(meals))
	for _, m := range meals {
		mealByID[m.ID] = m
	}
	supByID := make(map[int64]domain.Supplement, len(supplements))
	for _, s := range supplements {
		supByID[s.ID] = s
	}

	p := Program{Student: st}
	for _, id := range st.ExerciseIDs {
		if ex, ok := exByID[id]; ok {
			p.Exercises = append(p.Exercises, ex)
		}
	}
	if len(st.DayExerciseIDs) > 0 {
		p.DayExercises = make(map[int][]domain.Exercise, len(st.DayExerciseIDs))
		for day, ids := range st.DayExerciseIDs {
			for _, id := range ids {
				if ex, ok := exByID[id]; ok {
					p.DayExercises[day] = append(p.DayExercises[day], ex)
				}
			}
		}
	}
	for _, id := range st.MealIDs {
		if m, ok := mealByID[id]; ok {
			p.Meals = append(p.Meals, m)
		}
	}
	for _, id := range st.SupplementIDs {
		if s, ok := supByID[id]; ok && s.Kind == domain.KindSupplement {
			p.Supplements = append(p.Supplements, s)
		}
	}
	for _, id := range st.VitaminIDs {
		if s, ok := supByID[id]; ok && s.Kind == domain.KindVitamin {
			p.Vitamins = append(p.Vitamins, s)
		}
	}
	return p
}
