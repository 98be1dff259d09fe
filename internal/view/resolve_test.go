package view

import (
	"testing"

	"coachcore/pkg/domain"
)

func TestResolveProgramDropsDanglingIDs(t *testing.T) {
	exercises := []domain.Exercise{{ID: 6, Name: "Squat"}, {ID: 7, Name: "Leg Press"}}
	meals := []domain.Meal{{ID: 2, Name: "Chicken Rice", Day: domain.Saturday, Type: domain.MealLunch}}
	supplements := []domain.Supplement{
		{ID: 4, Name: "Creatine", Kind: domain.KindSupplement},
		{ID: 5, Name: "Vitamin D", Kind: domain.KindVitamin},
	}

	st := domain.Student{
		ID:             1,
		Name:           "Ali",
		ExerciseIDs:    []int64{6, 999, 7},
		DayExerciseIDs: map[int][]int64{1: {6, 123}, 2: {7}},
		MealIDs:        []int64{2, 888},
		SupplementIDs:  []int64{4, 777},
		VitaminIDs:     []int64{5},
	}

	p := ResolveProgram(st, exercises, meals, supplements)
	if len(p.Exercises) != 2 || p.Exercises[0].ID != 6 || p.Exercises[1].ID != 7 {
		t.Fatalf("overall exercises: %+v", p.Exercises)
	}
	if len(p.DayExercises[1]) != 1 || p.DayExercises[1][0].ID != 6 {
		t.Fatalf("day 1: %+v", p.DayExercises[1])
	}
	if len(p.DayExercises[2]) != 1 {
		t.Fatalf("day 2: %+v", p.DayExercises[2])
	}
	if len(p.Meals) != 1 || p.Meals[0].ID != 2 {
		t.Fatalf("meals: %+v", p.Meals)
	}
	if len(p.Supplements) != 1 || p.Supplements[0].ID != 4 {
		t.Fatalf("supplements: %+v", p.Supplements)
	}
	if len(p.Vitamins) != 1 || p.Vitamins[0].ID != 5 {
		t.Fatalf("vitamins: %+v", p.Vitamins)
	}
}

func TestResolveProgramKindMismatch(t *testing.T) {
	// a vitamin id listed under supplements does not resolve, and vice versa
	supplements := []domain.Supplement{
		{ID: 4, Name: "Creatine", Kind: domain.KindSupplement},
		{ID: 5, Name: "Vitamin D", Kind: domain.KindVitamin},
	}
	st := domain.Student{SupplementIDs: []int64{5}, VitaminIDs: []int64{4}}

	p := ResolveProgram(st, nil, nil, supplements)
	if len(p.Supplements) != 0 || len(p.Vitamins) != 0 {
		t.Fatalf("kind mismatch resolved: %+v %+v", p.Supplements, p.Vitamins)
	}
}

func TestResolveProgramEmptyAssignment(t *testing.T) {
	p := ResolveProgram(domain.Student{ID: 1}, nil, nil, nil)
	if len(p.Exercises) != 0 || p.DayExercises != nil || len(p.Meals) != 0 {
		t.Fatalf("empty assignment resolved to %+v", p)
	}
}
