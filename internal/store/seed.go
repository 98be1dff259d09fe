package store

import "coachcore/pkg/domain"

// Built-in defaults for the catalog collections, used only when the
// keyspace slot is empty and written back immediately so subsequent reads
// are stable. The roster, meal, and supplement collections start empty.

func seedTypes() []domain.ExerciseType {
	return []domain.ExerciseType{
		{ID: 1, Name: "strength"},
		{ID: 2, Name: "cardio"},
		{ID: 3, Name: "stretch"},
	}
}

func seedCategories() []domain.ExerciseCategory {
	return []domain.ExerciseCategory{
		{ID: 1, Name: "Chest", Type: "strength"},
		{ID: 2, Name: "Back", Type: "strength"},
		{ID: 3, Name: "Legs", Type: "strength"},
		{ID: 4, Name: "Shoulders", Type: "strength"},
		{ID: 5, Name: "Arms", Type: "strength"},
		{ID: 6, Name: "Core", Type: "strength"},
		{ID: 7, Name: "Conditioning", Type: "cardio"},
		{ID: 8, Name: "Mobility", Type: "stretch"},
	}
}

func seedExercises() []domain.Exercise {
	return []domain.Exercise{
		{ID: 1, Name: "Bench Press", CategoryID: 1, Muscle: "chest"},
		{ID: 2, Name: "Incline Dumbbell Press", CategoryID: 1, Muscle: "chest"},
		{ID: 3, Name: "Deadlift", CategoryID: 2, Muscle: "back"},
		{ID: 4, Name: "Lat Pulldown", CategoryID: 2, Muscle: "lats"},
		{ID: 5, Name: "Barbell Row", CategoryID: 2, Muscle: "back"},
		{ID: 6, Name: "Squat", CategoryID: 3, Muscle: "quads"},
		{ID: 7, Name: "Leg Press", CategoryID: 3, Muscle: "quads"},
		{ID: 8, Name: "Romanian Deadlift", CategoryID: 3, Muscle: "hamstrings"},
		{ID: 9, Name: "Overhead Press", CategoryID: 4, Muscle: "delts"},
		{ID: 10, Name: "Lateral Raise", CategoryID: 4, Muscle: "delts"},
		{ID: 11, Name: "Barbell Curl", CategoryID: 5, Muscle: "biceps"},
		{ID: 12, Name: "Triceps Pushdown", CategoryID: 5, Muscle: "triceps"},
		{ID: 13, Name: "Plank", CategoryID: 6, Muscle: "core"},
		{ID: 14, Name: "Hanging Leg Raise", CategoryID: 6, Muscle: "core"},
		{ID: 15, Name: "Rowing Machine", CategoryID: 7, Muscle: "full body"},
		{ID: 16, Name: "Hip Flexor Stretch", CategoryID: 8, Muscle: "hips"},
	}
}
