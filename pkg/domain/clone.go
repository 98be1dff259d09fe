package domain

// CloneStudent deep-copies a student so callers cannot mutate shared slices.
func CloneStudent(s Student) Student {
	out := s
	out.ExerciseIDs = cloneIDs(s.ExerciseIDs)
	out.MealIDs = cloneIDs(s.MealIDs)
	out.SupplementIDs = cloneIDs(s.SupplementIDs)
	out.VitaminIDs = cloneIDs(s.VitaminIDs)
	if s.DayExerciseIDs != nil {
		out.DayExerciseIDs = make(map[int][]int64, len(s.DayExerciseIDs))
		for day, ids := range s.DayExerciseIDs {
			out.DayExerciseIDs[day] = cloneIDs(ids)
		}
	}
	return out
}

// CloneStudents deep-copies a student collection.
func CloneStudents(in []Student) []Student {
	if in == nil {
		return nil
	}
	out := make([]Student, len(in))
	for i := range in {
		out[i] = CloneStudent(in[i])
	}
	return out
}

func cloneIDs(ids []int64) []int64 {
	if ids == nil {
		return nil
	}
	return append([]int64(nil), ids...)
}
