// Package view computes display-ready projections of the raw collections:
// filtered, sorted, and grouped sequences, plus dangling-reference
// resolution. Every function here is pure; the Engine adds memoization so a
// projection is recomputed only when its source collection revision or a
// parameter changes. Nothing in this package is a source of truth.
package view

import (
	"sort"
	"strconv"
	"strings"

	"coachcore/pkg/domain"
)

// FilterStudents keeps students whose name, phone, or numeric fields
// (rendered as strings) contain the query, case-insensitively. An empty
// query keeps everything.
func FilterStudents(students []domain.Student, query string) []domain.Student {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return students
	}
	out := make([]domain.Student, 0, len(students))
	for _, st := range students {
		fields := []string{
			st.Name,
			st.Phone,
			strconv.FormatFloat(st.HeightCM, 'f', -1, 64),
			strconv.FormatFloat(st.WeightKG, 'f', -1, 64),
		}
		if matchAny(fields, query) {
			out = append(out, st)
		}
	}
	return out
}

// FilterExercises keeps exercises whose name, muscle, or target contains the
// query, case-insensitively.
func FilterExercises(exercises []domain.Exercise, query string) []domain.Exercise {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return exercises
	}
	out := make([]domain.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if matchAny([]string{ex.Name, ex.Muscle, ex.Target}, query) {
			out = append(out, ex)
		}
	}
	return out
}

func matchAny(fields []string, foldedQuery string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), foldedQuery) {
			return true
		}
	}
	return false
}

// StudentSortField selects the comparison key for SortStudents.
type StudentSortField string

const (
	SortByName     StudentSortField = "name"
	SortByHeight   StudentSortField = "height"
	SortByWeight   StudentSortField = "weight"
	SortByProgress StudentSortField = "progress"
)

// SortStudents returns a sorted copy. The sort is stable: ties keep input
// order. Unknown fields leave the order untouched.
func SortStudents(students []domain.Student, field StudentSortField, desc bool) []domain.Student {
	out := append([]domain.Student(nil), students...)
	var less func(a, b domain.Student) bool
	switch field {
	case SortByName:
		less = func(a, b domain.Student) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case SortByHeight:
		less = func(a, b domain.Student) bool { return a.HeightCM < b.HeightCM }
	case SortByWeight:
		less = func(a, b domain.Student) bool { return a.WeightKG < b.WeightKG }
	case SortByProgress:
		less = func(a, b domain.Student) bool { return a.Progress < b.Progress }
	default:
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// SlotGroup is one meal slot within a day.
type SlotGroup struct {
	Type  domain.MealType
	Meals []domain.Meal
}

// DayGroup is one weekday's meals, slot by slot.
type DayGroup struct {
	Day   domain.Weekday
	Slots []SlotGroup
}

// GroupMeals arranges meals by weekday then meal slot, both in their fixed
// enumerated orders (Saturday first; breakfast before lunch), regardless of
// insertion order or locale collation. Days and slots with no meals are
// omitted. Within a slot, meals keep input order.
func GroupMeals(meals []domain.Meal) []DayGroup {
	byDaySlot := make(map[domain.Weekday]map[domain.MealType][]domain.Meal)
	for _, m := range meals {
		slots := byDaySlot[m.Day]
		if slots == nil {
			slots = make(map[domain.MealType][]domain.Meal)
			byDaySlot[m.Day] = slots
		}
		slots[m.Type] = append(slots[m.Type], m)
	}
	var out []DayGroup
	for _, day := range domain.WeekdayOrder() {
		slots := byDaySlot[day]
		if len(slots) == 0 {
			continue
		}
		group := DayGroup{Day: day}
		for _, slot := range domain.MealTypeOrder() {
			if ms := slots[slot]; len(ms) > 0 {
				group.Slots = append(group.Slots, SlotGroup{Type: slot, Meals: ms})
			}
		}
		out = append(out, group)
	}
	return out
}
