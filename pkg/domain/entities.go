// Package domain defines the persistent entities, enumerations, and
// collection keys used by coachcore.
package domain

// CollectionKey names one slot in the durable keyspace. Each collection is
// persisted under its own key as a JSON array; the trainer profile is a
// single JSON object.
type CollectionKey string

// Keyspace slots. The values double as bus topic names.
const (
	// KeyStudents holds the student roster.
	KeyStudents CollectionKey = "students"
	// KeyExercises holds the exercise catalog.
	KeyExercises CollectionKey = "exercises"
	// KeyExerciseCategories holds exercise category definitions.
	KeyExerciseCategories CollectionKey = "exerciseCategories"
	// KeyExerciseTypes holds the open, user-editable set of category types.
	KeyExerciseTypes CollectionKey = "exerciseTypes"
	// KeyMeals holds the meal catalog.
	KeyMeals CollectionKey = "meals"
	// KeySupplements holds supplement and vitamin entries.
	KeySupplements CollectionKey = "supplements"
	// KeySupplementCategories holds supplement category definitions.
	KeySupplementCategories CollectionKey = "supplementCategories"
	// KeyTrainerProfile holds the singleton trainer profile object.
	KeyTrainerProfile CollectionKey = "trainerProfile"
)

// CollectionKeys lists every known keyspace slot in canonical order. Snapshot
// export iterates this list; snapshot import refuses keys outside it.
func CollectionKeys() []CollectionKey {
	return []CollectionKey{
		KeyStudents,
		KeyExercises,
		KeyExerciseCategories,
		KeyExerciseTypes,
		KeyMeals,
		KeySupplements,
		KeySupplementCategories,
		KeyTrainerProfile,
	}
}

// MealType enumerates the daily meal slots in their fixed display order.
type MealType string

// Canonical meal slots. Ordering is positional (breakfast first), never
// locale collation.
const (
	MealBreakfast      MealType = "breakfast"
	MealMorningSnack   MealType = "morning_snack"
	MealLunch          MealType = "lunch"
	MealAfternoonSnack MealType = "afternoon_snack"
	MealDinner         MealType = "dinner"
	MealEveningSnack   MealType = "evening_snack"
)

// MealTypeOrder returns the fixed daily ordering of meal slots.
func MealTypeOrder() []MealType {
	return []MealType{
		MealBreakfast,
		MealMorningSnack,
		MealLunch,
		MealAfternoonSnack,
		MealDinner,
		MealEveningSnack,
	}
}

// Weekday enumerates the days of the week. The week starts on Saturday to
// match the application's locale.
type Weekday string

// Canonical weekdays in display order.
const (
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
)

// WeekdayOrder returns the fixed week ordering, Saturday first.
func WeekdayOrder() []Weekday {
	return []Weekday{Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday}
}

// SupplementKind discriminates supplement entries from vitamin entries stored
// in the same collection.
type SupplementKind string

const (
	KindSupplement SupplementKind = "supplement"
	KindVitamin    SupplementKind = "vitamin"
)

// TrainingDays is the number of per-student training day slots (days 1-5).
const TrainingDays = 5

// Student is a trainee record. The id lists are loose references: a listed
// exercise, meal, or supplement id may no longer resolve against its catalog
// and consumers must drop unresolved ids at read time.
type Student struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	HeightCM    float64 `json:"height_cm"`
	WeightKG    float64 `json:"weight_kg"`
	Image       string  `json:"image,omitempty"`
	PaymentPaid bool    `json:"payment_paid"`

	ExerciseIDs    []int64         `json:"exercise_ids"`
	DayExerciseIDs map[int][]int64 `json:"day_exercise_ids,omitempty"`
	MealIDs        []int64         `json:"meal_ids"`
	SupplementIDs  []int64         `json:"supplement_ids"`
	VitaminIDs     []int64         `json:"vitamin_ids"`

	// Progress is derived from assignment completeness, stored for display.
	Progress int `json:"progress"`
}

// Exercise is one catalog entry. CategoryID is a loose reference into the
// exercise category collection.
type Exercise struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CategoryID int64  `json:"category_id"`
	Muscle     string `json:"muscle,omitempty"`
	Target     string `json:"target,omitempty"`
}

// ExerciseCategory groups exercises. Type is free text drawn from the
// user-editable exercise type set.
type ExerciseCategory struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// ExerciseType is one entry of the open category-type set.
type ExerciseType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Meal is one diet catalog entry, placed on a weekday and a meal slot.
type Meal struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Type        MealType `json:"type"`
	Day         Weekday  `json:"day"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Supplement is a supplement or vitamin entry, discriminated by Kind.
type Supplement struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	Kind     SupplementKind `json:"type"`
	Category string         `json:"category,omitempty"`
	Dosage   string         `json:"dosage,omitempty"`
	Timing   string         `json:"timing,omitempty"`
}

// SupplementCategory groups supplement entries.
type SupplementCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TrainerProfile is the singleton trainer record. It is created lazily on
// first write and overwritten in place thereafter.
type TrainerProfile struct {
	Name    string `json:"name"`
	GymName string `json:"gym_name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}
