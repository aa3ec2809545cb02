package workouts

import (
	"sort"
	"strings"
)

type CatalogExercise struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	MuscleGroups []string `json:"muscleGroups"`
	Equipment    string   `json:"equipment"`
}

var catalog = []CatalogExercise{
	{ID: "bench-press", Name: "Bench Press", Category: "Chest", MuscleGroups: []string{"Chest", "Triceps", "Shoulders"}, Equipment: "Barbell"},
	{ID: "incline-bench-press", Name: "Incline Bench Press", Category: "Chest", MuscleGroups: []string{"Chest", "Triceps", "Shoulders"}, Equipment: "Barbell"},
	{ID: "dumbbell-flyes", Name: "Dumbbell Flyes", Category: "Chest", MuscleGroups: []string{"Chest"}, Equipment: "Dumbbells"},
	{ID: "push-ups", Name: "Push-ups", Category: "Chest", MuscleGroups: []string{"Chest", "Triceps", "Shoulders"}, Equipment: "Bodyweight"},
	{ID: "deadlift", Name: "Deadlift", Category: "Back", MuscleGroups: []string{"Back", "Glutes", "Hamstrings"}, Equipment: "Barbell"},
	{ID: "pull-ups", Name: "Pull-ups", Category: "Back", MuscleGroups: []string{"Back", "Biceps"}, Equipment: "Pull-up Bar"},
	{ID: "bent-over-row", Name: "Bent-over Row", Category: "Back", MuscleGroups: []string{"Back", "Biceps"}, Equipment: "Barbell"},
	{ID: "lat-pulldown", Name: "Lat Pulldown", Category: "Back", MuscleGroups: []string{"Back", "Biceps"}, Equipment: "Cable Machine"},
	{ID: "squat", Name: "Squat", Category: "Legs", MuscleGroups: []string{"Quadriceps", "Glutes", "Hamstrings"}, Equipment: "Barbell"},
	{ID: "leg-press", Name: "Leg Press", Category: "Legs", MuscleGroups: []string{"Quadriceps", "Glutes"}, Equipment: "Leg Press Machine"},
	{ID: "lunges", Name: "Lunges", Category: "Legs", MuscleGroups: []string{"Quadriceps", "Glutes", "Hamstrings"}, Equipment: "Dumbbells"},
	{ID: "leg-curl", Name: "Leg Curl", Category: "Legs", MuscleGroups: []string{"Hamstrings"}, Equipment: "Leg Curl Machine"},
	{ID: "overhead-press", Name: "Overhead Press", Category: "Shoulders", MuscleGroups: []string{"Shoulders", "Triceps"}, Equipment: "Barbell"},
	{ID: "lateral-raises", Name: "Lateral Raises", Category: "Shoulders", MuscleGroups: []string{"Shoulders"}, Equipment: "Dumbbells"},
	{ID: "rear-delt-flyes", Name: "Rear Delt Flyes", Category: "Shoulders", MuscleGroups: []string{"Shoulders"}, Equipment: "Dumbbells"},
	{ID: "bicep-curls", Name: "Bicep Curls", Category: "Arms", MuscleGroups: []string{"Biceps"}, Equipment: "Dumbbells"},
	{ID: "tricep-dips", Name: "Tricep Dips", Category: "Arms", MuscleGroups: []string{"Triceps"}, Equipment: "Bodyweight"},
	{ID: "hammer-curls", Name: "Hammer Curls", Category: "Arms", MuscleGroups: []string{"Biceps", "Forearms"}, Equipment: "Dumbbells"},
	{ID: "plank", Name: "Plank", Category: "Core", MuscleGroups: []string{"Core"}, Equipment: "Bodyweight"},
	{ID: "crunches", Name: "Crunches", Category: "Core", MuscleGroups: []string{"Core"}, Equipment: "Bodyweight"},
	{ID: "russian-twists", Name: "Russian Twists", Category: "Core", MuscleGroups: []string{"Core"}, Equipment: "Bodyweight"},
}

// Catalog returns the built-in exercises, optionally narrowed to a category
// and/or a case-insensitive name search.
func Catalog(category, search string) []CatalogExercise {
	search = strings.ToLower(strings.TrimSpace(search))
	result := make([]CatalogExercise, 0, len(catalog))
	for _, ex := range catalog {
		if category != "" && !strings.EqualFold(category, ex.Category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(ex.Name), search) {
			continue
		}
		result = append(result, ex)
	}
	return result
}

func CatalogCategories() []string {
	seen := map[string]bool{}
	var categories []string
	for _, ex := range catalog {
		if !seen[ex.Category] {
			seen[ex.Category] = true
			categories = append(categories, ex.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// CategoryFor looks the exercise name up in the catalog, DefaultCategory if unknown.
func CategoryFor(name string) string {
	for _, ex := range catalog {
		if strings.EqualFold(ex.Name, strings.TrimSpace(name)) {
			return ex.Category
		}
	}
	return DefaultCategory
}
