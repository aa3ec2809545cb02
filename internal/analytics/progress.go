package analytics

import (
	"sort"
	"time"

	"github.com/2beens/gymtracker/internal/workouts"
	"github.com/2beens/gymtracker/pkg"
)

type ProgressPoint struct {
	WorkoutID string    `json:"workoutId"`
	Date      time.Time `json:"date"`
	MaxWeight float64   `json:"maxWeight"`
	Volume    float64   `json:"volume"`
	AvgRPE    float64   `json:"avgRpe"`
	SetCount  int       `json:"setCount"`
}

// ExerciseProgress follows one exercise across workouts, oldest first.
// Only the first occurrence of the exercise in a workout is read.
func ExerciseProgress(ws []workouts.Workout, name string) []ProgressPoint {
	points := []ProgressPoint{}
	for _, w := range Chronological(ws) {
		e, ok := findExercise(w, name)
		if !ok {
			continue
		}

		p := ProgressPoint{
			WorkoutID: w.ID,
			Date:      w.Date,
			SetCount:  len(e.Sets),
		}
		rpeTotal, rated := 0.0, 0
		for i, s := range e.Sets {
			if i == 0 || s.Weight > p.MaxWeight {
				p.MaxWeight = s.Weight
			}
			p.Volume += s.Volume()
			if s.RPE != nil {
				rpeTotal += *s.RPE
				rated++
			}
		}
		p.AvgRPE = pkg.RoundTo(pkg.SafeDiv(rpeTotal, float64(rated)), 1)
		points = append(points, p)
	}
	return points
}

// ExerciseNames lists every distinct exercise name found in the log, sorted.
func ExerciseNames(ws []workouts.Workout) []string {
	seen := map[string]bool{}
	names := []string{}
	for _, w := range ws {
		for _, e := range w.Exercises {
			if e.Name == "" || seen[e.Name] {
				continue
			}
			seen[e.Name] = true
			names = append(names, e.Name)
		}
	}
	sort.Strings(names)
	return names
}

type LastPerformanceResult struct {
	WorkoutID string         `json:"workoutId"`
	Date      time.Time      `json:"date"`
	Sets      []workouts.Set `json:"sets"`
}

// LastPerformance returns the sets of the exercise from the most recent
// workout that contains it.
func LastPerformance(ws []workouts.Workout, name string) (LastPerformanceResult, bool) {
	for _, w := range Recent(ws, -1) {
		if e, ok := findExercise(w, name); ok {
			return LastPerformanceResult{
				WorkoutID: w.ID,
				Date:      w.Date,
				Sets:      e.Sets,
			}, true
		}
	}
	return LastPerformanceResult{}, false
}

func findExercise(w workouts.Workout, name string) (workouts.Exercise, bool) {
	for _, e := range w.Exercises {
		if e.Name == name {
			return e, true
		}
	}
	return workouts.Exercise{}, false
}
