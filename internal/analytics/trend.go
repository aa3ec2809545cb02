package analytics

import (
	"sort"
	"time"

	"github.com/2beens/gymtracker/internal/workouts"
	"github.com/2beens/gymtracker/pkg"
)

// TrendPoint is one workout in a chart series. AvgRPE is 0 for workouts
// without any rated set, so the series stays dense.
type TrendPoint struct {
	WorkoutID       string    `json:"workoutId"`
	Date            time.Time `json:"date"`
	Volume          float64   `json:"volume"`
	AvgWeight       float64   `json:"avgWeight"`
	DurationMinutes float64   `json:"durationMinutes"`
	AvgRPE          float64   `json:"avgRpe"`
	ExerciseCount   int       `json:"exerciseCount"`
	SetCount        int       `json:"setCount"`
}

// Chronological returns a copy of the workouts sorted by date, oldest first.
// Equal dates keep their stored order.
func Chronological(ws []workouts.Workout) []workouts.Workout {
	sorted := make([]workouts.Workout, len(ws))
	copy(sorted, ws)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

func BuildTrend(ws []workouts.Workout) []TrendPoint {
	points := make([]TrendPoint, 0, len(ws))
	for _, w := range Chronological(ws) {
		points = append(points, TrendPoint{
			WorkoutID:       w.ID,
			Date:            w.Date,
			Volume:          w.Volume(),
			AvgWeight:       pkg.RoundTo(avgWeight(w), 1),
			DurationMinutes: pkg.Round(w.DurationMinutes()),
			AvgRPE:          pkg.RoundTo(avgRPE(w), 1),
			ExerciseCount:   len(w.Exercises),
			SetCount:        w.CompletedSetCount(),
		})
	}
	return points
}

// avgWeight is the mean over exercises of each exercise's mean set weight.
// An exercise without sets still counts, as 0.
func avgWeight(w workouts.Workout) float64 {
	if len(w.Exercises) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range w.Exercises {
		if len(e.Sets) == 0 {
			continue
		}
		exerciseTotal := 0.0
		for _, s := range e.Sets {
			exerciseTotal += s.Weight
		}
		sum += exerciseTotal / float64(len(e.Sets))
	}
	return sum / float64(len(w.Exercises))
}

func avgRPE(w workouts.Workout) float64 {
	total, rated := 0.0, 0
	for _, e := range w.Exercises {
		for _, s := range e.Sets {
			if s.RPE != nil {
				total += *s.RPE
				rated++
			}
		}
	}
	return pkg.SafeDiv(total, float64(rated))
}
