package analytics

import (
	"github.com/2beens/gymtracker/internal/workouts"
	"github.com/2beens/gymtracker/pkg"
)

type Summary struct {
	Count               int     `json:"count"`
	TotalVolume         float64 `json:"totalVolume"`
	AvgDurationMinutes  float64 `json:"avgDurationMinutes"`
	TotalSets           int     `json:"totalSets"`
	AvgVolumePerWorkout float64 `json:"avgVolumePerWorkout"`
	// workouts whose volume came from a cached total instead of their sets
	CachedVolumeWorkouts int `json:"cachedVolumeWorkouts"`
}

// Aggregate sums volume, duration and completed sets over the workouts.
// TotalVolume is exact; only the averages are rounded.
func Aggregate(ws []workouts.Workout) Summary {
	s := Summary{Count: len(ws)}
	if len(ws) == 0 {
		return s
	}

	durationSeconds := 0
	for _, w := range ws {
		volume, source := workouts.VolumeOf(w)
		if source == workouts.VolumeFromCache {
			s.CachedVolumeWorkouts++
		}
		s.TotalVolume += volume
		s.TotalSets += w.CompletedSetCount()
		durationSeconds += w.DurationSeconds
	}

	s.AvgDurationMinutes = pkg.Round(float64(durationSeconds) / 60 / float64(s.Count))
	s.AvgVolumePerWorkout = pkg.Round(s.TotalVolume / float64(s.Count))
	return s
}
