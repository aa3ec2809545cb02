package analytics

import (
	"sort"
	"time"

	"github.com/2beens/gymtracker/internal/workouts"
)

type PersonalRecord struct {
	ExerciseName string    `json:"exerciseName"`
	Weight       float64   `json:"weight"`
	Reps         int       `json:"reps"`
	Date         time.Time `json:"date"`
	WorkoutID    string    `json:"workoutId"`
}

// PersonalRecords finds the heaviest completed set per exercise name, sorted
// by weight, heaviest first. The first time a weight was lifted is credited.
func PersonalRecords(ws []workouts.Workout) []PersonalRecord {
	records := []PersonalRecord{}
	index := map[string]int{}

	for _, w := range Chronological(ws) {
		for _, e := range w.Exercises {
			for _, s := range e.Sets {
				if !s.Completed {
					continue
				}
				i, ok := index[e.Name]
				if !ok {
					index[e.Name] = len(records)
					records = append(records, PersonalRecord{
						ExerciseName: e.Name,
						Weight:       s.Weight,
						Reps:         s.Reps,
						Date:         w.Date,
						WorkoutID:    w.ID,
					})
					continue
				}
				if s.Weight > records[i].Weight {
					records[i].Weight = s.Weight
					records[i].Reps = s.Reps
					records[i].Date = w.Date
					records[i].WorkoutID = w.ID
				}
			}
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Weight > records[j].Weight
	})
	return records
}
