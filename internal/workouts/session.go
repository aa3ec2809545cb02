package workouts

import (
	"math"
	"strings"
	"time"
)

// Session is a workout in progress, as sent by the client when it is finished.
type Session struct {
	Name      string     `json:"name,omitempty"`
	StartedAt time.Time  `json:"startedAt"`
	Exercises []Exercise `json:"exercises"`
}

// Finalize turns the session into a persistable workout: incomplete sets are
// dropped, then exercises left without sets. ErrEmptyWorkout is returned if
// nothing remains.
func (s Session) Finalize(id string, finishedAt time.Time) (Workout, error) {
	startedAt := s.StartedAt
	if startedAt.IsZero() || startedAt.After(finishedAt) {
		startedAt = finishedAt
	}

	exercises := make([]Exercise, 0, len(s.Exercises))
	for _, ex := range s.Exercises {
		ex.Name = strings.TrimSpace(ex.Name)
		if ex.Name == "" {
			continue
		}
		completed := make([]Set, 0, len(ex.Sets))
		for _, set := range ex.Sets {
			if !set.Completed {
				continue
			}
			set.Weight = clampAmount(set.Weight)
			set.Reps = min(max(set.Reps, 0), maxCount)
			set.RPE = clampRPE(set.RPE)
			completed = append(completed, set)
		}
		if len(completed) == 0 {
			continue
		}
		ex.Sets = completed
		if strings.TrimSpace(ex.Category) == "" {
			ex.Category = CategoryFor(ex.Name)
		}
		exercises = append(exercises, ex)
	}

	if len(exercises) == 0 {
		return Workout{}, ErrEmptyWorkout
	}

	return Workout{
		ID:              id,
		Name:            strings.TrimSpace(s.Name),
		Date:            startedAt,
		DurationSeconds: int(math.Round(finishedAt.Sub(startedAt).Seconds())),
		Exercises:       exercises,
	}, nil
}
