package workouts

import (
	"errors"
	"time"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrEmptyWorkout    = errors.New("workout has no completed sets")
)

const DefaultCategory = "Other"

type Set struct {
	Weight    float64  `json:"weight"`
	Reps      int      `json:"reps"`
	RPE       *float64 `json:"rpe,omitempty"`
	Completed bool     `json:"completed"`
}

func (s Set) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

type Exercise struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Sets     []Set  `json:"sets"`
	Notes    string `json:"notes,omitempty"`
}

func (e Exercise) CompletedSets() []Set {
	completed := make([]Set, 0, len(e.Sets))
	for _, s := range e.Sets {
		if s.Completed {
			completed = append(completed, s)
		}
	}
	return completed
}

// Workout is a finished, persisted training session.
// DurationSeconds is the canonical duration unit.
type Workout struct {
	ID              string     `json:"id"`
	Name            string     `json:"name,omitempty"`
	Date            time.Time  `json:"date"`
	DurationSeconds int        `json:"duration"`
	Exercises       []Exercise `json:"exercises"`

	// cached by older clients, only used when no set detail is present
	TotalVolume *float64 `json:"totalVolume,omitempty"`
	TotalSets   *int     `json:"totalSets,omitempty"`
}

type VolumeSource int

const (
	VolumeFromSets VolumeSource = iota
	VolumeFromCache
)

func (s VolumeSource) String() string {
	switch s {
	case VolumeFromCache:
		return "cache"
	default:
		return "sets"
	}
}

// HasSetDetail tells if any exercise of the workout carries at least one set.
func (w Workout) HasSetDetail() bool {
	for _, e := range w.Exercises {
		if len(e.Sets) > 0 {
			return true
		}
	}
	return false
}

// VolumeOf returns the workout volume, recomputed from completed sets.
// The cached total is used only when the workout has no set detail at all.
func VolumeOf(w Workout) (float64, VolumeSource) {
	if !w.HasSetDetail() && w.TotalVolume != nil {
		return *w.TotalVolume, VolumeFromCache
	}

	volume := 0.0
	for _, e := range w.Exercises {
		for _, s := range e.Sets {
			if s.Completed {
				volume += s.Volume()
			}
		}
	}
	return volume, VolumeFromSets
}

func (w Workout) Volume() float64 {
	v, _ := VolumeOf(w)
	return v
}

// CompletedSetCount follows the same cached fallback rule as VolumeOf.
func (w Workout) CompletedSetCount() int {
	if !w.HasSetDetail() && w.TotalSets != nil {
		return *w.TotalSets
	}
	count := 0
	for _, e := range w.Exercises {
		for _, s := range e.Sets {
			if s.Completed {
				count++
			}
		}
	}
	return count
}

func (w Workout) DurationMinutes() float64 {
	return float64(w.DurationSeconds) / 60
}

// HasExercise reports whether an exercise with the exact name was performed.
func (w Workout) HasExercise(name string) bool {
	for _, e := range w.Exercises {
		if e.Name == name {
			return true
		}
	}
	return false
}
