package workouts

import (
	"sort"
	"strings"
)

const (
	SortDateDesc     = "date-desc"
	SortDateAsc      = "date-asc"
	SortDurationDesc = "duration-desc"
	SortDurationAsc  = "duration-asc"
	SortVolumeDesc   = "volume-desc"
)

type ListParams struct {
	Sort   string
	Search string
	Limit  int
}

// Query searches and sorts a copy of the workouts. Unknown sort keys fall
// back to newest first. Search matches exercise names (case insensitive) or
// the workout date, written as 2006-01-02 or 2/1/2006.
func Query(workouts []Workout, params ListParams) []Workout {
	search := strings.ToLower(strings.TrimSpace(params.Search))
	result := make([]Workout, 0, len(workouts))
	for _, w := range workouts {
		if search == "" || matches(w, search) {
			result = append(result, w)
		}
	}

	var less func(a, b Workout) bool
	switch params.Sort {
	case SortDateAsc:
		less = func(a, b Workout) bool { return a.Date.Before(b.Date) }
	case SortDurationDesc:
		less = func(a, b Workout) bool { return a.DurationSeconds > b.DurationSeconds }
	case SortDurationAsc:
		less = func(a, b Workout) bool { return a.DurationSeconds < b.DurationSeconds }
	case SortVolumeDesc:
		less = func(a, b Workout) bool { return a.Volume() > b.Volume() }
	default:
		less = func(a, b Workout) bool { return a.Date.After(b.Date) }
	}
	sort.SliceStable(result, func(i, j int) bool {
		return less(result[i], result[j])
	})

	if params.Limit > 0 && len(result) > params.Limit {
		result = result[:params.Limit]
	}
	return result
}

func matches(w Workout, search string) bool {
	for _, ex := range w.Exercises {
		if strings.Contains(strings.ToLower(ex.Name), search) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(w.Name), search) {
		return true
	}
	if w.Date.IsZero() {
		return false
	}
	return strings.Contains(w.Date.Format("2006-01-02"), search) ||
		strings.Contains(w.Date.Format("2/1/2006"), search)
}
