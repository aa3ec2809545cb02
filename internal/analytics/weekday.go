package analytics

import (
	"time"

	"github.com/2beens/gymtracker/internal/workouts"
	"github.com/2beens/gymtracker/pkg"
)

var weekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

type WeekdayStats struct {
	Weekday            string  `json:"weekday"`
	WorkoutCount       int     `json:"workoutCount"`
	AvgVolume          float64 `json:"avgVolume"`
	AvgDurationMinutes float64 `json:"avgDurationMinutes"`
}

// ByWeekday always returns seven entries, Monday first. Dates are read in loc;
// a nil loc means each date's own location.
func ByWeekday(ws []workouts.Workout, loc *time.Location) []WeekdayStats {
	type bucket struct {
		count    int
		volume   float64
		duration float64
	}
	buckets := map[time.Weekday]*bucket{}
	for _, day := range weekdayOrder {
		buckets[day] = &bucket{}
	}

	for _, w := range ws {
		if w.Date.IsZero() {
			continue
		}
		date := w.Date
		if loc != nil {
			date = date.In(loc)
		}
		b := buckets[date.Weekday()]
		b.count++
		b.volume += w.Volume()
		b.duration += w.DurationMinutes()
	}

	stats := make([]WeekdayStats, 0, len(weekdayOrder))
	for _, day := range weekdayOrder {
		b := buckets[day]
		stats = append(stats, WeekdayStats{
			Weekday:            day.String(),
			WorkoutCount:       b.count,
			AvgVolume:          pkg.Round(pkg.SafeDiv(b.volume, float64(b.count))),
			AvgDurationMinutes: pkg.Round(pkg.SafeDiv(b.duration, float64(b.count))),
		})
	}
	return stats
}
