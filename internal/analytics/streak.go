package analytics

import (
	"sort"
	"time"

	"github.com/2beens/gymtracker/internal/workouts"
	"github.com/2beens/gymtracker/pkg"
)

// day is a calendar date, compared without clock or zone.
type day struct {
	year  int
	month time.Month
	day   int
}

func dayOf(t time.Time, loc *time.Location) day {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return day{year: y, month: m, day: d}
}

func (d day) time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func daysBetween(later, earlier day) int {
	return int(later.time().Sub(earlier.time()).Hours() / 24)
}

// CurrentStreak counts consecutive calendar days with at least one workout,
// walking back from now. A streak is still alive when the last workout was
// yesterday. Days after now are ignored.
func CurrentStreak(ws []workouts.Workout, now time.Time, loc *time.Location) int {
	today := dayOf(now, loc)

	seen := map[day]bool{}
	var days []day
	for _, w := range ws {
		if w.Date.IsZero() {
			continue
		}
		d := dayOf(w.Date, loc)
		if seen[d] || daysBetween(today, d) < 0 {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].time().After(days[j].time())
	})

	streak := 0
	previous := today
	for _, d := range days {
		if daysBetween(previous, d) > 1 {
			break
		}
		streak++
		previous = d
	}
	return streak
}

// WeeklyFrequency is workouts per week, rounded to one decimal.
func WeeklyFrequency(ws []workouts.Workout, windowWeeks int) float64 {
	if windowWeeks <= 0 {
		return 0
	}
	return pkg.RoundTo(float64(len(ws))/float64(windowWeeks), 1)
}
