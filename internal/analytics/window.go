package analytics

import (
	"time"

	"github.com/2beens/gymtracker/internal/workouts"
)

type Window string

const (
	WindowMonth   Window = "1month"
	Window3Months Window = "3months"
	Window6Months Window = "6months"
	WindowYear    Window = "1year"
	WindowAll     Window = "all"

	DefaultWindow = Window3Months
)

// ParseWindow maps a query value to a window. Unknown values mean all time.
func ParseWindow(s string) Window {
	switch w := Window(s); w {
	case WindowMonth, Window3Months, Window6Months, WindowYear:
		return w
	case "":
		return DefaultWindow
	default:
		return WindowAll
	}
}

// Cutoff returns the earliest date included by the window, using calendar
// arithmetic. ok is false for all time.
func (w Window) Cutoff(now time.Time) (cutoff time.Time, ok bool) {
	switch w {
	case WindowMonth:
		return now.AddDate(0, -1, 0), true
	case Window3Months:
		return now.AddDate(0, -3, 0), true
	case Window6Months:
		return now.AddDate(0, -6, 0), true
	case WindowYear:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// Weeks is the week count used for weekly frequency. All time counts as a year.
func (w Window) Weeks() int {
	switch w {
	case WindowMonth:
		return 4
	case Window3Months:
		return 12
	case Window6Months:
		return 24
	default:
		return 52
	}
}

// FilterByWindow keeps the workouts dated at or after the window cutoff.
// For all time (or an unknown window) the input is returned as is.
func FilterByWindow(ws []workouts.Workout, window Window, now time.Time) []workouts.Workout {
	cutoff, ok := window.Cutoff(now)
	if !ok {
		return ws
	}

	filtered := make([]workouts.Workout, 0, len(ws))
	for _, w := range ws {
		if w.Date.IsZero() {
			continue
		}
		if !w.Date.Before(cutoff) {
			filtered = append(filtered, w)
		}
	}
	return filtered
}
