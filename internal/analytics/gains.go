package analytics

import (
	"github.com/2beens/gymtracker/internal/workouts"
	"github.com/2beens/gymtracker/pkg"
)

// StrengthGains compares the mean volume of the newer half of the workouts
// with the older half, in whole percent. With an odd count the newer half
// gets the extra workout.
func StrengthGains(ws []workouts.Workout) float64 {
	n := len(ws)
	if n < 2 {
		return 0
	}

	sorted := Chronological(ws)
	older := sorted[:n/2]
	newer := sorted[n/2:]

	olderAvg := meanVolume(older)
	if olderAvg == 0 {
		return 0
	}
	return pkg.Round((meanVolume(newer) - olderAvg) / olderAvg * 100)
}

func meanVolume(ws []workouts.Workout) float64 {
	total := 0.0
	for _, w := range ws {
		total += w.Volume()
	}
	return pkg.SafeDiv(total, float64(len(ws)))
}
