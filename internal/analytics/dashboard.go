package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/2beens/gymtracker/internal/workouts"
	"github.com/2beens/gymtracker/pkg"
)

const recentWorkoutsCount = 5

type DayProgress struct {
	Day      string  `json:"day"`
	Date     string  `json:"date"`
	Workouts int     `json:"workouts"`
	Volume   float64 `json:"volume"`
}

type WeekVolume struct {
	Week   string  `json:"week"`
	Volume float64 `json:"volume"`
}

type DashboardStats struct {
	TotalWorkouts      int                `json:"totalWorkouts"`
	TotalVolume        float64            `json:"totalVolume"`
	AvgDurationMinutes float64            `json:"avgDurationMinutes"`
	WeeklyWorkouts     int                `json:"weeklyWorkouts"`
	CurrentStreak      int                `json:"currentStreak"`
	FavoriteExercise   string             `json:"favoriteExercise"`
	RecentWorkouts     []workouts.Workout `json:"recentWorkouts"`
	WeeklyProgress     []DayProgress      `json:"weeklyProgress"`
	MonthlyVolume      []WeekVolume       `json:"monthlyVolume"`
}

// Dashboard builds the home screen overview over the whole workout log.
func Dashboard(ws []workouts.Workout, now time.Time, loc *time.Location) DashboardStats {
	summary := Aggregate(ws)
	stats := DashboardStats{
		TotalWorkouts:      summary.Count,
		TotalVolume:        pkg.Round(summary.TotalVolume),
		AvgDurationMinutes: summary.AvgDurationMinutes,
		CurrentStreak:      CurrentStreak(ws, now, loc),
		FavoriteExercise:   FavoriteExercise(ws),
		RecentWorkouts:     Recent(ws, recentWorkoutsCount),
	}

	weekAgo := now.AddDate(0, 0, -7)
	for _, w := range ws {
		if !w.Date.IsZero() && !w.Date.Before(weekAgo) {
			stats.WeeklyWorkouts++
		}
	}

	volumeByDay := map[day]float64{}
	countByDay := map[day]int{}
	for _, w := range ws {
		if w.Date.IsZero() {
			continue
		}
		d := dayOf(w.Date, loc)
		volumeByDay[d] += w.Volume()
		countByDay[d]++
	}

	today := dayOf(now, loc).time()
	stats.WeeklyProgress = make([]DayProgress, 0, 7)
	for i := 6; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		d := dayOf(date, nil)
		stats.WeeklyProgress = append(stats.WeeklyProgress, DayProgress{
			Day:      date.Weekday().String()[:3],
			Date:     date.Format("2006-01-02"),
			Workouts: countByDay[d],
			Volume:   volumeByDay[d],
		})
	}

	stats.MonthlyVolume = make([]WeekVolume, 0, 4)
	for i := 3; i >= 0; i-- {
		end := today.AddDate(0, 0, -i*7)
		volume := 0.0
		for offset := 0; offset < 7; offset++ {
			volume += volumeByDay[dayOf(end.AddDate(0, 0, -offset), nil)]
		}
		stats.MonthlyVolume = append(stats.MonthlyVolume, WeekVolume{
			Week:   fmt.Sprintf("Week %d", 4-i),
			Volume: volume,
		})
	}

	return stats
}

// FavoriteExercise is the most performed exercise name; the first seen wins
// ties. Empty when there are no exercises.
func FavoriteExercise(ws []workouts.Workout) string {
	counts := map[string]int{}
	favorite, best := "", 0
	var order []string
	for _, w := range ws {
		for _, e := range w.Exercises {
			if _, ok := counts[e.Name]; !ok {
				order = append(order, e.Name)
			}
			counts[e.Name]++
		}
	}
	for _, name := range order {
		if counts[name] > best {
			favorite, best = name, counts[name]
		}
	}
	return favorite
}

// Recent returns up to n workouts, newest first.
func Recent(ws []workouts.Workout, n int) []workouts.Workout {
	sorted := make([]workouts.Workout, len(ws))
	copy(sorted, ws)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
