package analytics

import (
	"time"

	"github.com/2beens/gymtracker/internal/workouts"
)

// FullReport bundles every report for one window, as printed by the analyze
// command.
type FullReport struct {
	GeneratedAt  time.Time        `json:"generatedAt"`
	Summary      SummaryReport    `json:"summary"`
	Trend        []TrendPoint     `json:"trend"`
	Distribution []CategoryShare  `json:"distribution"`
	Weekdays     []WeekdayStats   `json:"weekdays"`
	Records      []PersonalRecord `json:"records"`
	Streak       StreakReport     `json:"streak"`
	Insights     InsightsReport   `json:"insights"`
	Dashboard    DashboardStats   `json:"dashboard"`
}

func NewSummaryReport(ws []workouts.Workout, window Window, now time.Time) SummaryReport {
	filtered := FilterByWindow(ws, window, now)
	return SummaryReport{
		Window:          window,
		Summary:         Aggregate(filtered),
		WeeklyFrequency: WeeklyFrequency(filtered, window.Weeks()),
		StrengthGains:   StrengthGains(filtered),
	}
}

func NewInsightsReport(ws []workouts.Workout, window Window, now time.Time) InsightsReport {
	filtered := FilterByWindow(ws, window, now)
	summary := Aggregate(filtered)
	return InsightsReport{
		Window:       window,
		Insights:     Insights(summary, WeeklyFrequency(filtered, window.Weeks()), StrengthGains(filtered)),
		Achievements: Achievements(filtered, summary),
	}
}

// BuildFullReport runs the windowed reports on the window and the rest
// (records, streak, dashboard) on the whole history. Weights stay in the
// stored unit.
func BuildFullReport(ws []workouts.Workout, window Window, now time.Time, loc *time.Location) FullReport {
	filtered := FilterByWindow(ws, window, now)
	return FullReport{
		GeneratedAt:  now,
		Summary:      NewSummaryReport(ws, window, now),
		Trend:        BuildTrend(filtered),
		Distribution: DistributionByCategory(filtered),
		Weekdays:     ByWeekday(filtered, loc),
		Records:      PersonalRecords(ws),
		Streak:       StreakReport{CurrentStreak: CurrentStreak(ws, now, loc)},
		Insights:     NewInsightsReport(ws, window, now),
		Dashboard:    Dashboard(ws, now, loc),
	}
}
