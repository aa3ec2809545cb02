package analytics

import (
	"fmt"

	"github.com/2beens/gymtracker/internal/workouts"
)

type InsightType string

const (
	InsightSuccess     InsightType = "success"
	InsightWarning     InsightType = "warning"
	InsightInfo        InsightType = "info"
	InsightAchievement InsightType = "achievement"
)

type Insight struct {
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
}

// Insights turns window metrics into short recommendations.
func Insights(summary Summary, weeklyFrequency, strengthGains float64) []Insight {
	insights := []Insight{}

	switch {
	case weeklyFrequency >= 3:
		insights = append(insights, Insight{
			Type:        InsightSuccess,
			Title:       "Excellent consistency",
			Description: fmt.Sprintf("Average of %.1f workouts per week", weeklyFrequency),
		})
	case weeklyFrequency < 2:
		insights = append(insights, Insight{
			Type:        InsightWarning,
			Title:       "Improve consistency",
			Description: "Try to train at least 2-3 times per week for better results",
		})
	}

	switch {
	case strengthGains > 10:
		insights = append(insights, Insight{
			Type:        InsightSuccess,
			Title:       "Exceptional progress",
			Description: fmt.Sprintf("%.0f%% increase in training volume", strengthGains),
		})
	case strengthGains < -5:
		insights = append(insights, Insight{
			Type:        InsightWarning,
			Title:       "Decreasing volume",
			Description: "Consider gradually increasing weight or reps",
		})
	}

	if summary.AvgDurationMinutes > 90 {
		insights = append(insights, Insight{
			Type:        InsightInfo,
			Title:       "Long workouts",
			Description: "Consider shorter rest periods to train more efficiently",
		})
	}

	if summary.Count >= 50 {
		insights = append(insights, Insight{
			Type:        InsightAchievement,
			Title:       "50+ workouts",
			Description: "You have completed more than 50 workouts",
		})
	}

	return insights
}

type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

const (
	achievementWorkouts      = 10
	achievementVolume        = 10000
	achievementLongSessions  = 5
	achievementLongExercises = 5
)

// Achievements lists the milestones reached by the workouts.
func Achievements(ws []workouts.Workout, summary Summary) []Achievement {
	achievements := []Achievement{}

	if summary.Count >= achievementWorkouts {
		achievements = append(achievements, Achievement{
			ID:          "workouts-10",
			Title:       "Dedicated athlete",
			Description: fmt.Sprintf("%d+ workouts completed", achievementWorkouts),
		})
	}
	if summary.TotalVolume >= achievementVolume {
		achievements = append(achievements, Achievement{
			ID:          "volume-10000",
			Title:       "Heavy lifter",
			Description: fmt.Sprintf("%d+ total volume lifted", achievementVolume),
		})
	}

	longSessions := 0
	for _, w := range ws {
		if len(w.Exercises) >= achievementLongExercises {
			longSessions++
		}
	}
	if longSessions >= achievementLongSessions {
		achievements = append(achievements, Achievement{
			ID:          "complete-sessions",
			Title:       "Complete sessions",
			Description: fmt.Sprintf("%d+ workouts with %d or more exercises", achievementLongSessions, achievementLongExercises),
		})
	}

	return achievements
}
