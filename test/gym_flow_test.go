package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymtracker/internal/analytics"
	"github.com/2beens/gymtracker/internal/backup"
	"github.com/2beens/gymtracker/internal/settings"
	"github.com/2beens/gymtracker/internal/templates"
	"github.com/2beens/gymtracker/internal/workouts"
)

func sessionJSON(startedAt time.Time, weight float64) string {
	return fmt.Sprintf(`{
		"name": "Push",
		"startedAt": %q,
		"exercises": [
			{"name": "Bench Press", "sets": [
				{"weight": %g, "reps": 5, "rpe": 8, "completed": true},
				{"weight": %g, "reps": 5, "completed": false}
			]},
			{"name": "Plank", "sets": []}
		]
	}`, startedAt.Format(time.RFC3339), weight, weight)
}

func (s *IntegrationTestSuite) TestGymFlow() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, body := s.do(ctx, "DELETE", "/backup", "")
	require.Equal(t, http.StatusOK, status, string(body))

	var st settings.Settings
	s.getJSON(ctx, "/settings", &st)
	assert.Equal(t, settings.Defaults(), st)

	// finish two sessions
	for _, weight := range []float64{80, 85} {
		status, body = s.do(ctx, "POST", "/workouts", sessionJSON(time.Now().Add(-time.Hour), weight))
		require.Equal(t, http.StatusCreated, status, string(body))
	}

	var list workouts.ListResponse
	s.getJSON(ctx, "/workouts?sort=date-desc", &list)
	require.Equal(t, 2, list.Total)
	require.Len(t, list.Workouts, 2)
	// empty exercises and incomplete sets are not saved
	assert.Len(t, list.Workouts[0].Exercises, 1)
	assert.Len(t, list.Workouts[0].Exercises[0].Sets, 1)
	assert.InDelta(t, 3600, list.Workouts[0].DurationSeconds, 5)

	var summary analytics.SummaryReport
	s.getJSON(ctx, "/analytics/summary?window=all", &summary)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 825.0, summary.TotalVolume)
	assert.Equal(t, 2, summary.TotalSets)

	var records analytics.RecordsReport
	s.getJSON(ctx, "/analytics/records?unit=lbs", &records)
	assert.Equal(t, settings.Pounds, records.Unit)
	require.Len(t, records.Records, 1)
	assert.Equal(t, 187.4, records.Records[0].Weight)

	var streak analytics.StreakReport
	s.getJSON(ctx, "/analytics/streak", &streak)
	assert.Equal(t, 1, streak.CurrentStreak)

	var tmpls []templates.Template
	s.getJSON(ctx, "/templates", &tmpls)
	assert.Len(t, tmpls, 3)

	// export, wipe, then restore
	status, exported := s.do(ctx, "GET", "/backup/export", "")
	require.Equal(t, http.StatusOK, status)
	var doc backup.Document
	require.NoError(t, json.Unmarshal(exported, &doc))
	assert.Len(t, doc.Workouts, 2)
	assert.Equal(t, backup.Version, doc.Version)

	status, _ = s.do(ctx, "DELETE", "/backup", "")
	require.Equal(t, http.StatusOK, status)
	s.getJSON(ctx, "/workouts", &list)
	assert.Equal(t, 0, list.Total)

	status, body = s.do(ctx, "POST", "/backup/import", string(exported))
	require.Equal(t, http.StatusOK, status, string(body))
	var result backup.ImportResult
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, 2, result.Workouts)
	assert.Equal(t, 3, result.Templates)
	assert.True(t, result.SettingsImported)

	var stats backup.Stats
	s.getJSON(ctx, "/backup/stats", &stats)
	assert.Equal(t, 2, stats.Workouts)
	assert.Equal(t, 3, stats.Templates)
}

func (s *IntegrationTestSuite) TestImportRateLimit() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	limited := false
	for i := 0; i < 5 && !limited; i++ {
		status, _ := s.do(ctx, "POST", "/backup/import", `{"version": "2.0"}`)
		switch status {
		case http.StatusTooManyRequests:
			limited = true
		case http.StatusBadRequest:
		default:
			t.Fatalf("unexpected import status: %d", status)
		}
	}
	assert.True(t, limited, "import was never rate limited")
}

func (s *IntegrationTestSuite) TestStatus() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, body := s.do(ctx, "GET", "/status", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"version":"test-version-info","storeBackend":"postgres","storeOk":true}`, string(body))

	resp, err := s.httpClient.Get(fmt.Sprintf("http://%s:%s/metrics", serverHost, metricsPort))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
