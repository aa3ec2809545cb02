package analytics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymtracker/internal/settings"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/internal/workouts"
	"github.com/2beens/gymtracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=analytics_test

type reportBuilder interface {
	Report(ctx context.Context, name, params string, now time.Time, build BuildFunc) ([]byte, error)
	Workouts(ctx context.Context) ([]workouts.Workout, error)
}

type settingsReader interface {
	Get(ctx context.Context) (settings.Settings, error)
}

type SummaryReport struct {
	Window          Window  `json:"window"`
	WeeklyFrequency float64 `json:"weeklyFrequency"`
	StrengthGains   float64 `json:"strengthGains"`
	Summary
}

type StreakReport struct {
	CurrentStreak int `json:"currentStreak"`
}

type InsightsReport struct {
	Window       Window        `json:"window"`
	Insights     []Insight     `json:"insights"`
	Achievements []Achievement `json:"achievements"`
}

type RecordsReport struct {
	Unit    settings.WeightUnit `json:"unit"`
	Records []PersonalRecord    `json:"records"`
}

type Handler struct {
	analyzer reportBuilder
	settings settingsReader
	now      func() time.Time
}

func NewHandler(analyzer reportBuilder, settingsRepo settingsReader) *Handler {
	return &Handler{
		analyzer: analyzer,
		settings: settingsRepo,
		now:      time.Now,
	}
}

func (handler *Handler) WithClock(now func() time.Time) *Handler {
	handler.now = now
	return handler
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/analytics/summary", handler.HandleSummary).Methods("GET", "OPTIONS").Name("analytics-summary")
	r.HandleFunc("/analytics/trend", handler.HandleTrend).Methods("GET", "OPTIONS").Name("analytics-trend")
	r.HandleFunc("/analytics/distribution", handler.HandleDistribution).Methods("GET", "OPTIONS").Name("analytics-distribution")
	r.HandleFunc("/analytics/weekdays", handler.HandleWeekdays).Methods("GET", "OPTIONS").Name("analytics-weekdays")
	r.HandleFunc("/analytics/records", handler.HandleRecords).Methods("GET", "OPTIONS").Name("analytics-records")
	r.HandleFunc("/analytics/streak", handler.HandleStreak).Methods("GET", "OPTIONS").Name("analytics-streak")
	r.HandleFunc("/analytics/insights", handler.HandleInsights).Methods("GET", "OPTIONS").Name("analytics-insights")
	r.HandleFunc("/dashboard", handler.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")
	r.HandleFunc("/exercises", handler.HandleExerciseNames).Methods("GET", "OPTIONS").Name("exercise-names")
	r.HandleFunc("/exercises/{name}/progress", handler.HandleExerciseProgress).Methods("GET", "OPTIONS").Name("exercise-progress")
	r.HandleFunc("/exercises/{name}/last", handler.HandleLastPerformance).Methods("GET", "OPTIONS").Name("exercise-last-performance")
}

func (handler *Handler) writeReport(w http.ResponseWriter, r *http.Request, name, params string, build BuildFunc) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics."+name)
	defer span.End()

	report, err := handler.analyzer.Report(ctx, name, params, handler.now(), build)
	if err != nil {
		log.Errorf("failed to build analytics report [%s]: %s", name, err)
		http.Error(w, "failed to build report", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, report, http.StatusOK)
}

func windowParam(r *http.Request) Window {
	return ParseWindow(r.URL.Query().Get("window"))
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	window := windowParam(r)
	handler.writeReport(w, r, "summary", string(window), func(ws []workouts.Workout, now time.Time, _ *time.Location) any {
		return NewSummaryReport(ws, window, now)
	})
}

func (handler *Handler) HandleTrend(w http.ResponseWriter, r *http.Request) {
	window := windowParam(r)
	handler.writeReport(w, r, "trend", string(window), func(ws []workouts.Workout, now time.Time, _ *time.Location) any {
		return BuildTrend(FilterByWindow(ws, window, now))
	})
}

func (handler *Handler) HandleDistribution(w http.ResponseWriter, r *http.Request) {
	window := windowParam(r)
	handler.writeReport(w, r, "distribution", string(window), func(ws []workouts.Workout, now time.Time, _ *time.Location) any {
		return DistributionByCategory(FilterByWindow(ws, window, now))
	})
}

func (handler *Handler) HandleWeekdays(w http.ResponseWriter, r *http.Request) {
	window := windowParam(r)
	handler.writeReport(w, r, "weekdays", string(window), func(ws []workouts.Workout, now time.Time, loc *time.Location) any {
		return ByWeekday(FilterByWindow(ws, window, now), loc)
	})
}

// HandleRecords lists personal records, optionally converted to the unit
// given by the unit param. Stored weights are in the unit set in settings.
func (handler *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 0 {
			http.Error(w, "error, limit NaN", http.StatusBadRequest)
			return
		}
		limit = l
	}

	storedUnit := settings.DefaultWeightUnit
	if handler.settings != nil {
		s, err := handler.settings.Get(r.Context())
		if err != nil {
			log.Errorf("failed to get settings for records: %s", err)
			http.Error(w, "failed to build report", http.StatusInternalServerError)
			return
		}
		storedUnit = s.WeightUnit
	}

	unit := storedUnit
	if unitStr := r.URL.Query().Get("unit"); unitStr != "" {
		u, ok := settings.ParseWeightUnit(unitStr)
		if !ok {
			http.Error(w, "error, unknown unit", http.StatusBadRequest)
			return
		}
		unit = u
	}

	params := strconv.Itoa(limit) + "::" + string(storedUnit) + "::" + string(unit)
	handler.writeReport(w, r, "records", params, func(ws []workouts.Workout, _ time.Time, _ *time.Location) any {
		records := PersonalRecords(ws)
		if limit > 0 && len(records) > limit {
			records = records[:limit]
		}
		for i := range records {
			records[i].Weight = pkg.RoundTo(settings.ConvertWeight(records[i].Weight, storedUnit, unit), 1)
		}
		return RecordsReport{
			Unit:    unit,
			Records: records,
		}
	})
}

func (handler *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	handler.writeReport(w, r, "streak", "", func(ws []workouts.Workout, now time.Time, loc *time.Location) any {
		return StreakReport{CurrentStreak: CurrentStreak(ws, now, loc)}
	})
}

func (handler *Handler) HandleInsights(w http.ResponseWriter, r *http.Request) {
	window := windowParam(r)
	handler.writeReport(w, r, "insights", string(window), func(ws []workouts.Workout, now time.Time, _ *time.Location) any {
		return NewInsightsReport(ws, window, now)
	})
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	handler.writeReport(w, r, "dashboard", "", func(ws []workouts.Workout, now time.Time, loc *time.Location) any {
		return Dashboard(ws, now, loc)
	})
}

func (handler *Handler) HandleExerciseNames(w http.ResponseWriter, r *http.Request) {
	handler.writeReport(w, r, "exercise-names", "", func(ws []workouts.Workout, _ time.Time, _ *time.Location) any {
		return ExerciseNames(ws)
	})
}

func (handler *Handler) HandleExerciseProgress(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}
	handler.writeReport(w, r, "exercise-progress", name, func(ws []workouts.Workout, _ time.Time, _ *time.Location) any {
		return ExerciseProgress(ws, name)
	})
}

func (handler *Handler) HandleLastPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.lastPerformance")
	defer span.End()

	name := mux.Vars(r)["name"]
	if name == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}

	ws, err := handler.analyzer.Workouts(ctx)
	if err != nil {
		log.Errorf("failed to get workouts for last performance of [%s]: %s", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	last, ok := LastPerformance(ws, name)
	if !ok {
		http.Error(w, "exercise not performed yet", http.StatusNotFound)
		return
	}
	pkg.WriteJSON(w, last, http.StatusOK)
}
