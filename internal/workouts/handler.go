package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	List(ctx context.Context) ([]Workout, error)
	Get(ctx context.Context, id string) (*Workout, error)
	Add(ctx context.Context, w Workout) error
	Delete(ctx context.Context, id string) error
}

type DeleteWorkoutResponse struct {
	DeletedID string `json:"deletedId"`
}

type ListResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type Handler struct {
	repo           workoutsRepo
	metricsManager *metrics.Manager
	now            func() time.Time
	newID          func() string
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
		now:            time.Now,
		newID:          uuid.NewString,
	}
}

// WithClock replaces the clock used to stamp finished sessions.
func (handler *Handler) WithClock(now func() time.Time) *Handler {
	handler.now = now
	return handler
}

func (handler *Handler) WithIDGenerator(newID func() string) *Handler {
	handler.newID = newID
	return handler
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts", handler.HandleFinish).Methods("POST", "OPTIONS").Name("finish-workout")
	r.HandleFunc("/workouts", handler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
	r.HandleFunc("/exercises/catalog", handler.HandleCatalog).Methods("GET", "OPTIONS").Name("exercise-catalog")
}

func (handler *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.finish")
	defer span.End()

	var session Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Tracef("finish workout, unmarshal json params: %s", err)
		http.Error(w, "invalid workout session", http.StatusBadRequest)
		return
	}

	workout, err := session.Finalize(handler.newID(), handler.now())
	if err != nil {
		log.Tracef("finish workout: %s", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Add(ctx, workout); err != nil {
		log.Errorf("failed to save workout [%s]: %s", workout.ID, err)
		http.Error(w, "failed to save workout", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterWorkoutsSaved.Inc()
	}

	log.Debugf("workout [%s] saved: %d exercises, %d sets", workout.ID, len(workout.Exercises), workout.CompletedSetCount())
	pkg.WriteJSON(w, workout, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 0 {
			http.Error(w, "error, limit NaN", http.StatusBadRequest)
			return
		}
		limit = l
	}

	workouts, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("failed to list workouts: %s", err)
		http.Error(w, "failed to list workouts", http.StatusInternalServerError)
		return
	}

	result := Query(workouts, ListParams{
		Sort:   r.URL.Query().Get("sort"),
		Search: r.URL.Query().Get("q"),
		Limit:  limit,
	})

	pkg.WriteJSON(w, ListResponse{
		Workouts: result,
		Total:    len(workouts),
	}, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	workout, err := handler.repo.Get(ctx, id)
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to get workout [%s]: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	err := handler.repo.Delete(ctx, id)
	if errors.Is(err, ErrWorkoutNotFound) {
		log.Debugf("workout [%s] not found", id)
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to delete workout [%s]: %s", id, err)
		http.Error(w, "workout not deleted", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterWorkoutsDeleted.Inc()
	}

	pkg.WriteJSON(w, DeleteWorkoutResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	pkg.WriteJSON(w, Catalog(
		r.URL.Query().Get("category"),
		r.URL.Query().Get("q"),
	), http.StatusOK)
}
