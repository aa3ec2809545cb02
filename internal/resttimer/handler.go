package resttimer

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymtracker/internal/settings"
	"github.com/2beens/gymtracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=resttimer_test

type settingsReader interface {
	Get(ctx context.Context) (settings.Settings, error)
}

type StatusResponse struct {
	State     string `json:"state"`
	Remaining int    `json:"remaining"`
}

// Handler exposes the single rest timer of the tracker. A started timer
// counts down on the server; clients poll its status.
type Handler struct {
	timer    *Timer
	settings settingsReader
	// ticks for a new countdown, nil means one per second
	newTicks func() <-chan time.Time

	mutex     sync.Mutex
	countdown *Countdown
}

func NewHandler(settingsReader settingsReader) *Handler {
	return &Handler{
		timer:    New(),
		settings: settingsReader,
	}
}

func (handler *Handler) WithTicks(newTicks func() <-chan time.Time) *Handler {
	handler.newTicks = newTicks
	return handler
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/timer", handler.HandleStatus).Methods("GET", "OPTIONS").Name("timer-status")
	r.HandleFunc("/timer/start", handler.HandleStart).Methods("POST", "OPTIONS").Name("timer-start")
	r.HandleFunc("/timer/pause", handler.HandlePause).Methods("POST", "OPTIONS").Name("timer-pause")
	r.HandleFunc("/timer/resume", handler.HandleResume).Methods("POST", "OPTIONS").Name("timer-resume")
	r.HandleFunc("/timer", handler.HandleCancel).Methods("DELETE", "OPTIONS").Name("timer-cancel")
}

func (handler *Handler) status() StatusResponse {
	return StatusResponse{
		State:     handler.timer.State().String(),
		Remaining: handler.timer.Remaining(),
	}
}

func (handler *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	pkg.WriteJSON(w, handler.status(), http.StatusOK)
}

// HandleStart starts the timer for ?seconds=, or for the default rest time
// from the settings.
func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	var seconds int
	if secondsStr := r.URL.Query().Get("seconds"); secondsStr != "" {
		s, err := strconv.Atoi(secondsStr)
		if err != nil || s < 0 {
			http.Error(w, "error, seconds NaN", http.StatusBadRequest)
			return
		}
		seconds = s
	} else {
		s, err := handler.settings.Get(r.Context())
		if err != nil {
			log.Errorf("rest timer, failed to get settings: %s", err)
			http.Error(w, "failed to get settings", http.StatusInternalServerError)
			return
		}
		seconds = s.DefaultRestTime
	}

	handler.mutex.Lock()
	defer handler.mutex.Unlock()

	if err := handler.timer.Start(seconds); err != nil {
		writeTransitionErr(w, err)
		return
	}
	handler.stopCountdown()

	var ticks <-chan time.Time
	if handler.newTicks != nil {
		ticks = handler.newTicks()
	}
	handler.countdown = StartCountdown(context.Background(), CountdownParams{
		Timer: handler.timer,
		Ticks: ticks,
		OnExpire: func() {
			log.Debugf("rest timer expired after %d seconds", seconds)
		},
	})

	log.Tracef("rest timer started: %d seconds", seconds)
	pkg.WriteJSON(w, handler.status(), http.StatusOK)
}

func (handler *Handler) HandlePause(w http.ResponseWriter, r *http.Request) {
	if err := handler.timer.Pause(); err != nil {
		writeTransitionErr(w, err)
		return
	}
	pkg.WriteJSON(w, handler.status(), http.StatusOK)
}

func (handler *Handler) HandleResume(w http.ResponseWriter, r *http.Request) {
	if err := handler.timer.Resume(); err != nil {
		writeTransitionErr(w, err)
		return
	}
	pkg.WriteJSON(w, handler.status(), http.StatusOK)
}

func (handler *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	handler.mutex.Lock()
	defer handler.mutex.Unlock()

	handler.timer.Cancel()
	handler.stopCountdown()
	pkg.WriteJSON(w, handler.status(), http.StatusOK)
}

// Stop ends a running countdown, the timer keeps its state.
func (handler *Handler) Stop() {
	handler.mutex.Lock()
	defer handler.mutex.Unlock()
	handler.stopCountdown()
}

func (handler *Handler) stopCountdown() {
	if handler.countdown != nil {
		handler.countdown.Stop()
		handler.countdown = nil
	}
}

func writeTransitionErr(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidTransition) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	log.Errorf("rest timer: %s", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
