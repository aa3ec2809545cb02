package settings

import (
	"context"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymtracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=settings_test

type settingsRepo interface {
	Get(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
}

type Handler struct {
	repo settingsRepo
}

func NewHandler(repo settingsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/settings", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-settings")
	r.HandleFunc("/settings", handler.HandleSave).Methods("PUT", "OPTIONS").Name("save-settings")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	s, err := handler.repo.Get(r.Context())
	if err != nil {
		log.Errorf("failed to get settings: %s", err)
		http.Error(w, "failed to get settings", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, s, http.StatusOK)
}

// HandleSave stores the sent settings. Omitted or invalid fields take their
// default value.
func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Errorf("save settings, read body: %s", err)
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}
	if len(body) == 0 {
		http.Error(w, "error, settings empty", http.StatusBadRequest)
		return
	}

	s := Parse(body)
	if err := handler.repo.Save(r.Context(), s); err != nil {
		log.Errorf("failed to save settings: %s", err)
		http.Error(w, "failed to save settings", http.StatusInternalServerError)
		return
	}

	log.Debugf("settings saved: unit %s, rest %ds", s.WeightUnit, s.DefaultRestTime)
	pkg.WriteJSON(w, s, http.StatusOK)
}
