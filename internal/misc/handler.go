package misc

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymtracker/internal/store"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=misc_test

type storeReader interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

type StatusResponse struct {
	Version      string `json:"version"`
	StoreBackend string `json:"storeBackend"`
	StoreOK      bool   `json:"storeOk"`
}

type Handler struct {
	versionInfo  string
	storeBackend string
	store        storeReader
}

func NewHandler(versionInfo, storeBackend string, store storeReader) *Handler {
	return &Handler{
		versionInfo:  versionInfo,
		storeBackend: storeBackend,
		store:        store,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/status", handler.handleStatus).Methods("GET").Name("status")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

// handleStatus reads the settings key to check the store is reachable. A
// missing key still means a healthy store.
func (handler *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.status")
	defer span.End()

	resp := StatusResponse{
		Version:      handler.versionInfo,
		StoreBackend: handler.storeBackend,
		StoreOK:      true,
	}
	status := http.StatusOK

	if _, err := handler.store.Get(ctx, store.SettingsKey); err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Errorf("status check, store read: %s", err)
		resp.StoreOK = false
		status = http.StatusServiceUnavailable
	}

	pkg.WriteJSON(w, resp, status)
}
