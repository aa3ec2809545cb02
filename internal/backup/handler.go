package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=backup_test

const maxImportSize = 10 << 20

type backupService interface {
	Export(ctx context.Context) (*Document, error)
	Import(ctx context.Context, raw []byte) (*ImportResult, error)
	Clear(ctx context.Context) error
	Stats(ctx context.Context) (*Stats, error)
}

type Handler struct {
	service        backupService
	metricsManager *metrics.Manager
	// wraps the import route, used for rate limiting
	importMiddleware mux.MiddlewareFunc
}

func NewHandler(service backupService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) WithImportMiddleware(mw mux.MiddlewareFunc) *Handler {
	handler.importMiddleware = mw
	return handler
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/backup/export", handler.HandleExport).Methods("GET", "OPTIONS").Name("backup-export")
	r.HandleFunc("/backup/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("backup-stats")
	r.HandleFunc("/backup", handler.HandleClear).Methods("DELETE", "OPTIONS").Name("backup-clear")

	var importHandler http.Handler = http.HandlerFunc(handler.HandleImport)
	if handler.importMiddleware != nil {
		importHandler = handler.importMiddleware(importHandler)
	}
	r.Handle("/backup/import", importHandler).Methods("POST", "OPTIONS").Name("backup-import")
}

func (handler *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	doc, err := handler.service.Export(r.Context())
	if err != nil {
		log.Errorf("failed to export backup: %s", err)
		http.Error(w, "failed to export", http.StatusInternalServerError)
		return
	}

	docBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Errorf("failed to marshal backup: %s", err)
		http.Error(w, "failed to export", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("gym-tracker-backup-%s.json", doc.ExportDate.Format("2006-01-02"))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, docBytes, http.StatusOK)
}

func (handler *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize+1))
	if err != nil {
		log.Errorf("import backup, read body: %s", err)
		handler.countImport("error")
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}
	if len(body) > maxImportSize {
		handler.countImport("invalid")
		http.Error(w, "backup too large", http.StatusRequestEntityTooLarge)
		return
	}

	result, err := handler.service.Import(r.Context(), body)
	if errors.Is(err, ErrInvalidBackup) {
		log.Debugf("import backup rejected: %s", err)
		handler.countImport("invalid")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if err != nil {
		log.Errorf("failed to import backup: %s", err)
		handler.countImport("error")
		http.Error(w, "failed to import", http.StatusInternalServerError)
		return
	}

	handler.countImport("ok")
	pkg.WriteJSON(w, result, http.StatusOK)
}

func (handler *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	if err := handler.service.Clear(r.Context()); err != nil {
		log.Errorf("failed to clear store: %s", err)
		http.Error(w, "failed to clear data", http.StatusInternalServerError)
		return
	}
	log.Warnf("all stored data cleared")
	pkg.WriteTextResponseOK(w, "cleared")
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := handler.service.Stats(r.Context())
	if err != nil {
		log.Errorf("failed to get backup stats: %s", err)
		http.Error(w, "failed to get stats", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, stats, http.StatusOK)
}

func (handler *Handler) countImport(result string) {
	if handler.metricsManager != nil {
		handler.metricsManager.CounterImports.WithLabelValues(result).Inc()
	}
}
