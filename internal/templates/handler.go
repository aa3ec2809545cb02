package templates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=templates_test

type templatesRepo interface {
	List(ctx context.Context) ([]Template, error)
	Create(ctx context.Context, t Template) error
	Delete(ctx context.Context, id string) error
	Update(ctx context.Context, id string, fn func(*Template)) (*Template, error)
}

type DeleteTemplateResponse struct {
	DeletedID string `json:"deletedId"`
}

type Handler struct {
	repo  templatesRepo
	now   func() time.Time
	newID func() string
}

func NewHandler(repo templatesRepo) *Handler {
	return &Handler{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (handler *Handler) WithClock(now func() time.Time) *Handler {
	handler.now = now
	return handler
}

func (handler *Handler) WithIDGenerator(newID func() string) *Handler {
	handler.newID = newID
	return handler
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/templates", handler.HandleList).Methods("GET", "OPTIONS").Name("list-templates")
	r.HandleFunc("/templates", handler.HandleCreate).Methods("POST", "OPTIONS").Name("create-template")
	r.HandleFunc("/templates/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-template")
	r.HandleFunc("/templates/{id}/duplicate", handler.HandleDuplicate).Methods("POST", "OPTIONS").Name("duplicate-template")
	r.HandleFunc("/templates/{id}/use", handler.HandleUse).Methods("POST", "OPTIONS").Name("use-template")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.list")
	defer span.End()

	list, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("failed to list templates: %s", err)
		http.Error(w, "failed to list templates", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, list, http.StatusOK)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.create")
	defer span.End()

	var t Template
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		log.Tracef("create template, unmarshal json params: %s", err)
		http.Error(w, "invalid template", http.StatusBadRequest)
		return
	}

	t, err := t.Clean()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	t.ID = handler.newID()
	t.CreatedAt = handler.now().UTC()
	t.LastUsed = nil

	if err := handler.repo.Create(ctx, t); err != nil {
		log.Errorf("failed to create template [%s]: %s", t.Name, err)
		http.Error(w, "failed to create template", http.StatusInternalServerError)
		return
	}

	log.Debugf("template [%s] created: %s", t.ID, t.Name)
	pkg.WriteJSON(w, t, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	err := handler.repo.Delete(ctx, id)
	if errors.Is(err, ErrTemplateNotFound) {
		http.Error(w, "template not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to delete template [%s]: %s", id, err)
		http.Error(w, "template not deleted", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, DeleteTemplateResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleDuplicate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.duplicate")
	defer span.End()

	id := mux.Vars(r)["id"]
	list, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("failed to list templates: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var original *Template
	for i := range list {
		if list[i].ID == id {
			original = &list[i]
			break
		}
	}
	if original == nil {
		http.Error(w, "template not found", http.StatusNotFound)
		return
	}

	duplicate := *original
	duplicate.ID = handler.newID()
	duplicate.Name = original.Name + " (Copy)"
	duplicate.Exercises = append([]Exercise{}, original.Exercises...)
	duplicate.CreatedAt = handler.now().UTC()
	duplicate.LastUsed = nil

	if err := handler.repo.Create(ctx, duplicate); err != nil {
		log.Errorf("failed to duplicate template [%s]: %s", id, err)
		http.Error(w, "failed to duplicate template", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, duplicate, http.StatusCreated)
}

// HandleUse marks the template as used now and returns it, so a session can
// be started from it.
func (handler *Handler) HandleUse(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.use")
	defer span.End()

	id := mux.Vars(r)["id"]
	usedAt := handler.now().UTC()
	t, err := handler.repo.Update(ctx, id, func(t *Template) {
		t.LastUsed = &usedAt
	})
	if errors.Is(err, ErrTemplateNotFound) {
		http.Error(w, "template not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to mark template [%s] used: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, t, http.StatusOK)
}
