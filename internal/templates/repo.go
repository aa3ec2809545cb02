package templates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymtracker/internal/store"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
)

//go:generate mockgen -source=../store/store.go -destination=store_mocks_test.go -package=templates_test

type Repo struct {
	store store.Store
	mutex sync.Mutex
	now   func() time.Time
}

func NewRepo(s store.Store) *Repo {
	return &Repo{
		store: s,
		now:   time.Now,
	}
}

// List returns the stored templates. The defaults are seeded and saved the
// first time, when the key does not exist yet.
func (r *Repo) List(ctx context.Context) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	list, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("count", len(list)))
	return list, nil
}

func (r *Repo) list(ctx context.Context) ([]Template, error) {
	raw, err := r.store.Get(ctx, store.TemplatesKey)
	if errors.Is(err, store.ErrNotFound) {
		defaults := Defaults(r.now().UTC())
		if err := r.save(ctx, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get templates: %w", err)
	}
	return Load(raw), nil
}

func (r *Repo) Create(ctx context.Context, t Template) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	list, err := r.list(ctx)
	if err != nil {
		return err
	}
	return r.save(ctx, append(list, t))
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	list, err := r.list(ctx)
	if err != nil {
		return err
	}
	kept := make([]Template, 0, len(list))
	for _, t := range list {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(list) {
		return ErrTemplateNotFound
	}
	return r.save(ctx, kept)
}

// Update applies fn to the template with the given id and stores the result.
func (r *Repo) Update(ctx context.Context, id string, fn func(*Template)) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	list, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		fn(&list[i])
		if err := r.save(ctx, list); err != nil {
			return nil, err
		}
		updated := list[i]
		return &updated, nil
	}
	return nil, ErrTemplateNotFound
}

// Replace overwrites all templates.
func (r *Repo) Replace(ctx context.Context, list []Template) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.replace")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.save(ctx, list)
}

// Reset deletes the stored templates; the next List seeds the defaults again.
func (r *Repo) Reset(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.reset")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	r.mutex.Lock()
	defer r.mutex.Unlock()
	if err := r.store.Del(ctx, store.TemplatesKey); err != nil {
		return fmt.Errorf("delete templates: %w", err)
	}
	return nil
}

func (r *Repo) save(ctx context.Context, list []Template) error {
	if list == nil {
		list = []Template{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal templates: %w", err)
	}
	if err := r.store.Set(ctx, store.TemplatesKey, raw); err != nil {
		return fmt.Errorf("save templates: %w", err)
	}
	return nil
}
