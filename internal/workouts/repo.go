package workouts

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymtracker/internal/store"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
)

//go:generate mockgen -source=../store/store.go -destination=store_mocks_test.go -package=workouts_test

// Repo keeps all workouts as one JSON document under store.WorkoutsKey.
// Writes are read-modify-write cycles, serialized by the repo mutex.
type Repo struct {
	store store.Store
	mutex sync.Mutex
}

func NewRepo(s store.Store) *Repo {
	return &Repo{
		store: s,
	}
}

// Raw returns the stored document as is; nil when nothing was saved yet.
func (r *Repo) Raw(ctx context.Context) ([]byte, error) {
	raw, err := r.store.Get(ctx, store.WorkoutsKey)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get workouts: %w", err)
	}
	return raw, nil
}

func (r *Repo) List(ctx context.Context) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	raw, err := r.Raw(ctx)
	if err != nil {
		return nil, err
	}
	workouts := Load(raw)
	span.SetAttributes(attribute.Int("count", len(workouts)))
	return workouts, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	workouts, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range workouts {
		if workouts[i].ID == id {
			return &workouts[i], nil
		}
	}
	return nil, ErrWorkoutNotFound
}

func (r *Repo) Add(ctx context.Context, w Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	workouts, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.save(ctx, append(workouts, w))
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	workouts, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]Workout, 0, len(workouts))
	for _, w := range workouts {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(workouts) {
		return ErrWorkoutNotFound
	}
	return r.save(ctx, kept)
}

// Replace overwrites the whole workout log.
func (r *Repo) Replace(ctx context.Context, workouts []Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.replace")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	r.mutex.Lock()
	defer r.mutex.Unlock()
	span.SetAttributes(attribute.Int("count", len(workouts)))
	return r.save(ctx, workouts)
}

// Reset deletes the stored log.
func (r *Repo) Reset(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.reset")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	r.mutex.Lock()
	defer r.mutex.Unlock()
	if err := r.store.Del(ctx, store.WorkoutsKey); err != nil {
		return fmt.Errorf("delete workouts: %w", err)
	}
	return nil
}

func (r *Repo) save(ctx context.Context, workouts []Workout) error {
	raw, err := Serialize(workouts)
	if err != nil {
		return fmt.Errorf("serialize workouts: %w", err)
	}
	if err := r.store.Set(ctx, store.WorkoutsKey, raw); err != nil {
		return fmt.Errorf("save workouts: %w", err)
	}
	return nil
}
