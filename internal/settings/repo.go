package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/gymtracker/internal/store"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
)

//go:generate mockgen -source=../store/store.go -destination=store_mocks_test.go -package=settings_test

type Repo struct {
	store store.Store
}

func NewRepo(s store.Store) *Repo {
	return &Repo{
		store: s,
	}
}

// Get returns the stored settings, or the defaults when none were saved.
func (r *Repo) Get(ctx context.Context) (_ Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.settings.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	raw, err := r.store.Get(ctx, store.SettingsKey)
	if errors.Is(err, store.ErrNotFound) {
		return Defaults(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return Parse(raw), nil
}

func (r *Repo) Save(ctx context.Context, s Settings) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.settings.save")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := r.store.Set(ctx, store.SettingsKey, raw); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
