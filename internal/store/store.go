package store

import (
	"context"
	"errors"
)

// Keys of the three documents the tracker keeps.
const (
	WorkoutsKey  = "gym-workouts"
	TemplatesKey = "gym-templates"
	SettingsKey  = "gym-settings"
)

var AllKeys = []string{WorkoutsKey, TemplatesKey, SettingsKey}

var ErrNotFound = errors.New("key not found")

// Store is a flat key-value blob store. Values are opaque bytes (JSON documents
// in practice); a missing key is reported as ErrNotFound.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, keys ...string) error
}
