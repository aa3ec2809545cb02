package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/2beens/gymtracker/internal/settings"
	"github.com/2beens/gymtracker/internal/store"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/internal/templates"
	"github.com/2beens/gymtracker/internal/workouts"
	"github.com/2beens/gymtracker/pkg"
)

//go:generate mockgen -source=../store/store.go -destination=store_mocks_test.go -package=backup_test
//go:generate mockgen -source=$GOFILE -destination=backup_mocks_test.go -package=backup_test

const Version = "1.0"

var ErrInvalidBackup = errors.New("invalid backup")

type Document struct {
	Workouts   []workouts.Workout   `json:"workouts"`
	Templates  []templates.Template `json:"templates"`
	Settings   settings.Settings    `json:"settings"`
	ExportDate time.Time            `json:"exportDate"`
	Version    string               `json:"version"`
}

type ImportResult struct {
	Workouts         int  `json:"workouts"`
	Templates        int  `json:"templates"`
	SettingsImported bool `json:"settingsImported"`
}

type Stats struct {
	Workouts      int     `json:"workouts"`
	Templates     int     `json:"templates"`
	StorageSizeKB float64 `json:"storageSizeKB"`
}

type workoutsLog interface {
	Replace(ctx context.Context, workouts []workouts.Workout) error
	Reset(ctx context.Context) error
}

type templatesList interface {
	Replace(ctx context.Context, list []templates.Template) error
	Reset(ctx context.Context) error
}

type settingsSaver interface {
	Save(ctx context.Context, s settings.Settings) error
}

// Service moves the whole store in and out as one document. Reads go to the
// store directly, writes go through the section repos so they share the
// locks of regular edits.
type Service struct {
	store         store.Store
	workoutsRepo  workoutsLog
	templatesRepo templatesList
	settingsRepo  settingsSaver
	now           func() time.Time
}

func NewService(
	s store.Store,
	workoutsRepo workoutsLog,
	templatesRepo templatesList,
	settingsRepo settingsSaver,
) *Service {
	return &Service{
		store:         s,
		workoutsRepo:  workoutsRepo,
		templatesRepo: templatesRepo,
		settingsRepo:  settingsRepo,
		now:           time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.store.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return raw, nil
}

// Export snapshots all three sections. Missing sections export as empty
// lists and default settings.
func (s *Service) Export(ctx context.Context) (_ *Document, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.backup.export")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	workoutsRaw, err := s.get(ctx, store.WorkoutsKey)
	if err != nil {
		return nil, err
	}
	templatesRaw, err := s.get(ctx, store.TemplatesKey)
	if err != nil {
		return nil, err
	}
	settingsRaw, err := s.get(ctx, store.SettingsKey)
	if err != nil {
		return nil, err
	}

	return &Document{
		Workouts:   workouts.Load(workoutsRaw),
		Templates:  templates.Load(templatesRaw),
		Settings:   settings.Parse(settingsRaw),
		ExportDate: s.now().UTC(),
		Version:    Version,
	}, nil
}

// Import writes every section present in the document, after the same
// defensive parsing used when reading them back. Nothing is written unless
// the whole document is valid.
func (s *Service) Import(ctx context.Context, raw []byte) (_ *ImportResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.backup.import")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(raw), &doc); err != nil || doc == nil {
		return nil, fmt.Errorf("%w: not a json object", ErrInvalidBackup)
	}

	var validationErr error
	workoutsRaw, hasWorkouts := section(doc, "workouts")
	if hasWorkouts && !isArray(workoutsRaw) {
		validationErr = multierr.Append(validationErr, errors.New("workouts must be a list"))
	}
	templatesRaw, hasTemplates := section(doc, "templates")
	if hasTemplates && !isArray(templatesRaw) {
		validationErr = multierr.Append(validationErr, errors.New("templates must be a list"))
	}
	settingsRaw, hasSettings := section(doc, "settings")
	if hasSettings && !isObject(settingsRaw) {
		validationErr = multierr.Append(validationErr, errors.New("settings must be an object"))
	}
	if version, ok := section(doc, "version"); ok {
		var v string
		if err := json.Unmarshal(version, &v); err != nil || v != Version {
			validationErr = multierr.Append(validationErr, fmt.Errorf("unsupported version: %s", version))
		}
	}
	if !hasWorkouts && !hasTemplates && !hasSettings {
		validationErr = multierr.Append(validationErr, errors.New("no workouts, templates or settings"))
	}
	if validationErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBackup, validationErr)
	}

	// workouts go last, so a failed write of another section leaves the
	// log untouched
	result := &ImportResult{}
	if hasSettings {
		if err := s.settingsRepo.Save(ctx, settings.Parse(settingsRaw)); err != nil {
			return nil, fmt.Errorf("import settings: %w", err)
		}
		result.SettingsImported = true
	}
	if hasTemplates {
		parsed := templates.Load(templatesRaw)
		if err := s.templatesRepo.Replace(ctx, parsed); err != nil {
			return nil, fmt.Errorf("import templates: %w", err)
		}
		result.Templates = len(parsed)
	}
	if hasWorkouts {
		parsed := workouts.Load(workoutsRaw)
		if err := s.workoutsRepo.Replace(ctx, parsed); err != nil {
			return nil, fmt.Errorf("import workouts: %w", err)
		}
		result.Workouts = len(parsed)
	}

	log.Debugf("backup imported: %d workouts, %d templates, settings %t", result.Workouts, result.Templates, result.SettingsImported)
	return result, nil
}

// Clear removes every stored section.
func (s *Service) Clear(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.backup.clear")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := s.workoutsRepo.Reset(ctx); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	if err := s.templatesRepo.Reset(ctx); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	if err := s.store.Del(ctx, store.SettingsKey); err != nil {
		return fmt.Errorf("clear store: delete settings: %w", err)
	}
	return nil
}

// Stats counts stored workouts and templates, and the size of both
// documents in kilobytes.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	workoutsRaw, err := s.get(ctx, store.WorkoutsKey)
	if err != nil {
		return nil, err
	}
	templatesRaw, err := s.get(ctx, store.TemplatesKey)
	if err != nil {
		return nil, err
	}

	ws := workouts.Load(workoutsRaw)
	ts := templates.Load(templatesRaw)
	size := sizeOf(workoutsRaw) + sizeOf(templatesRaw)
	return &Stats{
		Workouts:      len(ws),
		Templates:     len(ts),
		StorageSizeKB: pkg.Round(float64(size) / 1024),
	}, nil
}

// an absent document counts as an empty list
func sizeOf(raw []byte) int {
	if raw == nil {
		return len("[]")
	}
	return len(raw)
}

func section(doc map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	raw, ok := doc[name]
	if !ok {
		return nil, false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, false
	}
	return raw, true
}

func isArray(raw json.RawMessage) bool {
	return len(raw) > 0 && raw[0] == '['
}

func isObject(raw json.RawMessage) bool {
	return len(raw) > 0 && raw[0] == '{'
}
