package analytics

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=analytics_test

const (
	megabyte = 1024 * 1024
	// reports depend on the clock, keep them for the minute they were built in
	reportCacheExpireSeconds = 60
)

type workoutsSource interface {
	Raw(ctx context.Context) ([]byte, error)
}

// BuildFunc computes one report from the parsed workout log.
type BuildFunc func(ws []workouts.Workout, now time.Time, loc *time.Location) any

// Analyzer serves analytics reports as JSON, memoized by the content of the
// stored workout log, the report name, its params and the current minute.
type Analyzer struct {
	source         workoutsSource
	cache          *freecache.Cache
	loc            *time.Location
	metricsManager *metrics.Manager
}

func NewAnalyzer(
	source workoutsSource,
	cacheSizeMB int,
	loc *time.Location,
	metricsManager *metrics.Manager,
) *Analyzer {
	if loc == nil {
		loc = time.UTC
	}
	a := &Analyzer{
		source:         source,
		loc:            loc,
		metricsManager: metricsManager,
	}
	if cacheSizeMB > 0 {
		a.cache = freecache.NewCache(cacheSizeMB * megabyte)
	}
	return a
}

func (a *Analyzer) Location() *time.Location {
	return a.loc
}

// Workouts loads and parses the stored log.
func (a *Analyzer) Workouts(ctx context.Context) ([]workouts.Workout, error) {
	raw, err := a.source.Raw(ctx)
	if err != nil {
		return nil, err
	}
	return workouts.Load(raw), nil
}

func (a *Analyzer) Report(
	ctx context.Context,
	name, params string,
	now time.Time,
	build BuildFunc,
) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.analytics.report")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	raw, err := a.source.Raw(ctx)
	if err != nil {
		return nil, fmt.Errorf("read workouts: %w", err)
	}

	now = now.In(a.loc)
	key := cacheKey(raw, name, params, now)
	if a.cache != nil {
		if cached, err := a.cache.Get(key); err == nil {
			log.Tracef("analytics report [%s] found in cache", name)
			a.countCache(true)
			return cached, nil
		}
		a.countCache(false)
	}

	report, err := json.Marshal(build(workouts.Load(raw), now, a.loc))
	if err != nil {
		return nil, fmt.Errorf("marshal report %s: %w", name, err)
	}

	if a.cache != nil {
		if err := a.cache.Set(key, report, reportCacheExpireSeconds); err != nil {
			log.Errorf("failed to cache analytics report [%s]: %s", name, err)
		}
	}
	return report, nil
}

func (a *Analyzer) countCache(hit bool) {
	if a.metricsManager == nil {
		return
	}
	if hit {
		a.metricsManager.CounterAnalyticsCacheHits.Inc()
	} else {
		a.metricsManager.CounterAnalyticsCacheMiss.Inc()
	}
}

func cacheKey(raw []byte, name, params string, now time.Time) []byte {
	d := xxhash.New()
	_, _ = d.Write(raw)
	_, _ = d.WriteString("::" + name + "::" + params + "::")
	_, _ = d.WriteString(now.Truncate(time.Minute).Format(time.RFC3339))
	return binary.BigEndian.AppendUint64(nil, d.Sum64())
}
