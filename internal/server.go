package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/gymtracker/internal/analytics"
	"github.com/2beens/gymtracker/internal/backup"
	"github.com/2beens/gymtracker/internal/config"
	"github.com/2beens/gymtracker/internal/db"
	"github.com/2beens/gymtracker/internal/middleware"
	"github.com/2beens/gymtracker/internal/misc"
	"github.com/2beens/gymtracker/internal/resttimer"
	"github.com/2beens/gymtracker/internal/settings"
	"github.com/2beens/gymtracker/internal/store"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/internal/templates"
	"github.com/2beens/gymtracker/internal/workouts"
)

const (
	importRateLimitKey = "backup-import"
	// unread request body left over by a handler that is still drained
	maxDrainBytes = 256 << 10
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	store       store.Store
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter

	timerHandler *resttimer.Handler

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	PostgresUser            string
	PostgresPassword        string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	s := &Server{
		config:      cfg,
		versionInfo: params.VersionInfo,
	}

	// redis serves the import rate limiter even when it is not the store
	if cfg.RedisHost != "" {
		s.redisClient = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})
		rdbStatus := s.redisClient.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
		s.rateLimiter = redis_rate.NewLimiter(s.redisClient)
	}

	var poolCollector prometheus.Collector
	switch cfg.StoreBackend {
	case config.StoreBackendRedis:
		s.store = store.NewRedisStore(s.redisClient)
	case config.StoreBackendPostgres:
		dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBUser:         params.PostgresUser,
			DBPassword:     params.PostgresPassword,
			TracingEnabled: params.HoneycombTracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}
		pgStore := store.NewPostgresStore(dbPool)
		if err := pgStore.Migrate(ctx); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("migrate db: %w", err)
		}
		s.dbPool = dbPool
		s.store = pgStore
		poolCollector = db.NewPoolCollector(dbPool, cfg.PostgresDBName)
	default:
		log.Warnln("using in-memory store, data is lost on restart")
		s.store = store.NewMemoryStore()
	}
	log.Debugf("store backend: %s", cfg.StoreBackend)

	s.promRegistry = metrics.SetupPrometheus(poolCollector)
	s.metricsManager = metrics.NewManager("gymtracker", "main", s.promRegistry)
	s.metricsManager.GaugeLifeSignal.Set(0)

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gymtracker", s.redisClient)
	if err != nil {
		return nil, err
	}
	s.otelShutdown = otelShutdown

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymtracker-router"))

	settingsRepo := settings.NewRepo(s.store)
	settings.NewHandler(settingsRepo).SetupRoutes(r)

	s.timerHandler = resttimer.NewHandler(settingsRepo)
	s.timerHandler.SetupRoutes(r)

	workoutsRepo := workouts.NewRepo(s.store)
	workouts.NewHandler(workoutsRepo, s.metricsManager).SetupRoutes(r)

	templatesRepo := templates.NewRepo(s.store)
	templates.NewHandler(templatesRepo).SetupRoutes(r)

	analyzer := analytics.NewAnalyzer(
		workoutsRepo,
		s.config.AnalyticsCacheSizeMB,
		s.config.Location(),
		s.metricsManager,
	)
	analytics.NewHandler(analyzer, settingsRepo).SetupRoutes(r)

	backupHandler := backup.NewHandler(backup.NewService(s.store, workoutsRepo, templatesRepo, settingsRepo), s.metricsManager)
	if s.rateLimiter != nil {
		backupHandler.WithImportMiddleware(middleware.RateLimit(
			s.rateLimiter,
			importRateLimitKey,
			s.config.ImportRateLimitPerMin,
			s.metricsManager,
		))
	}
	backupHandler.SetupRoutes(r)

	misc.NewHandler(s.versionInfo, s.config.StoreBackend, s.store).SetupRoutes(r)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest(maxDrainBytes))

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
		}
		log.Warnln("metrics server shut down")
	}

	if s.timerHandler != nil {
		s.timerHandler.Stop()
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
