package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/catalog"
	"github.com/2beens/gymlog/internal/clock"
	"github.com/2beens/gymlog/internal/config"
	"github.com/2beens/gymlog/internal/db"
	"github.com/2beens/gymlog/internal/middleware"
	"github.com/2beens/gymlog/internal/plans"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/internal/training"
	"github.com/2beens/gymlog/pkg"
)

const maxRequestBodyBytes = 1 << 20

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config *config.Config
	dbPool *pgxpool.Pool
	clock  clock.Clock

	redisClient  *redis.Client
	sessionStore *auth.SessionStore
	catalog      *catalog.CachedRepo

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()

	// stale session cleanup
	cleanupCancel context.CancelFunc
	cleanupDone   chan struct{}
}

type NewServerParams struct {
	Config                  *config.Config
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if err := db.ApplySchema(ctx, dbPool); err != nil {
		dbPool.Close()
		return nil, err
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.NewRegistry("gymlog", pgxpoolCollector)
	metricsManager := metrics.NewManager("gymlog", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gymlog-service")
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	cfg := params.Config
	return &Server{
		config: cfg,
		dbPool: dbPool,
		clock:  clock.New(clock.LoadZone(cfg.ReferenceTimezone, clock.DefaultZoneName)),

		redisClient: rdb,
		sessionStore: auth.NewSessionStore(
			time.Duration(cfg.SessionTokenTTLHours)*time.Hour,
			rdb,
		),
		catalog: catalog.NewCachedRepo(
			catalog.NewRepo(dbPool),
			cfg.CatalogCacheSizeMB,
			cfg.CatalogCacheTTLSeconds,
		),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymlog-router"))

	catalog.NewHandler(s.catalog).SetupRoutes(r)
	plans.NewHandler(plans.NewRepo(s.dbPool)).SetupRoutes(r)

	trainingService := training.NewService(
		training.NewPgStore(s.dbPool),
		s.catalog,
		s.clock,
		s.metricsManager,
	)
	training.NewHandler(trainingService).SetupRoutes(r)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteResponseBytes(w, pkg.ContentType.Text, []byte("ok"), http.StatusOK)
	}).Methods("GET").Name("health")

	// all the rest - unhandled paths
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.sessionStore, "/health")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		"main-router",
		s.config.MutationsRateLimitPerMin,
		s.metricsManager,
	))
	r.Use(middleware.LimitAndDrainRequest(maxRequestBodyBytes))

	return r
}

func (s *Server) metricsRouterSetup() *mux.Router {
	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	return metricsRouter
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: s.metricsRouterSetup(),
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

	if s.config.CleanupEnabled {
		s.startCleanup(ctx)
	} else {
		log.Warnln("stale session cleanup disabled")
	}

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) startCleanup(ctx context.Context) {
	cleanupCtx, cancel := context.WithCancel(ctx)
	s.cleanupCancel = cancel
	s.cleanupDone = make(chan struct{})

	scheduler := training.NewScheduler(
		training.NewCleaner(training.NewPgStore(s.dbPool), s.clock),
		s.clock,
		s.metricsManager,
	)
	go func() {
		defer close(s.cleanupDone)
		scheduler.Run(cleanupCtx)
	}()
}

func (s *Server) stopCleanup() {
	if s.cleanupCancel == nil {
		return
	}
	s.cleanupCancel()
	<-s.cleanupDone
	log.Traceln("cleanup scheduler stopped")
}

func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var err error
	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown http server: %w", shutdownErr))
		}
		log.Warnln("server shut down")
	}

	// no pass may run against a closed pool
	s.stopCleanup()

	if s.metricsHttpServer != nil {
		if shutdownErr := s.metricsHttpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown metrics http server: %w", shutdownErr))
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if closeErr := s.redisClient.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close redis client: %w", closeErr))
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

	return err
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
