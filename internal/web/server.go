package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/fitdash/fitdash/internal/backend"
	"github.com/fitdash/fitdash/internal/config"
	"github.com/fitdash/fitdash/internal/instrumentation"
	"github.com/fitdash/fitdash/internal/middleware"
	"github.com/fitdash/fitdash/internal/session"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config         *config.Config
	apiClient      *backend.Client
	sessionManager *session.Manager
	templates      *Templates
	redisClient    *redis.Client

	instr        *instrumentation.Instrumentation
	promRegistry *prometheus.Registry
}

func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	instr := instrumentation.NewInstrumentationWithRegisterer("fitdash", "web", promRegistry)
	instr.GaugeLifeSignal.Set(0)

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   time.Minute,
	}
	apiClient := backend.NewClient(cfg.APIBaseURL, tracedHttpClient, instr)

	var redisClient *redis.Client
	var sessionStore session.Store
	if cfg.RedisHost != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr: net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			DB:   0, // use default DB
		})
		if status := redisClient.Ping(ctx); status.Err() != nil {
			log.Errorf("--> failed to ping redis: %s", status.Err())
		} else {
			log.Debugf("redis ping: %s", status.Val())
		}
		sessionStore = session.NewRedisStore(redisClient, session.DefaultTTL)
	} else {
		log.Warnln("redis host not set, sessions kept in memory only")
		sessionStore = session.NewMemoryStore(session.DefaultTTL)
	}

	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	return &Server{
		config:         cfg,
		apiClient:      apiClient,
		sessionManager: session.NewManager(sessionStore, cfg.Environment == "production"),
		templates:      templates,
		redisClient:    redisClient,
		instr:          instr,
		promRegistry:   promRegistry,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitdash-router"))

	r.HandleFunc("/", s.handleIndex).Methods("GET")
	r.HandleFunc("/login", s.handleLoginPage).Methods("GET")
	r.HandleFunc("/register", s.handleRegisterPage).Methods("GET")
	r.HandleFunc("/register", s.handleRegister).Methods("POST")
	r.HandleFunc("/logout", s.handleLogout).Methods("POST")

	loginHandler := http.Handler(http.HandlerFunc(s.handleLogin))
	if s.redisClient != nil && s.config.LoginRateLimitAllowedPerMin > 0 {
		loginHandler = middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			"login",
			s.config.LoginRateLimitAllowedPerMin,
		)(loginHandler)
	}
	r.Handle("/login", loginHandler).Methods("POST")

	app := r.PathPrefix("/app").Subrouter()
	app.HandleFunc("", s.handleDashboard).Methods("GET")
	app.HandleFunc("/workouts", s.handleWorkouts).Methods("GET")
	app.HandleFunc("/workouts/new", s.handleWorkoutNewPage).Methods("GET")
	app.HandleFunc("/workouts/new", s.handleWorkoutCreate).Methods("POST")
	app.HandleFunc("/workouts/{id}", s.handleWorkoutDetail).Methods("GET")
	app.HandleFunc("/workouts/{id}/delete", s.handleWorkoutDelete).Methods("POST")
	app.HandleFunc("/exercises", s.handleExercises).Methods("GET")
	app.HandleFunc("/exercises/new", s.handleExerciseNewPage).Methods("GET")
	app.HandleFunc("/exercises/new", s.handleExerciseCreate).Methods("POST")
	app.HandleFunc("/exercises/{id}", s.handleExerciseDetail).Methods("GET")
	app.HandleFunc("/exercises/{id}/media", s.handleExerciseAddMedia).Methods("POST")
	app.HandleFunc("/splits", s.handleSplits).Methods("GET")
	app.HandleFunc("/splits/new", s.handleSplitNewPage).Methods("GET")
	app.HandleFunc("/splits/new", s.handleSplitCreate).Methods("POST")
	app.HandleFunc("/splits/{id}", s.handleSplitDetail).Methods("GET")
	app.HandleFunc("/splits/{id}/activate", s.handleSplitActivate).Methods("POST")
	app.HandleFunc("/splits/{id}/deactivate", s.handleSplitDeactivate).Methods("POST")
	app.HandleFunc("/nutrition", s.handleNutrition).Methods("GET")
	app.HandleFunc("/nutrition", s.handleNutritionSave).Methods("POST")
	app.HandleFunc("/analytics", s.handleAnalytics).Methods("GET")
	app.HandleFunc("/planner", s.handlePlanner).Methods("GET")
	app.HandleFunc("/planner/generate", s.handlePlannerGenerate).Methods("POST")
	app.HandleFunc("/ai", s.handleAITools).Methods("GET")
	app.HandleFunc("/ai/coaching", s.handleAICoaching).Methods("POST")
	app.HandleFunc("/ai/explain", s.handleAIExplainWorkout).Methods("POST")
	app.HandleFunc("/ai/plan", s.handleAIWorkoutPlan).Methods("POST")
	app.HandleFunc("/ai/overload", s.handleAIOverload).Methods("POST")
	app.HandleFunc("/ai/split", s.handleAIGenerateSplit).Methods("POST")
	app.HandleFunc("/ai/split/save", s.handleAISplitSave).Methods("POST")
	app.HandleFunc("/ai/motivation/reset", s.handleMotivationReset).Methods("POST")
	app.HandleFunc("/settings", s.handleSettings).Methods("GET")
	app.HandleFunc("/settings/health", s.handleSettingsHealth).Methods("POST")
	app.HandleFunc("/settings/validate", s.handleSettingsValidate).Methods("POST")
	app.HandleFunc("/sidebar", s.handleSidebarToggle).Methods("POST")

	r.Use(middleware.PanicRecovery(s.instr))
	r.Use(middleware.RequestID())
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.instr))
	r.Use(middleware.RouteGuard())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	csrfProtect := csrf.Protect(
		[]byte(s.config.CSRFAuthKey),
		csrf.Secure(s.config.Environment == "production"),
		csrf.Path("/"),
	)

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      csrfProtect(router),
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
	metricsAddr := net.JoinHostPort(
		s.config.PrometheusMetricsHost,
		s.config.PrometheusMetricsPort,
	)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("fitdash service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.instr.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")
	s.instr.GaugeLifeSignal.Set(0)

	var closeErrors error
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			closeErrors = multierr.Append(closeErrors, err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); !ok {
		log.Warnln("sentry flush timed out")
	}

	ctx, timeoutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			closeErrors = multierr.Append(closeErrors, err)
		}
	}
	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			closeErrors = multierr.Append(closeErrors, err)
		}
	}

	log.Warnln("server shut down")
	return closeErrors
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.instr.GaugeRequests.Add(1)
	case http.StateClosed:
		s.instr.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
