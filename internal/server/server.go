package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/venue-tv-service/internal/app/assignments"
	appdisplays "github.com/preston-bernstein/venue-tv-service/internal/app/displays"
	appgames "github.com/preston-bernstein/venue-tv-service/internal/app/games"
	appprefs "github.com/preston-bernstein/venue-tv-service/internal/app/preferences"
	appteams "github.com/preston-bernstein/venue-tv-service/internal/app/teams"
	"github.com/preston-bernstein/venue-tv-service/internal/config"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/autoassign"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/hotness"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/locks"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/relevance"
	httpserver "github.com/preston-bernstein/venue-tv-service/internal/http"
	"github.com/preston-bernstein/venue-tv-service/internal/http/handlers"
	"github.com/preston-bernstein/venue-tv-service/internal/logging"
	"github.com/preston-bernstein/venue-tv-service/internal/metrics"
	"github.com/preston-bernstein/venue-tv-service/internal/poller"
	"github.com/preston-bernstein/venue-tv-service/internal/providers"
	"github.com/preston-bernstein/venue-tv-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	state         store.StateStore
	services      services
	reports       reportComponents
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

type services struct {
	games       *appgames.Service
	teams       *appteams.Service
	displays    *appdisplays.Service
	preferences *appprefs.Service
	assignments *assignments.Service
}

// New constructs a server with default provider, store and poller wiring.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithProvider(ctx, cfg, logger, nil)
}

func newServerWithProvider(ctx context.Context, cfg config.Config, logger *slog.Logger, provider providers.GameProvider) (*Server, error) {
	return newServerWithMetrics(ctx, cfg, logger, provider, nil)
}

func newServerWithMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger, provider providers.GameProvider, recorder *metrics.Recorder) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	} else {
		provider = providers.NewRetryingProvider(provider, logger, recorder, normalizeProviderName(cfg.Provider, provider), 0, 0)
	}

	st, err := buildState(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	rc, err := buildReports(cfg, logger)
	if err != nil {
		_ = st.state.Close()
		return nil, err
	}

	svcs := buildServices(cfg, st, rc, logger, recorder)
	plr := poller.New(provider, svcs.games, svcs.assignments, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, svcs, st, rc, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		state:         st.state,
		services:      svcs,
		reports:       rc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildServices(cfg config.Config, st stateComponents, rc reportComponents, logger *slog.Logger, recorder *metrics.Recorder) services {
	lm := locks.NewManager(cfg.Engine.AutoLockDuration)
	prefs := appprefs.NewService(st.state, nil)
	return services{
		games:       appgames.NewService(st.games),
		teams:       appteams.NewService(nil),
		displays:    appdisplays.NewService(st.state, st.games, lm, nil),
		preferences: prefs,
		assignments: assignments.NewService(assignments.Deps{
			Games:       st.games,
			Displays:    st.state,
			Preferences: prefs,
			Hotness:     hotness.NewScorer(hotness.DefaultConfig()),
			Relevance:   relevance.NewScorer(relevance.DefaultConfig()),
			Engine: autoassign.NewEngine(autoassign.Config{
				HotnessDelta:    cfg.Engine.HotnessDelta,
				OverrideHotness: cfg.Engine.OverrideHotness,
			}, lm),
			Locks:     lm,
			Publisher: st.publisher,
			Reports:   rc.cycleWriter(),
			Logger:    logger,
			Metrics:   recorder,
		}),
	}
}

func buildHTTPServer(cfg config.Config, svcs services, st stateComponents, rc reportComponents, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(handlers.Deps{
		Games:       svcs.games,
		Teams:       svcs.teams,
		Displays:    svcs.displays,
		Preferences: svcs.preferences,
		Assignments: svcs.assignments,
		Reports:     rc.store,
		Status:      statusFn,
		Store:       st.state,
		Logger:      logger,
	})
	admin := handlers.NewAdminHandler(svcs.assignments, cfg.AdminToken, logger)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	router := httpserver.NewRouter(handler, admin, logger, recorder)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller, pruner and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.reports.pruner.Start()
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	s.reports.pruner.Stop()

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.state != nil {
		if err := s.state.Close(); err != nil {
			logging.Warn(s.logger, "state store close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
