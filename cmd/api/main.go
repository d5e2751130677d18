// Command api runs the companion daemon that the browser extension talks to.
// It serves the session endpoints on a loopback address and persists
// credential, selection, and summary state in a local SQLite database.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clipdigest/internal/config"
	sqliteRepo "clipdigest/internal/infra/adapter/persistence/sqlite"
	"clipdigest/internal/infra/db"
	"clipdigest/internal/infra/summarizer"
	"clipdigest/internal/observability/logging"
	"clipdigest/internal/observability/metrics"
	"clipdigest/internal/observability/tracing"
	"clipdigest/internal/repository"

	sessUC "clipdigest/internal/usecase/session"
	"clipdigest/internal/usecase/summary"

	hhttp "clipdigest/internal/handler/http"
	"clipdigest/internal/handler/http/middleware"
	"clipdigest/internal/handler/http/requestid"
	hsession "clipdigest/internal/handler/http/session"
)

func main() {
	logger := logging.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	shutdownTracing := tracing.Init()
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("failed to shut down tracer provider", slog.Any("error", err))
		}
	}()

	database := initDatabase(logger, cfg.DBPath)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler, err := setupServer(logger, database, cfg, getVersion())
	if err != nil {
		logger.Error("failed to set up server", slog.Any("error", err))
		os.Exit(1)
	}

	runServer(logger, handler, cfg)
}

// initDatabase opens the local store and runs migrations.
func initDatabase(logger *slog.Logger, path string) *sql.DB {
	database := db.Open(path)
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires the summarization pipeline, session controller, routes,
// and middleware chain into the root handler.
func setupServer(logger *slog.Logger, database *sql.DB, cfg *config.Config, version string) (http.Handler, error) {
	var store repository.StateRepository = sqliteRepo.NewStateRepo(database)

	provider, err := summarizer.NewOpenAI(summarizer.Config{
		BaseURL:           cfg.Summarizer.BaseURL,
		Timeout:           cfg.Summarizer.Timeout,
		ResilienceEnabled: cfg.Summarizer.ResilienceEnabled,
	})
	if err != nil {
		return nil, err
	}

	svc := summary.NewService(provider, store, metrics.PipelineRecorder{})
	ctrl := sessUC.NewController(svc, store, metrics.SessionRecorder{})

	mux := http.NewServeMux()
	hsession.Register(mux, ctrl, svc, store)
	mux.Handle("GET /healthz", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	corsConfig, err := loadCORSConfig(logger, cfg.CORSPolicyPath)
	if err != nil {
		return nil, err
	}

	// Apply in reverse order (innermost to outermost).
	var chain http.Handler = mux
	chain = hhttp.LimitRequestBody(cfg.MaxBodyBytes)(chain)
	chain = middleware.CORS(corsConfig)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.MetricsMiddleware(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain, nil
}

// loadCORSConfig reads the CORS policy file when configured, otherwise falls
// back to allowing any extension origin.
func loadCORSConfig(logger *slog.Logger, path string) (middleware.CORSConfig, error) {
	if path == "" {
		cfg := middleware.DefaultCORSConfig()
		cfg.Logger = logger
		logger.Info("CORS: allowing any extension origin")
		return cfg, nil
	}

	cfg, err := middleware.LoadCORSConfig(path)
	if err != nil {
		return middleware.CORSConfig{}, err
	}
	cfg.Logger = logger
	logger.Info("CORS policy loaded",
		slog.String("path", path),
		slog.Int("allowed_origins_count", len(cfg.AllowedOrigins)),
		slog.Bool("allow_extension_origins", cfg.AllowExtensionOrigins))
	return cfg, nil
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.ListenAddr),
			slog.String("db_path", cfg.DBPath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
