package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/medcloud/rxdex/internal/catalog"
	"github.com/medcloud/rxdex/internal/catalog/source"
	"github.com/medcloud/rxdex/internal/config"
	dbRedis "github.com/medcloud/rxdex/internal/db/redis"
	logpkg "github.com/medcloud/rxdex/internal/logger"
	"github.com/medcloud/rxdex/internal/metrics"
	chiTransport "github.com/medcloud/rxdex/internal/transport/chi"
	healthuc "github.com/medcloud/rxdex/internal/usecase/health"
	searchuc "github.com/medcloud/rxdex/internal/usecase/search"
	"github.com/medcloud/rxdex/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting rxdex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_source", cfg.Catalog.Source),
	)

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Build the snapshot source
	src, cleanup, err := buildSource(cfg.Catalog, logger)
	if err != nil {
		logger.Fatal("Failed to create catalog source", zap.Error(err))
	}
	defer cleanup()

	// One-time blocking catalog load. A failure is remembered, not retried:
	// the server still starts and reports unavailable until restarted.
	store := catalog.Load(context.Background(), src, logger)

	// The snapshot source is only needed during load.
	cleanup()

	searchSvc := searchuc.New(store, store.Index(), cfg.Search.FieldWeights, cfg.Search.FuzzyRatio).
		WithMaxPageSize(cfg.Search.MaxPageSize)
	healthSvc := healthuc.New(store)

	server := chiTransport.NewServer(searchSvc, store, healthSvc, logger).
		WithDefaultPageSize(cfg.Search.DefaultPageSize)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildSource creates the configured snapshot source. The returned cleanup
// releases the source's connections and is safe to call more than once.
func buildSource(cfg config.CatalogConfig, logger *zap.Logger) (source.Source, func(), error) {
	switch cfg.Source {
	case "file":
		return source.NewFile(cfg.Path), func() {}, nil
	case "redis":
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Redis.Addrs,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("create redis store: %w", err)
		}

		timeout := time.Duration(cfg.Redis.ReadinessTimeoutSec) * time.Second
		if err := store.WaitForReady(context.Background(), timeout); err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("redis not ready: %w", err)
		}
		logger.Info("Connected to redis", zap.Strings("addrs", cfg.Redis.Addrs))

		closed := false
		cleanup := func() {
			if !closed {
				closed = true
				store.Close()
			}
		}
		return source.NewRedis(store, cfg.Redis.Key), cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
