// Package app wires configuration, storage, services, and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/daviidy/transpayra-backend/internal/adapter/postgres"
	submissionrepo "github.com/daviidy/transpayra-backend/internal/adapter/postgres/submission"
	"github.com/daviidy/transpayra-backend/internal/auth"
	"github.com/daviidy/transpayra-backend/internal/config"
	"github.com/daviidy/transpayra-backend/internal/service/access"
	"github.com/daviidy/transpayra-backend/internal/service/stats"
	"github.com/daviidy/transpayra-backend/internal/service/submission"
	"github.com/daviidy/transpayra-backend/internal/transport/middleware"
	"github.com/daviidy/transpayra-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds the service graph, and serves HTTP until the context
// is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	subRepo := submissionrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	hasher := auth.NewTokenHasher(cfg.Auth.TokenSalt)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTTTL)

	accessSvc := access.NewService(logger, subRepo, hasher)
	submissionSvc := submission.NewService(logger, subRepo, hasher, txManager, cfg.Submission)
	statsSvc := stats.NewService(logger, subRepo)

	mux := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		Token:      rest.NewTokenHandler(logger),
		Submission: rest.NewSubmissionHandler(submissionSvc, logger),
		Access:     rest.NewAccessHandler(accessSvc, logger),
		Stats:      rest.NewStatsHandler(statsSvc, logger),
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RatePerMinute),
		middleware.Auth(jwtManager),
		middleware.ContributorToken,
	)(mux)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
