// Package app wires configuration, adapters, services and transport into a
// running process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/readify-app/readify-backend/internal/adapter/chain"
	"github.com/readify-app/readify-backend/internal/adapter/postgres"
	quizrepo "github.com/readify-app/readify-backend/internal/adapter/postgres/quiz"
	logrepo "github.com/readify-app/readify-backend/internal/adapter/postgres/readinglog"
	rewardrepo "github.com/readify-app/readify-backend/internal/adapter/postgres/reward"
	userrepo "github.com/readify-app/readify-backend/internal/adapter/postgres/user"
	"github.com/readify-app/readify-backend/internal/adapter/quizgen"
	"github.com/readify-app/readify-backend/internal/auth"
	"github.com/readify-app/readify-backend/internal/config"
	"github.com/readify-app/readify-backend/internal/service/readinglog"
	"github.com/readify-app/readify-backend/internal/service/reward"
	"github.com/readify-app/readify-backend/internal/service/user"
	"github.com/readify-app/readify-backend/internal/transport/middleware"
	"github.com/readify-app/readify-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects the
// adapters, builds the services and serves HTTP until ctx is cancelled.
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
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	ledger, err := chain.New(cfg.Chain, logger)
	if err != nil {
		return fmt.Errorf("connect chain: %w", err)
	}
	defer ledger.Close() //nolint:errcheck

	anthropicClient := anthropic.NewClient(option.WithAPIKey(cfg.Quiz.APIKey))
	generator := quizgen.New(anthropicClient, cfg.Quiz, logger)

	logs := logrepo.New(pool)
	quizzes := quizrepo.New(pool)
	rewards := rewardrepo.New(pool)
	users := userrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	rewardSvc := reward.NewService(logger, logs, rewards, users, ledger)
	logSvc := readinglog.NewService(logger, logs, quizzes, users, ledger, generator, rewardSvc, tx)
	userSvc := user.NewService(logger, users)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	router := rest.NewRouter(
		rest.NewLogHandler(logSvc, logger),
		rest.NewAdminHandler(logSvc, rewardSvc, logger),
		rest.NewRewardHandler(rewardSvc, logger),
		rest.NewUserHandler(userSvc, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
	)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMinute),
		middleware.Auth(jwtManager),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
