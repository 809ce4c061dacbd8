// Package app wires the application together: configuration, logging,
// database pool, services, and the HTTP server lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/gtservice/internal/adapter/postgres"
	"github.com/heartmarshall/gtservice/internal/adapter/postgres/word"
	"github.com/heartmarshall/gtservice/internal/adapter/provider/googletranslate"
	"github.com/heartmarshall/gtservice/internal/config"
	"github.com/heartmarshall/gtservice/internal/service/translation"
	"github.com/heartmarshall/gtservice/internal/transport/middleware"
	"github.com/heartmarshall/gtservice/internal/transport/rest"
)

// Run is the application entry point. It blocks until ctx is canceled or the
// HTTP server fails, then shuts down gracefully.
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

	words := word.New(pool)
	txManager := postgres.NewTxManager(pool)
	fetcher := googletranslate.NewProviderWithURL(cfg.Translator.BaseURL, logger)
	translations := translation.NewService(logger, words, txManager, fetcher)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := newHandler(cfg, logger, translations, words, rateLimiter)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
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

	return nil
}

// newHandler builds the route table and the middleware chain around it.
func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	translations *translation.Service,
	words *word.Repo,
	rateLimiter *middleware.RateLimiter,
) http.Handler {
	wordsHandler := rest.NewWordsHandler(translations, logger)
	healthHandler := rest.NewHealthHandler(words, BuildVersion())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /translations/{word}", wordsHandler.GetTranslation)
	mux.HandleFunc("GET /translations", wordsHandler.ListTranslations)
	mux.HandleFunc("DELETE /translations/{language}/{word}", wordsHandler.DeleteTranslation)
	mux.HandleFunc("GET /healthz", healthHandler.Live)
	mux.HandleFunc("GET /readyz", healthHandler.Ready)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	// A zero limit disables rate limiting.
	if cfg.Server.RateLimitPerMinute > 0 {
		mws = append(mws, rateLimiter.Limit(cfg.Server.RateLimitPerMinute))
	}

	return middleware.Chain(mws...)(mux)
}
