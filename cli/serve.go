package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/handlers"
	"github.com/Dosada05/swiss-tournament/routes"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var initSchema bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, opts, initSchema)
		},
	}

	cmd.Flags().BoolVar(&initSchema, "init-schema", false, "Create missing tables before serving")
	return cmd
}

func runServer(ctx context.Context, opts *rootOptions, initSchema bool) error {
	logger := opts.logger
	cfg := opts.cfg

	hubCtx, cancelHub := context.WithCancel(context.Background())
	defer cancelHub()
	wsHub := brackets.NewHub(logger)
	go wsHub.Run(hubCtx)
	logger.Info("WebSocket Hub started")

	a, err := openApp(ctx, opts, wsHub)
	if err != nil {
		logger.Error("failed to initialize application", slog.Any("error", err))
		return err
	}
	defer a.Close()
	logger.Info("database connection established", slog.String("driver", cfg.DatabaseDriver))

	if initSchema {
		if err := db.EnsureSchema(ctx, a.db, cfg.DatabaseDriver); err != nil {
			logger.Error("failed to create schema", slog.Any("error", err))
			return err
		}
		logger.Info("schema ready")
	}

	router := chi.NewRouter()
	routes.SetupRoutes(
		router,
		routes.RouterConfig{Logger: logger, AllowedOrigins: cfg.CORSAllowedOrigins},
		handlers.NewTournamentHandler(a.tournament, a.snapshots),
		handlers.NewWebSocketHandler(wsHub, cfg.CORSAllowedOrigins),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			return err
		}
		logger.Info("server stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
	cancelHub()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("failed to force close server", slog.Any("error", closeErr))
		}
		return err
	}
	logger.Info("server shutdown complete")
	return nil
}
