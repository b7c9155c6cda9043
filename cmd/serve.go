package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"a11yscanner/internal/api"
	"a11yscanner/internal/api/handler/v1handler"
	"a11yscanner/internal/config"
	"a11yscanner/internal/worker"
	"a11yscanner/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorkers(ctx context.Context,
	cfg *config.Config,
	svc services,
	pool *pgxpool.Pool) (*river.Client[pgx.Tx], func(ctx context.Context)) {
	riverClient, err := worker.Start(ctx, pool, svc.coordinator, svc.settings, worker.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}
	logger.Info(ctx, "workers started", zap.Int("maxWorkers", cfg.Workers.MaxWorkers))

	return riverClient, func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			svc := newServices(ctx, cfg, pgsql)

			// workers run on a context that outlives the signal so that
			// in-flight jobs get the shutdown timeout to finish.
			riverClient, stopWorkers := setupWorkers(context.WithoutCancel(ctx), cfg, svc, pgsql.Pool)

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Coordinator: svc.coordinator,
					Settings:    svc.settings,
					Reporter:    svc.reporter,
					Exporter:    svc.exporter,
				},
				RiverClient: riverClient,
				Health:      pgsql,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)
		},
	}

	return cmd
}
