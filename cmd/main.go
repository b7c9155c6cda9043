// Package main provides the CLI entrypoint for the accessibility scanner.
// It wires subcommands (serve, scan, migrate, jwt), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"a11yscanner/internal/config"
	"a11yscanner/pkg/contentsource"
	"a11yscanner/pkg/contentsource/wpapi"
	"a11yscanner/pkg/logger"
	"a11yscanner/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getContentSource returns the configured content source. The postgres
// source reads the content tables of the scanner's own database.
func getContentSource(ctx context.Context, cfg *config.Config, pgsql *postgres.PgSQL) contentsource.Source {
	switch cfg.Scanner.ContentSource {
	case "", "postgres":
		return pgsql
	case "wpapi":
		client, err := wpapi.New(&http.Client{Timeout: cfg.WPAPI.Timeout}, wpapi.Options{
			BaseURL:  cfg.WPAPI.BaseURL,
			Username: cfg.WPAPI.Username,
			Password: cfg.WPAPI.Password,
		})
		if err != nil {
			logger.Fatal(ctx, "could not create wordpress content source", zap.Error(err))
		}
		logger.Info(ctx, "reading content from wordpress", zap.String("baseURL", cfg.WPAPI.BaseURL))

		return client
	default:
		logger.Fatal(ctx, "unknown content source", zap.String("contentSource", cfg.Scanner.ContentSource))

		return nil
	}
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "a11yscanner",
		Short: "Accessibility scanner for site content",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	if err := logger.SetupWithLevel(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not setup logger", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		scanCommand(cfg),
		JWTCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
