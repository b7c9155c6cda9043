// Package worker runs the background jobs of the scanner on River: full scans
// driven server-side and single item rescans.
package worker

import (
	"context"
	"fmt"
	"time"

	"a11yscanner/internal/config"
	"a11yscanner/internal/scanner"
	"a11yscanner/internal/settings"
	"a11yscanner/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// DefaultRateLimitBackoff is how long a rate limited job sleeps when the
// content source did not say how long to wait.
const DefaultRateLimitBackoff = time.Minute

// Options configure the River client that works scan jobs.
type Options struct {
	// MaxWorkers is the number of jobs worked concurrently.
	MaxWorkers int
	// RateLimitBackoff is the snooze applied to rate limited jobs.
	RateLimitBackoff time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:       cfg.Workers.MaxWorkers,
		RateLimitBackoff: DefaultRateLimitBackoff,
	}
}

// Workers registers the scan workers.
func Workers(coordinator scanner.Coordinator, settings settings.Service, options Options) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewFullScanWorker(coordinator, settings, options.RateLimitBackoff))
	river.AddWorker(workers, NewRescanContentWorker(coordinator, options.RateLimitBackoff))

	return workers
}

// Start creates and starts a River client working the scan jobs.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	coordinator scanner.Coordinator,
	settings settings.Service,
	options Options) (*river.Client[pgx.Tx], error) {
	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: Workers(coordinator, settings, options),
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
