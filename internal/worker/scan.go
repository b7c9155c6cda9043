package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"a11yscanner/internal/scanner"
	"a11yscanner/internal/settings"
	"a11yscanner/pkg/contentsource"
	"a11yscanner/pkg/logger"
	"a11yscanner/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// FullScanWorker drives a complete scan from start to the last batch in a
// single job. Request fields left empty are filled from the stored scanner
// settings when the job runs.
type FullScanWorker struct {
	river.WorkerDefaults[scanner.FullScanJobArgs]

	coordinator scanner.Coordinator
	settings    settings.Service
	backoff     time.Duration
}

// NewFullScanWorker constructs a FullScanWorker.
func NewFullScanWorker(coordinator scanner.Coordinator,
	settings settings.Service,
	backoff time.Duration) *FullScanWorker {
	return &FullScanWorker{
		coordinator: coordinator,
		settings:    settings,
		backoff:     backoff,
	}
}

// Work runs the scan to completion and records its history.
func (w *FullScanWorker) Work(ctx context.Context, job *river.Job[scanner.FullScanJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("scanType", job.Args.Request.ScanType))

	current, err := w.settings.Get(ctx)
	if err != nil {
		logger.Error(ctx, "could not load scanner settings", zap.Error(err))

		return fmt.Errorf("could not load settings: %w", err)
	}

	history, err := w.coordinator.RunToCompletion(ctx, job.Args.Request.ApplySettings(current.Scanner))
	if err != nil {
		return jobError(ctx, err, w.backoff, "could not run scan")
	}

	logger.Info(ctx, "background scan completed",
		zap.Int("issues", history.Total),
		zap.Int("itemsScanned", history.ItemsScanned))

	return nil
}

// RescanContentWorker rescans a single content item, replacing its
// unresolved findings.
type RescanContentWorker struct {
	river.WorkerDefaults[scanner.RescanContentJobArgs]

	coordinator scanner.Coordinator
	backoff     time.Duration
}

// NewRescanContentWorker constructs a RescanContentWorker.
func NewRescanContentWorker(coordinator scanner.Coordinator, backoff time.Duration) *RescanContentWorker {
	return &RescanContentWorker{
		coordinator: coordinator,
		backoff:     backoff,
	}
}

// Work rescans the item. Items that no longer exist cancel the job.
func (w *RescanContentWorker) Work(ctx context.Context, job *river.Job[scanner.RescanContentJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Int64("contentID", int64(job.Args.ContentID)))

	found, err := w.coordinator.RescanContent(ctx, job.Args.ContentID)
	if err != nil {
		return jobError(ctx, err, w.backoff, "could not rescan content")
	}

	logger.Info(ctx, "content rescanned", zap.Int("issues", found))

	return nil
}

// jobError maps a coordinator error to the River action. Permanent failures
// such as missing content cancel the job, rate limiting snoozes it and
// anything else is retried.
func jobError(ctx context.Context, err error, backoff time.Duration, msg string) error {
	if serrors.Permanent(err) {
		logger.Warn(ctx, msg, zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	}

	logger.Error(ctx, msg, zap.Error(err))

	if errors.Is(err, serrors.ErrRateLimited) {
		dur := backoff
		var rle *contentsource.RateLimitError
		if errors.As(err, &rle) && rle.RetryAfter > 0 {
			dur = rle.RetryAfter
		}

		return river.JobSnooze(dur) //nolint: wrapcheck
	}

	return fmt.Errorf("%s: %w", msg, err)
}
