package compliance

import (
	"context"
	"time"

	"a11yscanner/internal/settings"
	"a11yscanner/pkg/contentsource"
	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/serrors"
	"a11yscanner/pkg/storage"

	"golang.org/x/sync/errgroup"
)

// ScanSummary describes the most recent completed scan. LastScan is nil and
// every count is zero when no scan completed yet.
type ScanSummary struct {
	LastScan     *time.Time
	TotalIssues  int
	Errors       int
	Warnings     int
	Notices      int
	PostsScanned int
}

// Summary is the dashboard report.
type Summary struct {
	Score      int
	Level      Level
	Scan       ScanSummary
	QuickStats domain.QuickStats
	// EnabledModules lists the enabled modules in display order.
	EnabledModules []domain.ModuleKind
}

type reporter struct {
	settings settings.Service
	history  storage.HistoryStorage
	source   contentsource.Source
}

func (r *reporter) Summary(ctx context.Context) (*Summary, error) {
	var (
		current domain.Settings
		latest  *domain.ScanHistoryRecord
		stats   domain.QuickStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = r.settings.Get(gctx)

		return err
	})
	g.Go(func() error {
		var err error
		latest, err = r.history.LatestScanHistory(gctx)
		if err != nil {
			return serrors.Wrap(serrors.ErrStorage, err, "could not load latest scan")
		}

		return nil
	})
	g.Go(func() error {
		var err error
		stats, err = r.source.QuickStats(gctx)
		if err != nil {
			return serrors.Wrap(serrors.ErrStorage, err, "could not compute quick stats")
		}

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	score := Score(current)
	summary := &Summary{
		Score:      score,
		Level:      LevelFor(score),
		Scan:       NewScanSummary(latest),
		QuickStats: stats,
	}
	for _, kind := range domain.ModuleKinds {
		if m, ok := current.Modules[kind]; ok && m.Enabled {
			summary.EnabledModules = append(summary.EnabledModules, kind)
		}
	}

	return summary, nil
}

// NewScanSummary converts the latest history record, which may be nil.
func NewScanSummary(latest *domain.ScanHistoryRecord) ScanSummary {
	if latest == nil {
		return ScanSummary{}
	}
	scannedAt := latest.ScannedAt

	return ScanSummary{
		LastScan:     &scannedAt,
		TotalIssues:  latest.Total,
		Errors:       latest.Errors,
		Warnings:     latest.Warnings,
		Notices:      latest.Notices,
		PostsScanned: latest.ItemsScanned,
	}
}

// New returns a Reporter reading the given collaborators.
func New(settings settings.Service, history storage.HistoryStorage, source contentsource.Source) Reporter {
	return &reporter{
		settings: settings,
		history:  history,
		source:   source,
	}
}
