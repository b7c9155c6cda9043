package compliance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"a11yscanner/internal/compliance"
	"a11yscanner/internal/settings"
	mocksettings "a11yscanner/internal/settings/mock"
	mockcontentsource "a11yscanner/pkg/contentsource/mock"
	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/serrors"
	mockstorage "a11yscanner/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScore(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		// 21 of 26 features: aria is disabled and drag alternatives is off.
		require.Equal(t, 81, compliance.Score(settings.Defaults()))
	})

	t.Run("everything enabled", func(t *testing.T) {
		s := settings.Defaults()
		for kind, m := range s.Modules {
			m.Enabled = true
			for f := range m.Features {
				m.Features[f] = true
			}
			s.Modules[kind] = m
		}
		require.Equal(t, 100, compliance.Score(s))
	})

	t.Run("disabled module does not count", func(t *testing.T) {
		s := domain.Settings{Modules: map[domain.ModuleKind]domain.ModuleSettings{
			domain.ModuleVisual: {Enabled: false, Features: map[string]bool{"grayscale": true}},
			domain.ModuleContent: {Enabled: true, Features: map[string]bool{
				"hide_images": true, "highlight_links": false,
			}},
		}}
		require.Equal(t, 33, compliance.Score(s))
	})

	t.Run("no features", func(t *testing.T) {
		require.Equal(t, 0, compliance.Score(domain.Settings{}))
	})
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		score int
		want  compliance.Level
	}{
		{100, compliance.LevelHigh},
		{90, compliance.LevelHigh},
		{89, compliance.LevelMedium},
		{70, compliance.LevelMedium},
		{69, compliance.LevelLow},
		{0, compliance.LevelLow},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, compliance.LevelFor(tt.score), "score %d", tt.score)
	}
}

type fixture struct {
	settings *mocksettings.MockService
	storage  *mockstorage.MockAllStorage
	source   *mockcontentsource.MockSource
	reporter compliance.Reporter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		settings: mocksettings.NewMockService(ctrl),
		storage:  mockstorage.NewMockAllStorage(ctrl),
		source:   mockcontentsource.NewMockSource(ctrl),
	}
	f.reporter = compliance.New(f.settings, f.storage, f.source)

	return f
}

func TestSummary(t *testing.T) {
	scannedAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("with history", func(t *testing.T) {
		f := newFixture(t)
		f.settings.EXPECT().Get(gomock.Any()).Return(settings.Defaults(), nil)
		f.storage.EXPECT().LatestScanHistory(gomock.Any()).Return(&domain.ScanHistoryRecord{
			ID: 3, ScanType: domain.ScanTypeFull, Total: 6, Errors: 1, Warnings: 2, Notices: 3,
			ItemsScanned: 120, ScannedAt: scannedAt,
		}, nil)
		f.source.EXPECT().QuickStats(gomock.Any()).Return(domain.QuickStats{TotalContent: 120, ImagesWithoutAlt: 4}, nil)

		got, err := f.reporter.Summary(context.Background())
		require.NoError(t, err)
		require.Equal(t, 81, got.Score)
		require.Equal(t, compliance.LevelMedium, got.Level)
		require.Equal(t, compliance.ScanSummary{
			LastScan: &scannedAt, TotalIssues: 6, Errors: 1, Warnings: 2, Notices: 3, PostsScanned: 120,
		}, got.Scan)
		require.Equal(t, 4, got.QuickStats.ImagesWithoutAlt)
		require.Equal(t, []domain.ModuleKind{
			domain.ModuleVisual, domain.ModuleNavigation, domain.ModuleContent, domain.ModuleInteraction,
		}, got.EnabledModules)
	})

	t.Run("no scan yet", func(t *testing.T) {
		f := newFixture(t)
		f.settings.EXPECT().Get(gomock.Any()).Return(settings.Defaults(), nil)
		f.storage.EXPECT().LatestScanHistory(gomock.Any()).Return(nil, nil)
		f.source.EXPECT().QuickStats(gomock.Any()).Return(domain.QuickStats{}, nil)

		got, err := f.reporter.Summary(context.Background())
		require.NoError(t, err)
		require.Nil(t, got.Scan.LastScan)
		require.Zero(t, got.Scan.TotalIssues)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newFixture(t)
		f.settings.EXPECT().Get(gomock.Any()).Return(settings.Defaults(), nil).AnyTimes()
		f.storage.EXPECT().LatestScanHistory(gomock.Any()).Return(nil, errors.New("db down")).AnyTimes()
		f.source.EXPECT().QuickStats(gomock.Any()).Return(domain.QuickStats{}, nil).AnyTimes()

		_, err := f.reporter.Summary(context.Background())
		require.ErrorIs(t, err, serrors.ErrStorage)
	})
}
