package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"a11yscanner/internal/scanner"
	mockscanner "a11yscanner/internal/scanner/mock"
	"a11yscanner/internal/settings"
	mocksettings "a11yscanner/internal/settings/mock"
	"a11yscanner/internal/worker"
	"a11yscanner/pkg/contentsource"
	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/logger"
	"a11yscanner/pkg/serrors"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func fullScanJob(id int64, req scanner.StartRequest) *river.Job[scanner.FullScanJobArgs] {
	return &river.Job[scanner.FullScanJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   scanner.FullScanJobArgs{Request: req},
	}
}

func rescanJob(id int64, contentID domain.ContentID) *river.Job[scanner.RescanContentJobArgs] {
	return &river.Job[scanner.RescanContentJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   scanner.RescanContentJobArgs{ContentID: contentID},
	}
}

func TestFullScanWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	coordinator := mockscanner.NewMockCoordinator(ctrl)
	settingsSvc := mocksettings.NewMockService(ctrl)
	w := worker.NewFullScanWorker(coordinator, settingsSvc, time.Minute)

	stored := settings.Defaults()
	stored.Scanner.BatchSize = 20
	stored.Scanner.MaxPages = 100
	stored.Scanner.ExcludedTypes = []string{"page"}
	settingsSvc.EXPECT().Get(gomock.Any()).Return(stored, nil)
	coordinator.EXPECT().RunToCompletion(gomock.Any(), scanner.StartRequest{
		ScanType:      "images",
		ExcludedTypes: []string{"page"},
		MaxItems:      100,
		BatchSize:     20,
	}).Return(&domain.ScanHistoryRecord{Total: 3, ItemsScanned: 100}, nil)

	require.NoError(t, w.Work(context.Background(), fullScanJob(1, scanner.StartRequest{ScanType: "images"})))
}

func TestFullScanWorker_Work_Errors(t *testing.T) {
	t.Run("settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		settingsSvc := mocksettings.NewMockService(ctrl)
		w := worker.NewFullScanWorker(mockscanner.NewMockCoordinator(ctrl), settingsSvc, time.Minute)

		settingsSvc.EXPECT().Get(gomock.Any()).Return(domain.Settings{}, serrors.KindOnly(serrors.ErrStorage))

		err := w.Work(context.Background(), fullScanJob(2, scanner.StartRequest{}))
		require.ErrorIs(t, err, serrors.ErrStorage)
	})

	t.Run("bad request cancels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		coordinator := mockscanner.NewMockCoordinator(ctrl)
		settingsSvc := mocksettings.NewMockService(ctrl)
		w := worker.NewFullScanWorker(coordinator, settingsSvc, time.Minute)

		settingsSvc.EXPECT().Get(gomock.Any()).Return(settings.Defaults(), nil)
		coordinator.EXPECT().RunToCompletion(gomock.Any(), gomock.Any()).
			Return(nil, serrors.With(serrors.ErrBadRequest, "negative"))

		err := w.Work(context.Background(), fullScanJob(3, scanner.StartRequest{MaxItems: -1}))
		var cancelErr *river.JobCancelError
		require.ErrorAs(t, err, &cancelErr)
	})

	t.Run("rate limited snoozes for the requested delay", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		coordinator := mockscanner.NewMockCoordinator(ctrl)
		settingsSvc := mocksettings.NewMockService(ctrl)
		w := worker.NewFullScanWorker(coordinator, settingsSvc, time.Minute)

		settingsSvc.EXPECT().Get(gomock.Any()).Return(settings.Defaults(), nil)
		coordinator.EXPECT().RunToCompletion(gomock.Any(), gomock.Any()).
			Return(nil, serrors.Wrap(serrors.ErrRateLimited, &contentsource.RateLimitError{RetryAfter: 30 * time.Second}, "types"))

		err := w.Work(context.Background(), fullScanJob(4, scanner.StartRequest{}))
		var snoozeErr *river.JobSnoozeError
		require.ErrorAs(t, err, &snoozeErr)
		require.Equal(t, 30*time.Second, snoozeErr.Duration)
	})

	t.Run("other errors are retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		coordinator := mockscanner.NewMockCoordinator(ctrl)
		settingsSvc := mocksettings.NewMockService(ctrl)
		w := worker.NewFullScanWorker(coordinator, settingsSvc, time.Minute)

		settingsSvc.EXPECT().Get(gomock.Any()).Return(settings.Defaults(), nil)
		coordinator.EXPECT().RunToCompletion(gomock.Any(), gomock.Any()).
			Return(nil, serrors.Wrap(serrors.ErrStorage, errors.New("db down"), "could not store findings"))

		err := w.Work(context.Background(), fullScanJob(5, scanner.StartRequest{}))
		require.ErrorIs(t, err, serrors.ErrStorage)
		var snoozeErr *river.JobSnoozeError
		require.False(t, errors.As(err, &snoozeErr))
	})
}

func TestRescanContentWorker_Work(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		coordinator := mockscanner.NewMockCoordinator(ctrl)
		w := worker.NewRescanContentWorker(coordinator, time.Minute)

		coordinator.EXPECT().RescanContent(gomock.Any(), domain.ContentID(7)).Return(2, nil)

		require.NoError(t, w.Work(context.Background(), rescanJob(1, 7)))
	})

	t.Run("missing content cancels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		coordinator := mockscanner.NewMockCoordinator(ctrl)
		w := worker.NewRescanContentWorker(coordinator, time.Minute)

		coordinator.EXPECT().RescanContent(gomock.Any(), domain.ContentID(8)).
			Return(0, serrors.With(serrors.ErrNotFound, "content 8 not found"))

		err := w.Work(context.Background(), rescanJob(2, 8))
		var cancelErr *river.JobCancelError
		require.ErrorAs(t, err, &cancelErr)
	})

	t.Run("rate limited without delay uses the backoff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		coordinator := mockscanner.NewMockCoordinator(ctrl)
		w := worker.NewRescanContentWorker(coordinator, 45*time.Second)

		coordinator.EXPECT().RescanContent(gomock.Any(), domain.ContentID(9)).
			Return(0, serrors.KindOnly(serrors.ErrRateLimited))

		err := w.Work(context.Background(), rescanJob(3, 9))
		var snoozeErr *river.JobSnoozeError
		require.ErrorAs(t, err, &snoozeErr)
		require.Equal(t, 45*time.Second, snoozeErr.Duration)
	})
}

func TestWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	workers := worker.Workers(mockscanner.NewMockCoordinator(ctrl), mocksettings.NewMockService(ctrl),
		worker.Options{MaxWorkers: 2, RateLimitBackoff: time.Minute})
	require.NotNil(t, workers)
}
