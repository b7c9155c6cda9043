package settings_test

import (
	"context"
	"errors"
	"testing"

	"a11yscanner/internal/settings"
	mockcontentsource "a11yscanner/pkg/contentsource/mock"
	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/serrors"
	mockstorage "a11yscanner/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testTypes = []domain.ContentType{ //nolint: gochecknoglobals
	{Name: "post", Label: "Posts", Public: true},
	{Name: "page", Label: "Pages", Public: true},
	{Name: "revision", Label: "Revisions", Public: false},
}

type fixture struct {
	storage *mockstorage.MockAllStorage
	source  *mockcontentsource.MockSource
	service settings.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		storage: mockstorage.NewMockAllStorage(ctrl),
		source:  mockcontentsource.NewMockSource(ctrl),
	}
	f.service = settings.New(f.storage, f.source)

	return f
}

func TestService_Get(t *testing.T) {
	t.Run("nothing stored", func(t *testing.T) {
		f := newFixture(t)
		f.storage.EXPECT().LoadSettings(gomock.Any()).Return(nil, nil)

		got, err := f.service.Get(context.Background())
		require.NoError(t, err)
		require.Equal(t, settings.Defaults(), got)
	})

	t.Run("partial document is merged over defaults", func(t *testing.T) {
		f := newFixture(t)
		stored := domain.Settings{
			Global: domain.GlobalSettings{ToolbarEnabled: true, ToolbarPosition: "right", ToolbarTheme: "dark"},
			Modules: map[domain.ModuleKind]domain.ModuleSettings{
				domain.ModuleARIA: {Enabled: true, Features: map[string]bool{"live_regions": false}},
			},
			Scanner: domain.ScannerSettings{BatchSize: 30, MaxPages: 100},
		}
		f.storage.EXPECT().LoadSettings(gomock.Any()).Return(&stored, nil)

		got, err := f.service.Get(context.Background())
		require.NoError(t, err)
		require.Equal(t, "right", got.Global.ToolbarPosition)
		require.True(t, got.Modules[domain.ModuleARIA].Enabled)
		require.False(t, got.Modules[domain.ModuleARIA].Features["live_regions"])
		require.True(t, got.Modules[domain.ModuleARIA].Features["form_labels"])
		require.Equal(t, false, got.Modules[domain.ModuleARIA].Settings["auto_inject"])
		require.Len(t, got.Modules, len(domain.ModuleKinds))
		require.Equal(t, 30, got.Scanner.BatchSize)
		require.Equal(t, 100, got.Scanner.MaxPages)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newFixture(t)
		f.storage.EXPECT().LoadSettings(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := f.service.Get(context.Background())
		require.ErrorIs(t, err, serrors.ErrStorage)
	})
}

func TestService_Save(t *testing.T) {
	f := newFixture(t)

	in := settings.Defaults()
	in.Global.ToolbarTheme = "neon"
	in.Scanner.ExcludedTypes = []string{"page", "revision"}
	in.Scanner.BatchSize = 5

	f.source.EXPECT().ContentTypes(gomock.Any()).Return(testTypes, nil)
	f.storage.EXPECT().SaveSettings(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s domain.Settings) error {
			require.Equal(t, "auto", s.Global.ToolbarTheme)
			require.Equal(t, []string{"page"}, s.Scanner.ExcludedTypes)
			require.Equal(t, domain.MinBatchSize, s.Scanner.BatchSize)

			return nil
		})

	got, err := f.service.Save(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, "auto", got.Global.ToolbarTheme)
	require.Equal(t, []string{"page"}, got.Scanner.ExcludedTypes)
}

func TestService_Save_Errors(t *testing.T) {
	t.Run("content types", func(t *testing.T) {
		f := newFixture(t)
		f.source.EXPECT().ContentTypes(gomock.Any()).Return(nil, errors.New("boom"))

		_, err := f.service.Save(context.Background(), settings.Defaults())
		require.ErrorIs(t, err, serrors.ErrStorage)
	})

	t.Run("save", func(t *testing.T) {
		f := newFixture(t)
		f.source.EXPECT().ContentTypes(gomock.Any()).Return(testTypes, nil)
		f.storage.EXPECT().SaveSettings(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

		_, err := f.service.Save(context.Background(), settings.Defaults())
		require.ErrorIs(t, err, serrors.ErrStorage)
	})
}

func TestService_Reset(t *testing.T) {
	f := newFixture(t)
	f.storage.EXPECT().DeleteSettings(gomock.Any()).Return(nil)

	got, err := f.service.Reset(context.Background())
	require.NoError(t, err)
	require.Equal(t, settings.Defaults(), got)

	f.storage.EXPECT().DeleteSettings(gomock.Any()).Return(errors.New("boom"))
	_, err = f.service.Reset(context.Background())
	require.ErrorIs(t, err, serrors.ErrStorage)
}

func TestService_UpdateModule(t *testing.T) {
	f := newFixture(t)
	enabled := true

	f.storage.EXPECT().LoadSettings(gomock.Any()).Return(nil, nil)
	f.source.EXPECT().ContentTypes(gomock.Any()).Return(testTypes, nil)
	f.storage.EXPECT().SaveSettings(gomock.Any(), gomock.Any()).Return(nil)

	got, err := f.service.UpdateModule(context.Background(), domain.ModuleARIA, settings.ModulePatch{
		Enabled:  &enabled,
		Features: map[string]bool{"form_labels": false},
		Settings: map[string]any{"auto_inject": true},
	})
	require.NoError(t, err)

	aria := got.Modules[domain.ModuleARIA]
	require.True(t, aria.Enabled)
	require.False(t, aria.Features["form_labels"])
	require.True(t, aria.Features["landmark_roles"])
	require.Equal(t, true, aria.Settings["auto_inject"])
	require.Equal(t, settings.Defaults().Modules[domain.ModuleVisual], got.Modules[domain.ModuleVisual])
}

func TestService_UpdateModule_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		kind  domain.ModuleKind
		patch settings.ModulePatch
	}{
		{"unknown module", domain.ModuleKind("module_magic"), settings.ModulePatch{}},
		{"unknown feature", domain.ModuleVisual, settings.ModulePatch{Features: map[string]bool{"x_ray": true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.service.UpdateModule(context.Background(), tt.kind, tt.patch)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}
