package postgres_test

import (
	"context"
	"testing"

	"a11yscanner/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Settings(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	loaded, err := pg.LoadSettings(ctx)
	require.NoError(t, err)
	require.Nil(t, loaded)

	settings := domain.Settings{
		Global: domain.GlobalSettings{ToolbarEnabled: true, ToolbarPosition: "left", ToolbarTheme: "dark"},
		Modules: map[domain.ModuleKind]domain.ModuleSettings{
			domain.ModuleVisual: {Enabled: true, Features: map[string]bool{"grayscale": true}},
		},
		Scanner: domain.ScannerSettings{BatchSize: 20, MaxPages: 100, ExcludedTypes: []string{"page"}},
	}
	require.NoError(t, pg.SaveSettings(ctx, settings))

	loaded, err = pg.LoadSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, settings, *loaded)

	settings.Scanner.BatchSize = 30
	require.NoError(t, pg.SaveSettings(ctx, settings))
	loaded, err = pg.LoadSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, 30, loaded.Scanner.BatchSize)

	require.NoError(t, pg.DeleteSettings(ctx))
	loaded, err = pg.LoadSettings(ctx)
	require.NoError(t, err)
	require.Nil(t, loaded)
}
