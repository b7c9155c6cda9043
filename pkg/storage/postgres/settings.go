package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"a11yscanner/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	settingsTable = "settings"
	// settingsName is the key of the single settings document.
	settingsName = "a11y_settings"
)

func (p *PgSQL) LoadSettings(ctx context.Context) (*domain.Settings, error) {
	var value []byte
	found, err := p.Builder.From(settingsTable).
		Select(goqu.I("value")).
		Where(goqu.I("name").Eq(settingsName)).
		Executor().ScanValContext(ctx, &value)
	if err != nil {
		return nil, fmt.Errorf("could not fetch settings from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	var settings domain.Settings
	if err := json.Unmarshal(value, &settings); err != nil {
		return nil, fmt.Errorf("could not unmarshal settings: %w", err)
	}

	return &settings, nil
}

func (p *PgSQL) SaveSettings(ctx context.Context, settings domain.Settings) error {
	value, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("could not marshal settings: %w", err)
	}

	if _, err := p.Builder.Insert(settingsTable).
		Rows(goqu.Record{
			"name":  settingsName,
			"value": value,
		}).
		OnConflict(goqu.DoUpdate("name", goqu.Record{
			"value":      goqu.L("EXCLUDED.value"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not save settings into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) DeleteSettings(ctx context.Context) error {
	if _, err := p.Builder.Delete(settingsTable).
		Where(goqu.I("name").Eq(settingsName)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete settings in pg: %w", err)
	}

	return nil
}
