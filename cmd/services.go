package main

import (
	"context"

	"a11yscanner/internal/compliance"
	"a11yscanner/internal/config"
	"a11yscanner/internal/export"
	"a11yscanner/internal/scanner"
	"a11yscanner/internal/settings"
	"a11yscanner/pkg/storage/postgres"
)

// services are the domain services shared by the serve and scan commands.
type services struct {
	coordinator scanner.Coordinator
	settings    settings.Service
	reporter    compliance.Reporter
	exporter    export.Exporter
}

func newServices(ctx context.Context, cfg *config.Config, pgsql *postgres.PgSQL) services {
	source := getContentSource(ctx, cfg, pgsql)
	settingsSvc := settings.New(pgsql, source)

	return services{
		coordinator: scanner.New(pgsql, source, scanner.NewContentScanner(), scanner.NewOptions(cfg)),
		settings:    settingsSvc,
		reporter:    compliance.New(settingsSvc, pgsql, source),
		exporter:    export.New(settingsSvc, pgsql, export.NewOptions(cfg)),
	}
}
