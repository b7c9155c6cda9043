// Package settings keeps the accessibility settings document: toolbar
// options, the feature flags of every module and the scanner options. Stored
// documents are always sanitized and deep-merged over the defaults, so readers
// never see a partial document.
package settings

import (
	"context"

	"a11yscanner/pkg/domain"
)

//go:generate mockgen -package mocksettings -source=interface.go -destination=mock/mocksettings.go *
type Service interface {
	// Get returns the stored settings merged over the defaults.
	Get(ctx context.Context) (domain.Settings, error)
	// Save sanitizes and persists a complete settings document.
	Save(ctx context.Context, settings domain.Settings) (domain.Settings, error)
	// Reset drops the stored document and returns the defaults.
	Reset(ctx context.Context) (domain.Settings, error)
	// UpdateModule applies a patch to a single module.
	UpdateModule(ctx context.Context, kind domain.ModuleKind, patch ModulePatch) (domain.Settings, error)
}

// ModulePatch changes part of a module. Nil fields are left untouched.
type ModulePatch struct {
	Enabled  *bool
	Features map[string]bool
	Settings map[string]any
}
