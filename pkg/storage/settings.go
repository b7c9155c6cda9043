package storage

import (
	"context"

	"a11yscanner/pkg/contentsource"
	"a11yscanner/pkg/domain"
)

// SettingsStorage keeps the single settings document.
type SettingsStorage interface {
	// LoadSettings returns the stored document, or nil when none was saved yet.
	LoadSettings(ctx context.Context) (*domain.Settings, error)
	// SaveSettings replaces the stored document.
	SaveSettings(ctx context.Context, settings domain.Settings) error
	// DeleteSettings removes the stored document so that defaults apply again.
	DeleteSettings(ctx context.Context) error
}

// ContentStorage is the local content store. It is also a contentsource.Source.
type ContentStorage interface {
	contentsource.Source

	// StoreContents inserts content items and returns them with their ids.
	StoreContents(ctx context.Context, items ...domain.ContentItem) ([]domain.ContentItem, error)
}
