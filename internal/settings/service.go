package settings

import (
	"context"
	"maps"

	"a11yscanner/pkg/contentsource"
	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/logger"
	"a11yscanner/pkg/serrors"
	"a11yscanner/pkg/storage"

	"go.uber.org/zap"
)

type service struct {
	storage storage.SettingsStorage
	// source lists the public content types allowed in the excluded types.
	source contentsource.Source
}

func (s *service) Get(ctx context.Context) (domain.Settings, error) {
	stored, err := s.storage.LoadSettings(ctx)
	if err != nil {
		return domain.Settings{}, serrors.Wrap(serrors.ErrStorage, err, "could not load settings")
	}
	if stored == nil {
		return Defaults(), nil
	}

	return Sanitize(*stored, nil), nil
}

func (s *service) Save(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	publicTypes, err := s.publicTypes(ctx)
	if err != nil {
		return domain.Settings{}, err
	}

	sanitized := Sanitize(settings, publicTypes)
	if err := s.storage.SaveSettings(ctx, sanitized); err != nil {
		return domain.Settings{}, serrors.Wrap(serrors.ErrStorage, err, "could not save settings")
	}
	logger.Info(ctx, "settings saved",
		zap.Bool("toolbarEnabled", sanitized.Global.ToolbarEnabled),
		zap.Int("batchSize", sanitized.Scanner.BatchSize))

	return sanitized, nil
}

func (s *service) Reset(ctx context.Context) (domain.Settings, error) {
	if err := s.storage.DeleteSettings(ctx); err != nil {
		return domain.Settings{}, serrors.Wrap(serrors.ErrStorage, err, "could not reset settings")
	}
	logger.Info(ctx, "settings reset to defaults")

	return Defaults(), nil
}

func (s *service) UpdateModule(ctx context.Context,
	kind domain.ModuleKind,
	patch ModulePatch) (domain.Settings, error) {
	if !kind.Valid() {
		return domain.Settings{}, serrors.With(serrors.ErrBadRequest, "unknown module %q", kind)
	}
	for feature := range patch.Features {
		if !kind.HasFeature(feature) {
			return domain.Settings{}, serrors.With(serrors.ErrBadRequest,
				"module %q has no feature %q", kind, feature)
		}
	}

	current, err := s.Get(ctx)
	if err != nil {
		return domain.Settings{}, err
	}

	module := cloneModule(current.Modules[kind])
	if patch.Enabled != nil {
		module.Enabled = *patch.Enabled
	}
	maps.Copy(module.Features, patch.Features)
	if len(patch.Settings) > 0 {
		if module.Settings == nil {
			module.Settings = make(map[string]any, len(patch.Settings))
		}
		maps.Copy(module.Settings, patch.Settings)
	}
	current.Modules[kind] = module

	return s.Save(ctx, current)
}

func (s *service) publicTypes(ctx context.Context) ([]string, error) {
	types, err := s.source.ContentTypes(ctx)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrStorage, err, "could not list content types")
	}

	out := make([]string, 0, len(types))
	for _, t := range types {
		if t.Public {
			out = append(out, t.Name)
		}
	}

	return out, nil
}

// New returns a settings Service backed by the given storage.
func New(storage storage.SettingsStorage, source contentsource.Source) Service {
	return &service{
		storage: storage,
		source:  source,
	}
}
