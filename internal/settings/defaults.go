package settings

import (
	"maps"

	"a11yscanner/pkg/domain"
)

// Allowed values of the enumerated options.
var (
	ToolbarPositions = []string{"left", "right", "bottom"}                      //nolint: gochecknoglobals
	ToolbarThemes    = []string{"auto", "light", "dark"}                        //nolint: gochecknoglobals
	DefaultFonts     = []string{"atkinson", "opendyslexic", "inherit"}          //nolint: gochecknoglobals
	SkipLinkTargets  = []string{"content", "navigation", "footer", "search"}    //nolint: gochecknoglobals
	MaxPagesLimits   = []int{0, 10, 50, 100, 500, 1000}                         //nolint: gochecknoglobals
)

// moduleSettingDefaults returns the module specific option defaults. Modules
// without options return nil.
func moduleSettingDefaults(kind domain.ModuleKind) map[string]any {
	switch kind {
	case domain.ModuleVisual:
		return map[string]any{
			"max_font_scale": 2.0,
			"default_font":   "atkinson",
		}
	case domain.ModuleNavigation:
		return map[string]any{
			"focus_ring_color":  "#0066cc",
			"focus_ring_width":  2,
			"skip_link_targets": []string{"content", "navigation", "footer"},
		}
	case domain.ModuleARIA:
		return map[string]any{
			"auto_inject": false,
		}
	default:
		return nil
	}
}

// Defaults returns a fresh copy of the default settings document.
func Defaults() domain.Settings {
	modules := make(map[domain.ModuleKind]domain.ModuleSettings, len(domain.ModuleKinds))
	for _, kind := range domain.ModuleKinds {
		d, _ := kind.Descriptor()

		features := make(map[string]bool, len(d.Features))
		for _, f := range d.Features {
			features[f] = true
		}
		for _, f := range d.DisabledFeatures {
			features[f] = false
		}

		modules[kind] = domain.ModuleSettings{
			Enabled:  d.EnabledByDefault,
			Features: features,
			Settings: moduleSettingDefaults(kind),
		}
	}

	return domain.Settings{
		Global: domain.GlobalSettings{
			ToolbarEnabled:  true,
			ToolbarPosition: "left",
			ToolbarTheme:    "auto",
			SafeMode:        false,
			RespectPrefers:  true,
		},
		Modules: modules,
		Scanner: domain.ScannerSettings{
			BatchSize:     domain.DefaultBatchSize,
			AutoScan:      false,
			ScanOnPublish: true,
			MaxPages:      0,
			ExcludedTypes: []string{},
		},
	}
}

// Merge deep-merges stored over defaults. Modules, features and module
// options missing from stored keep their default values.
func Merge(defaults, stored domain.Settings) domain.Settings {
	out := domain.Settings{
		Global:  stored.Global,
		Modules: make(map[domain.ModuleKind]domain.ModuleSettings, len(defaults.Modules)),
		Scanner: stored.Scanner,
	}

	for kind, d := range defaults.Modules {
		s, ok := stored.Modules[kind]
		if !ok {
			out.Modules[kind] = cloneModule(d)

			continue
		}

		merged := cloneModule(d)
		merged.Enabled = s.Enabled
		maps.Copy(merged.Features, s.Features)
		if len(s.Settings) > 0 {
			if merged.Settings == nil {
				merged.Settings = make(map[string]any, len(s.Settings))
			}
			maps.Copy(merged.Settings, s.Settings)
		}
		out.Modules[kind] = merged
	}

	return out
}

func cloneModule(m domain.ModuleSettings) domain.ModuleSettings {
	out := domain.ModuleSettings{
		Enabled:  m.Enabled,
		Features: make(map[string]bool, len(m.Features)),
	}
	maps.Copy(out.Features, m.Features)
	if m.Settings != nil {
		out.Settings = maps.Clone(m.Settings)
	}

	return out
}
