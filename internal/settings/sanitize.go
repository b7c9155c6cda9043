package settings

import (
	"math"
	"regexp"
	"slices"

	"a11yscanner/pkg/domain"
)

var hexColor = regexp.MustCompile(`^#([A-Fa-f0-9]{3}){1,2}$`) //nolint: gochecknoglobals

// Sanitize returns a copy of s where every unknown value is replaced by its
// default: enum options outside their allowed set, unknown features, out of
// range numbers and excluded types that are not public. A nil publicTypes
// skips the excluded types filter.
func Sanitize(s domain.Settings, publicTypes []string) domain.Settings {
	defaults := Defaults()
	out := Merge(defaults, s)

	if !slices.Contains(ToolbarPositions, out.Global.ToolbarPosition) {
		out.Global.ToolbarPosition = defaults.Global.ToolbarPosition
	}
	if !slices.Contains(ToolbarThemes, out.Global.ToolbarTheme) {
		out.Global.ToolbarTheme = defaults.Global.ToolbarTheme
	}

	for kind, m := range out.Modules {
		for feature := range m.Features {
			if !kind.HasFeature(feature) {
				delete(m.Features, feature)
			}
		}
		m.Settings = sanitizeModuleSettings(kind, m.Settings)
		out.Modules[kind] = m
	}

	out.Scanner = sanitizeScanner(out.Scanner, publicTypes)

	return out
}

func sanitizeScanner(s domain.ScannerSettings, publicTypes []string) domain.ScannerSettings {
	s.BatchSize = domain.ClampBatchSize(s.BatchSize)
	if !slices.Contains(MaxPagesLimits, s.MaxPages) {
		s.MaxPages = 0
	}

	excluded := make([]string, 0, len(s.ExcludedTypes))
	for _, t := range s.ExcludedTypes {
		if publicTypes != nil && !slices.Contains(publicTypes, t) {
			continue
		}
		if !slices.Contains(excluded, t) {
			excluded = append(excluded, t)
		}
	}
	s.ExcludedTypes = excluded

	return s
}

// sanitizeModuleSettings keeps the known options of a module and normalizes
// their types. Values decoded from JSON arrive as float64 and []any.
func sanitizeModuleSettings(kind domain.ModuleKind, in map[string]any) map[string]any {
	defaults := moduleSettingDefaults(kind)
	if defaults == nil {
		return nil
	}

	out := make(map[string]any, len(defaults))
	for key, def := range defaults {
		v, ok := in[key]
		if !ok {
			out[key] = def

			continue
		}

		switch key {
		case "max_font_scale":
			out[key] = clampFloat(v, def.(float64), 1.5, 3.0) //nolint: forcetypeassert
		case "focus_ring_width":
			out[key] = int(clampFloat(v, float64(def.(int)), 1, 5)) //nolint: forcetypeassert
		case "default_font":
			out[key] = oneOf(v, DefaultFonts, def.(string)) //nolint: forcetypeassert
		case "focus_ring_color":
			if c, ok := v.(string); ok && hexColor.MatchString(c) {
				out[key] = c
			} else {
				out[key] = def
			}
		case "skip_link_targets":
			out[key] = subset(v, SkipLinkTargets, def.([]string)) //nolint: forcetypeassert
		case "auto_inject":
			b, ok := v.(bool)
			out[key] = ok && b
		default:
			out[key] = def
		}
	}

	return out
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func clampFloat(v any, def, lo, hi float64) float64 {
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) {
		return def
	}

	return math.Max(lo, math.Min(hi, f))
}

func oneOf(v any, allowed []string, def string) string {
	s, ok := v.(string)
	if !ok || !slices.Contains(allowed, s) {
		return def
	}

	return s
}

// subset keeps the allowed entries of v in their input order. An empty result
// falls back to def.
func subset(v any, allowed []string, def []string) []string {
	var in []string
	switch vs := v.(type) {
	case []string:
		in = vs
	case []any:
		for _, e := range vs {
			if s, ok := e.(string); ok {
				in = append(in, s)
			}
		}
	}

	out := make([]string, 0, len(in))
	for _, s := range in {
		if slices.Contains(allowed, s) && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return slices.Clone(def)
	}

	return out
}
