package codec

import (
	"a11yscanner/pkg/domain"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// EncodeSettings writes the settings document. Modules are written in display
// order and features in the module's declared order.
func EncodeSettings(e *jx.Encoder, s domain.Settings) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("global", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("toolbar_enabled", func(e *jx.Encoder) { e.Bool(s.Global.ToolbarEnabled) })
				e.Field("toolbar_position", func(e *jx.Encoder) { e.Str(s.Global.ToolbarPosition) })
				e.Field("toolbar_theme", func(e *jx.Encoder) { e.Str(s.Global.ToolbarTheme) })
				e.Field("safe_mode", func(e *jx.Encoder) { e.Bool(s.Global.SafeMode) })
				e.Field("respect_prefers", func(e *jx.Encoder) { e.Bool(s.Global.RespectPrefers) })
			})
		})
		e.Field("modules", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				for _, kind := range domain.ModuleKinds {
					m, ok := s.Modules[kind]
					if !ok {
						continue
					}
					e.Field(string(kind), func(e *jx.Encoder) { EncodeModule(e, kind, m) })
				}
			})
		})
		e.Field("scanner", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("batch_size", func(e *jx.Encoder) { e.Int(s.Scanner.BatchSize) })
				e.Field("auto_scan", func(e *jx.Encoder) { e.Bool(s.Scanner.AutoScan) })
				e.Field("scan_on_publish", func(e *jx.Encoder) { e.Bool(s.Scanner.ScanOnPublish) })
				e.Field("max_pages", func(e *jx.Encoder) { e.Int(s.Scanner.MaxPages) })
				e.Field("excluded_types", func(e *jx.Encoder) { EncodeAny(e, nonNil(s.Scanner.ExcludedTypes)) })
			})
		})
	})
}

// EncodeModule writes the state of one module.
func EncodeModule(e *jx.Encoder, kind domain.ModuleKind, m domain.ModuleSettings) {
	d, _ := kind.Descriptor()
	e.Obj(func(e *jx.Encoder) {
		e.Field("enabled", func(e *jx.Encoder) { e.Bool(m.Enabled) })
		e.Field("features", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				for _, f := range d.Features {
					if v, ok := m.Features[f]; ok {
						e.Field(f, func(e *jx.Encoder) { e.Bool(v) })
					}
				}
			})
		})
		if len(m.Settings) > 0 {
			e.Field("settings", func(e *jx.Encoder) { EncodeAny(e, m.Settings) })
		}
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

// DecodeSettings overlays the fields present in the document onto s. Unknown
// keys are skipped and absent keys keep the value already in s.
func DecodeSettings(d *jx.Decoder, s *domain.Settings) error {
	if s.Modules == nil {
		s.Modules = make(map[domain.ModuleKind]domain.ModuleSettings)
	}

	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "global":
			return decodeGlobal(d, &s.Global)
		case "modules":
			return d.Obj(func(d *jx.Decoder, key string) error {
				kind := domain.ModuleKind(key)
				if !kind.Valid() {
					return d.Skip()
				}
				m := s.Modules[kind]
				if err := DecodeModule(d, &m); err != nil {
					return errors.Wrapf(err, "module %q", key)
				}
				s.Modules[kind] = m

				return nil
			})
		case "scanner":
			return decodeScanner(d, &s.Scanner)
		default:
			return d.Skip()
		}
	})
}

func decodeGlobal(d *jx.Decoder, g *domain.GlobalSettings) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "toolbar_enabled":
			g.ToolbarEnabled, err = d.Bool()
		case "toolbar_position":
			g.ToolbarPosition, err = d.Str()
		case "toolbar_theme":
			g.ToolbarTheme, err = d.Str()
		case "safe_mode":
			g.SafeMode, err = d.Bool()
		case "respect_prefers":
			g.RespectPrefers, err = d.Bool()
		default:
			err = d.Skip()
		}

		return errors.Wrapf(err, "global.%s", key)
	})
}

func decodeScanner(d *jx.Decoder, s *domain.ScannerSettings) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "batch_size":
			s.BatchSize, err = d.Int()
		case "auto_scan":
			s.AutoScan, err = d.Bool()
		case "scan_on_publish":
			s.ScanOnPublish, err = d.Bool()
		case "max_pages":
			s.MaxPages, err = d.Int()
		case "excluded_types":
			s.ExcludedTypes, err = DecodeStrings(d)
		default:
			err = d.Skip()
		}

		return errors.Wrapf(err, "scanner.%s", key)
	})
}

// DecodeModule overlays a module object onto m. Features are merged key by
// key and so are module options.
func DecodeModule(d *jx.Decoder, m *domain.ModuleSettings) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "enabled":
			v, err := d.Bool()
			if err != nil {
				return errors.Wrap(err, "enabled")
			}
			m.Enabled = v

			return nil
		case "features":
			features, err := DecodeFeatures(d)
			if err != nil {
				return err
			}
			if m.Features == nil {
				m.Features = make(map[string]bool, len(features))
			}
			for k, v := range features {
				m.Features[k] = v
			}

			return nil
		case "settings":
			v, err := DecodeAny(d)
			if err != nil {
				return errors.Wrap(err, "settings")
			}
			opts, ok := v.(map[string]any)
			if !ok {
				return errors.New("settings: expected an object")
			}
			if m.Settings == nil {
				m.Settings = make(map[string]any, len(opts))
			}
			for k, v := range opts {
				m.Settings[k] = v
			}

			return nil
		default:
			return d.Skip()
		}
	})
}

// DecodeFeatures reads a feature flag object.
func DecodeFeatures(d *jx.Decoder) (map[string]bool, error) {
	out := map[string]bool{}
	err := d.Obj(func(d *jx.Decoder, key string) error {
		v, err := d.Bool()
		if err != nil {
			return errors.Wrapf(err, "features.%s", key)
		}
		out[key] = v

		return nil
	})

	return out, err
}

// DecodeStrings reads an array of strings.
func DecodeStrings(d *jx.Decoder) ([]string, error) {
	out := []string{}
	err := d.Arr(func(d *jx.Decoder) error {
		s, err := d.Str()
		if err != nil {
			return err
		}
		out = append(out, s)

		return nil
	})

	return out, err
}
