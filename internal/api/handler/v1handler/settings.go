package v1handler

import (
	"net/http"

	"a11yscanner/internal/settings"
	"a11yscanner/pkg/codec"
	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

func writeSettings(w http.ResponseWriter, s domain.Settings) {
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { codec.EncodeSettings(e, s) })
}

// GetSettings returns the current settings.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	current, err := h.deps.Settings.Get(ctx)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeSettings(w, current)
}

// SaveSettings replaces the settings. Sections and keys missing from the body
// take their default values.
func (h *Handler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	next := settings.Defaults()
	if err := decodeBody(r, func(d *jx.Decoder) error { return codec.DecodeSettings(d, &next) }); err != nil {
		h.writeError(ctx, w, err)

		return
	}

	saved, err := h.deps.Settings.Save(ctx, next)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeSettings(w, saved)
}

// ResetSettings restores the defaults.
func (h *Handler) ResetSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	defaults, err := h.deps.Settings.Reset(ctx)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeSettings(w, defaults)
}

// UpdateModule patches one module, {enabled?, features?, settings?}.
func (h *Handler) UpdateModule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind := domain.ModuleKind(r.PathValue("module"))
	if !kind.Valid() {
		h.writeError(ctx, w, serrors.With(serrors.ErrNotFound, "unknown module %q", kind))

		return
	}

	var patch settings.ModulePatch
	err := decodeBody(r, func(d *jx.Decoder) error {
		return d.Obj(func(d *jx.Decoder, key string) error {
			switch key {
			case "enabled":
				v, err := d.Bool()
				if err != nil {
					return errors.Wrap(err, key)
				}
				patch.Enabled = &v
			case "features":
				features, err := codec.DecodeFeatures(d)
				if err != nil {
					return err
				}
				patch.Features = features
			case "settings":
				v, err := codec.DecodeAny(d)
				if err != nil {
					return errors.Wrap(err, key)
				}
				opts, ok := v.(map[string]any)
				if !ok {
					return errors.New("settings: expected an object")
				}
				patch.Settings = opts
			default:
				return d.Skip()
			}

			return nil
		})
	})
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	updated, err := h.deps.Settings.UpdateModule(ctx, kind, patch)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeSettings(w, updated)
}
