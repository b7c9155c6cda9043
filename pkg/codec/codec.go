// Package codec encodes and decodes domain types with go-faster/jx. The HTTP
// API and the JSON export share these encoders so that both produce the same
// document shapes.
package codec

import (
	"encoding/json"
	"maps"
	"slices"
	"time"

	"a11yscanner/pkg/domain"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// EncodeTime writes t as an RFC 3339 string, or null when t is zero.
func EncodeTime(e *jx.Encoder, t time.Time) {
	if t.IsZero() {
		e.Null()

		return
	}
	e.Str(t.UTC().Format(time.RFC3339))
}

// EncodeAny writes an arbitrary value decoded from JSON or built in Go. Map
// keys are written in sorted order.
func EncodeAny(e *jx.Encoder, v any) {
	switch val := v.(type) {
	case nil:
		e.Null()
	case bool:
		e.Bool(val)
	case string:
		e.Str(val)
	case int:
		e.Int(val)
	case int64:
		e.Int64(val)
	case float64:
		e.Float64(val)
	case []string:
		e.Arr(func(e *jx.Encoder) {
			for _, s := range val {
				e.Str(s)
			}
		})
	case []any:
		e.Arr(func(e *jx.Encoder) {
			for _, item := range val {
				EncodeAny(e, item)
			}
		})
	case map[string]any:
		e.Obj(func(e *jx.Encoder) {
			for _, k := range slices.Sorted(maps.Keys(val)) {
				e.Field(k, func(e *jx.Encoder) { EncodeAny(e, val[k]) })
			}
		})
	case domain.IssueData:
		EncodeAny(e, map[string]any(val))
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			e.Null()

			return
		}
		e.Raw(raw)
	}
}

// DecodeAny reads any JSON value into nil, bool, string, float64, []any or
// map[string]any.
func DecodeAny(d *jx.Decoder) (any, error) {
	switch d.Next() {
	case jx.Null:
		return nil, d.Null()
	case jx.Bool:
		return d.Bool()
	case jx.String:
		return d.Str()
	case jx.Number:
		return d.Float64()
	case jx.Array:
		out := []any{}
		err := d.Arr(func(d *jx.Decoder) error {
			v, err := DecodeAny(d)
			if err != nil {
				return err
			}
			out = append(out, v)

			return nil
		})

		return out, err
	case jx.Object:
		out := map[string]any{}
		err := d.Obj(func(d *jx.Decoder, key string) error {
			v, err := DecodeAny(d)
			if err != nil {
				return err
			}
			out[key] = v

			return nil
		})

		return out, err
	default:
		return nil, errors.New("unexpected json value")
	}
}

// EncodeFinding writes a finding object.
func EncodeFinding(e *jx.Encoder, f domain.Finding) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Int64(int64(f.ID)) })
		e.Field("contentId", func(e *jx.Encoder) { e.Int64(int64(f.ContentID)) })
		e.Field("title", func(e *jx.Encoder) { e.Str(f.ContentTitle) })
		e.Field("scanType", func(e *jx.Encoder) { e.Str(string(f.ScanType)) })
		e.Field("issueCode", func(e *jx.Encoder) { e.Str(string(f.IssueCode)) })
		e.Field("severity", func(e *jx.Encoder) { e.Str(string(f.Severity)) })
		e.Field("elementSelector", func(e *jx.Encoder) { e.Str(f.ElementSelector) })
		e.Field("issueData", func(e *jx.Encoder) { EncodeAny(e, f.IssueData) })
		e.Field("scannedAt", func(e *jx.Encoder) { EncodeTime(e, f.ScannedAt) })
		e.Field("resolvedAt", func(e *jx.Encoder) {
			if f.ResolvedAt == nil {
				e.Null()

				return
			}
			EncodeTime(e, *f.ResolvedAt)
		})
	})
}

// EncodeFindings writes an array of findings.
func EncodeFindings(e *jx.Encoder, findings []domain.Finding) {
	e.Arr(func(e *jx.Encoder) {
		for _, f := range findings {
			EncodeFinding(e, f)
		}
	})
}

// EncodeHistory writes a scan history record, or null when h is nil.
func EncodeHistory(e *jx.Encoder, h *domain.ScanHistoryRecord) {
	if h == nil {
		e.Null()

		return
	}
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Int64(h.ID) })
		e.Field("scanType", func(e *jx.Encoder) { e.Str(string(h.ScanType)) })
		e.Field("total", func(e *jx.Encoder) { e.Int(h.Total) })
		e.Field("errors", func(e *jx.Encoder) { e.Int(h.Errors) })
		e.Field("warnings", func(e *jx.Encoder) { e.Int(h.Warnings) })
		e.Field("notices", func(e *jx.Encoder) { e.Int(h.Notices) })
		e.Field("itemsScanned", func(e *jx.Encoder) { e.Int(h.ItemsScanned) })
		e.Field("scannedAt", func(e *jx.Encoder) { EncodeTime(e, h.ScannedAt) })
	})
}
