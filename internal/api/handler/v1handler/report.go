package v1handler

import (
	"net/http"
	"strings"

	"a11yscanner/internal/export"
	"a11yscanner/pkg/codec"

	"github.com/go-faster/jx"
)

// ReportSummary returns the compliance score, the latest scan and quick stats.
func (h *Handler) ReportSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.deps.Reporter.Summary(ctx)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("compliance", func(e *jx.Encoder) {
				e.Obj(func(e *jx.Encoder) {
					e.Field("score", func(e *jx.Encoder) { e.Int(summary.Score) })
					e.Field("level", func(e *jx.Encoder) { e.Str(string(summary.Level)) })
				})
			})
			e.Field("scan", func(e *jx.Encoder) {
				s := summary.Scan
				e.Obj(func(e *jx.Encoder) {
					e.Field("last_scan", func(e *jx.Encoder) {
						if s.LastScan == nil {
							e.Null()

							return
						}
						codec.EncodeTime(e, *s.LastScan)
					})
					e.Field("total_issues", func(e *jx.Encoder) { e.Int(s.TotalIssues) })
					e.Field("errors", func(e *jx.Encoder) { e.Int(s.Errors) })
					e.Field("warnings", func(e *jx.Encoder) { e.Int(s.Warnings) })
					e.Field("notices", func(e *jx.Encoder) { e.Int(s.Notices) })
					e.Field("posts_scanned", func(e *jx.Encoder) { e.Int(s.PostsScanned) })
				})
			})
			e.Field("stats", func(e *jx.Encoder) {
				e.Obj(func(e *jx.Encoder) {
					e.Field("total_content", func(e *jx.Encoder) { e.Int(summary.QuickStats.TotalContent) })
					e.Field("images_without_alt", func(e *jx.Encoder) { e.Int(summary.QuickStats.ImagesWithoutAlt) })
				})
			})
			e.Field("settings", func(e *jx.Encoder) {
				e.Obj(func(e *jx.Encoder) {
					e.Field("modules_enabled", func(e *jx.Encoder) {
						e.Arr(func(e *jx.Encoder) {
							for _, kind := range summary.EnabledModules {
								e.Str(strings.TrimPrefix(string(kind), "module_"))
							}
						})
					})
				})
			})
		})
	})
}

// ExportReport downloads every finding as json or csv.
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	format, err := export.ParseFormat(r.PathValue("format"))
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	doc, err := h.deps.Exporter.Export(ctx, format)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Body)
}
