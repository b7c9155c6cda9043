package v1handler

import (
	"net/http"

	"a11yscanner/internal/scanner"
	"a11yscanner/pkg/codec"
	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/serrors"
	"a11yscanner/pkg/storage"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// decodeStartRequest reads {scanType, excludedTypes, maxItems, batchSize}.
func decodeStartRequest(d *jx.Decoder, req *scanner.StartRequest) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "scanType":
			req.ScanType, err = d.Str()
		case "excludedTypes":
			req.ExcludedTypes, err = codec.DecodeStrings(d)
		case "maxItems":
			req.MaxItems, err = d.Int()
		case "batchSize":
			req.BatchSize, err = d.Int()
		default:
			err = d.Skip()
		}

		return errors.Wrap(err, key)
	})
}

// startRequest decodes the body and fills the remaining fields from the stored
// scanner settings.
func (h *Handler) startRequest(r *http.Request) (scanner.StartRequest, error) {
	var req scanner.StartRequest
	if err := decodeBody(r, func(d *jx.Decoder) error { return decodeStartRequest(d, &req) }); err != nil {
		return req, err
	}

	current, err := h.deps.Settings.Get(r.Context())
	if err != nil {
		return req, err //nolint: wrapcheck
	}

	return req.ApplySettings(current.Scanner), nil
}

func encodeSession(e *jx.Encoder, s *domain.ScanSession) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("scanSessionId", func(e *jx.Encoder) { e.Str(s.ID.String()) })
		e.Field("scanType", func(e *jx.Encoder) { e.Str(string(s.ScanType)) })
		e.Field("state", func(e *jx.Encoder) { e.Str(string(s.State)) })
		e.Field("totalBatches", func(e *jx.Encoder) { e.Int(s.TotalBatches) })
		e.Field("batchSize", func(e *jx.Encoder) { e.Int(s.BatchSize) })
		e.Field("currentBatch", func(e *jx.Encoder) { e.Int(s.CurrentBatch) })
		e.Field("totalItems", func(e *jx.Encoder) { e.Int(s.TotalItems) })
		e.Field("scannedItems", func(e *jx.Encoder) { e.Int(s.ScannedItems) })
		e.Field("progress", func(e *jx.Encoder) { e.Int(s.ProgressPercent()) })
		e.Field("contentTypes", func(e *jx.Encoder) { codec.EncodeAny(e, s.ContentTypes) })
		e.Field("startedAt", func(e *jx.Encoder) { codec.EncodeTime(e, s.StartedAt) })
		e.Field("expiresAt", func(e *jx.Encoder) { codec.EncodeTime(e, s.ExpiresAt) })
	})
}

// StartScan creates a scan session.
func (h *Handler) StartScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := h.startRequest(r)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	session, err := h.deps.Coordinator.Start(ctx, req)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) { encodeSession(e, session) })
}

// GetScan reports the progress of a live session.
func (h *Handler) GetScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	scanID, err := domain.ParseScanID(r.PathValue("id"))
	if err != nil {
		h.writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid scan id"))

		return
	}

	session, err := h.deps.Coordinator.Progress(ctx, scanID)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeSession(e, session) })
}

// ProcessBatch processes the batch named in the body, {"batchIndex": n}.
func (h *Handler) ProcessBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	scanID, err := domain.ParseScanID(r.PathValue("id"))
	if err != nil {
		h.writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid scan id"))

		return
	}

	batch := -1
	err = decodeBody(r, func(d *jx.Decoder) error {
		return d.Obj(func(d *jx.Decoder, key string) error {
			if key != "batchIndex" {
				return d.Skip()
			}
			n, err := d.Int()
			batch = n

			return errors.Wrap(err, key)
		})
	})
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}
	if batch < 0 {
		h.writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "batchIndex must be a non-negative integer"))

		return
	}

	res, err := h.deps.Coordinator.ProcessBatch(ctx, scanID, batch)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("batchIndex", func(e *jx.Encoder) { e.Int(res.BatchIndex) })
			e.Field("itemsProcessed", func(e *jx.Encoder) { e.Int(res.ItemsProcessed) })
			e.Field("issuesFound", func(e *jx.Encoder) { e.Int(res.IssuesFound) })
			e.Field("complete", func(e *jx.Encoder) { e.Bool(res.Complete) })
			e.Field("progress", func(e *jx.Encoder) { e.Int(res.Progress) })
			e.Field("history", func(e *jx.Encoder) { codec.EncodeHistory(e, res.History) })
		})
	})
}

// EnqueueScan submits a background scan.
func (h *Handler) EnqueueScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req scanner.StartRequest
	if err := decodeBody(r, func(d *jx.Decoder) error { return decodeStartRequest(d, &req) }); err != nil {
		h.writeError(ctx, w, err)

		return
	}

	enqueued, err := h.deps.Coordinator.EnqueueScan(ctx, req)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeEnqueued(w, enqueued)
}

// RescanContent submits a background rescan of one content item.
func (h *Handler) RescanContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := int64Path(r, "id")
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	enqueued, err := h.deps.Coordinator.EnqueueRescan(ctx, domain.ContentID(id))
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeEnqueued(w, enqueued)
}

func writeEnqueued(w http.ResponseWriter, enqueued bool) {
	writeJSON(w, http.StatusAccepted, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("enqueued", func(e *jx.Encoder) { e.Bool(enqueued) })
		})
	})
}

// ListResults returns one page of findings, ?page=&per_page=&severity=.
func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := intQuery(r, "page", 1)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}
	perPage, err := intQuery(r, "per_page", scanner.DefaultPerPage)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	res, err := h.deps.Coordinator.Results(ctx, storage.FindingQuery{
		Page:     page,
		PerPage:  perPage,
		Severity: domain.Severity(r.URL.Query().Get("severity")),
	})
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("results", func(e *jx.Encoder) { codec.EncodeFindings(e, res.Findings) })
			e.Field("total", func(e *jx.Encoder) { e.Int(res.Total) })
			e.Field("page", func(e *jx.Encoder) { e.Int(res.Page) })
			e.Field("perPage", func(e *jx.Encoder) { e.Int(res.PerPage) })
			e.Field("totalPages", func(e *jx.Encoder) { e.Int(res.TotalPages) })
		})
	})
}

// ResolveResult marks a finding as resolved.
func (h *Handler) ResolveResult(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := int64Path(r, "id")
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	if err := h.deps.Coordinator.Resolve(ctx, domain.FindingID(id)); err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("success", func(e *jx.Encoder) { e.Bool(true) })
		})
	})
}
