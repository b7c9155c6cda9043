// Package v1handler implements the v1 REST API on top of the scanner,
// settings, compliance and export services.
package v1handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"a11yscanner/internal/compliance"
	"a11yscanner/internal/export"
	"a11yscanner/internal/scanner"
	"a11yscanner/internal/settings"
	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/logger"
	"a11yscanner/pkg/serrors"

	faster "github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Deps are the services the handlers call.
type Deps struct {
	Coordinator scanner.Coordinator
	Settings    settings.Service
	Reporter    compliance.Reporter
	Exporter    export.Exporter
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Code    string
	Message string
}

// ErrorResponse is an error mapped to its HTTP status.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

type errorMapping struct {
	kind    serrors.Kind
	status  int
	message string
}

// errorMappings are checked in order, the first matching kind wins.
var errorMappings = []errorMapping{ //nolint: gochecknoglobals
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrForbidden, http.StatusForbidden, "forbidden"},
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrConflict, http.StatusConflict, "conflict"},
	{serrors.ErrRateLimited, http.StatusTooManyRequests, "rate limited"},
	{serrors.ErrNotImplemented, http.StatusNotImplemented, "not implemented"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
	{serrors.ErrTimeout, http.StatusGatewayTimeout, "timeout"},
}

// NewError maps err to an HTTP status and a {code, message} body. Messages of
// internal and storage errors are never exposed.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	for _, m := range errorMappings {
		if !errors.Is(err, m.kind) {
			continue
		}
		logger.Warn(ctx, "request failed", zap.Error(err))

		message := m.message
		var se *serrors.Error
		if errors.As(err, &se) && se.Message() != "" {
			message = se.Message()
		}

		return &ErrorResponse{
			StatusCode: m.status,
			Response:   ErrorBody{Code: m.kind.Error(), Message: message},
		}
	}

	logger.Error(ctx, "request failed", zap.Error(err))

	return &ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Response:   ErrorBody{Code: serrors.ErrInternal.Error(), Message: "internal error"},
	}
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	res := h.NewError(ctx, err)
	writeJSON(w, res.StatusCode, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("code", func(e *jx.Encoder) { e.Str(res.Response.Code) })
			e.Field("message", func(e *jx.Encoder) { e.Str(res.Response.Message) })
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, fn func(e *jx.Encoder)) {
	var e jx.Encoder
	fn(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// decodeBody runs fn over the JSON request body. An empty body is accepted
// and leaves the target untouched.
func decodeBody(r *http.Request, fn func(d *jx.Decoder) error) error {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}
	if len(body) == 0 {
		return nil
	}

	if err := fn(jx.DecodeBytes(body)); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, faster.Wrap(err, "decode request"), "invalid request body")
	}

	return nil
}

// intQuery reads an optional integer query parameter.
func intQuery(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "%s must be an integer", name)
	}

	return n, nil
}

// int64Path reads a positive integer path value.
func int64Path(r *http.Request, name string) (int64, error) {
	n, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || n <= 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "%s must be a positive integer", name)
	}

	return n, nil
}

// Routes registers every v1 operation on a new ServeMux. Paths include the
// /v1 prefix.
func (h *Handler) Routes(sec *SecHandler) *http.ServeMux {
	mux := http.NewServeMux()

	edit := func(fn http.HandlerFunc) http.HandlerFunc {
		return sec.Require(domain.CapabilityEditPosts, h, fn)
	}
	manage := func(fn http.HandlerFunc) http.HandlerFunc {
		return sec.Require(domain.CapabilityManageOptions, h, fn)
	}

	mux.HandleFunc("POST /v1/scans", edit(h.StartScan))
	mux.HandleFunc("POST /v1/scans/background", edit(h.EnqueueScan))
	mux.HandleFunc("GET /v1/scans/{id}", edit(h.GetScan))
	mux.HandleFunc("POST /v1/scans/{id}/batches", edit(h.ProcessBatch))
	mux.HandleFunc("GET /v1/results", edit(h.ListResults))
	mux.HandleFunc("POST /v1/results/{id}/resolve", edit(h.ResolveResult))
	mux.HandleFunc("POST /v1/contents/{id}/rescan", edit(h.RescanContent))

	mux.HandleFunc("GET /v1/reports/summary", manage(h.ReportSummary))
	mux.HandleFunc("GET /v1/reports/export/{format}", manage(h.ExportReport))
	mux.HandleFunc("GET /v1/settings", manage(h.GetSettings))
	mux.HandleFunc("PUT /v1/settings", manage(h.SaveSettings))
	mux.HandleFunc("DELETE /v1/settings", manage(h.ResetSettings))
	mux.HandleFunc("PATCH /v1/settings/modules/{module}", manage(h.UpdateModule))

	return mux
}
