package controller

import (
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "a11yscanner/pkg/controller"

// WithMetrics returns a middleware recording the request count and duration
// of every request served by next, labelled by the matched route pattern and
// the response status. next should be the ServeMux itself so that the pattern
// it matched is visible once it returns.
func WithMetrics(mp metric.MeterProvider, next http.Handler) (http.Handler, error) {
	meter := mp.Meter(meterName)

	requests, err := meter.Int64Counter("http.server.request.count",
		metric.WithDescription("Number of handled HTTP requests."))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of handled HTTP requests."),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		attrs := metric.WithAttributes(
			attribute.String("http.route", route),
			attribute.String("http.request.method", r.Method),
			attribute.String("http.response.status_code", strconv.Itoa(rec.status)),
		)
		requests.Add(r.Context(), 1, attrs)
		duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
	}), nil
}
