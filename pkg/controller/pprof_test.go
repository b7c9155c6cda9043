package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"a11yscanner/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestPprofMux(t *testing.T) {
	mux := controller.PprofMux()

	tests := []struct {
		name string
		path string
		want int
	}{
		{"index", controller.PprofPrefix, http.StatusOK},
		{"cmdline", controller.PprofPrefix + "cmdline", http.StatusOK},
		{"named profile", controller.PprofPrefix + "goroutine?debug=1", http.StatusOK},
		{"unknown profile", controller.PprofPrefix + "nope", http.StatusNotFound},
		{"outside prefix", "/cmdline", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://pprof.local"+tt.path, nil)
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			require.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusOK {
				require.NotEmpty(t, rec.Header().Get("Content-Type"))
			}
		})
	}
}
