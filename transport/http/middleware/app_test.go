package middleware_test

import (
	"busticket/config"
	otelMocks "busticket/infras/otel/mocks"
	"busticket/shared/metrics"
	"busticket/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppRouter() *chi.Mux {
	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{})

	router := chi.NewRouter()
	router.Use(mw.Logger, mw.Tracing, mw.Metrics)
	router.Get("/ticket/{id:[0-9]+}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	router.Get("/ok", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	return router
}

func requestCount(t *testing.T, method, route, code string) float64 {
	t.Helper()

	var m dto.Metric
	require.NoError(t, metrics.HTTPRequests.WithLabelValues(method, route, code).Write(&m))

	return m.GetCounter().GetValue()
}

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	router := newAppRouter()
	before := requestCount(t, http.MethodGet, "/ticket/{id:[0-9]+}", "418")

	for _, path := range []string{"/ticket/1", "/ticket/2"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.Equal(t, before+2, requestCount(t, http.MethodGet, "/ticket/{id:[0-9]+}", "418"))
}

func TestMetrics_ImplicitOK(t *testing.T) {
	router := newAppRouter()
	before := requestCount(t, http.MethodGet, "/ok", "200")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, "ok", rec.Body.String())
	assert.Equal(t, before+1, requestCount(t, http.MethodGet, "/ok", "200"))
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	router := newAppRouter()
	before := requestCount(t, http.MethodGet, "unmatched", "404")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ticket/abc", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, before+1, requestCount(t, http.MethodGet, "unmatched", "404"))
}
