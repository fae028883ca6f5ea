package http

import (
	"busticket/config"
	otelMocks "busticket/infras/otel/mocks"
	sessionMocks "busticket/internal/domains/session/mocks"
	"busticket/internal/handlers/home"
	"busticket/shared/constant"
	"busticket/transport/http/middleware"
	"busticket/transport/http/router"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T) *HTTP {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Session.CookieName = "session"
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://tickets.example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	ot := otelMocks.NewOtel()
	sessionMock := sessionMocks.NewMockSession(gomock.NewController(t))

	r := router.New(
		cfg,
		router.DomainHandlers{Home: home.New()},
		middleware.NewAppMiddleware(ot, cfg),
		middleware.NewSessionMiddleware(sessionMock, ot, cfg),
	)

	return New(cfg, r)
}

func get(h *HTTP, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestHealth_FollowsServerState(t *testing.T) {
	h := newTestServer(t)

	rec := get(h, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ServerStateReady, h.State())

	h.setState(ServerStateInGracePeriod)
	rec = get(h, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, constant.ResponseErrorPrepareShutdown, rec.Body.String())

	h.setState(ServerStateInCleanupPeriod)
	rec = get(h, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, constant.ResponseErrorUnhealthy, rec.Body.String())
}

func TestRoutes(t *testing.T) {
	h := newTestServer(t)

	t.Run("landing", func(t *testing.T) {
		rec := get(h, "/")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constant.ResponseLanding, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get("Content-Type"))
	})

	t.Run("metrics", func(t *testing.T) {
		rec := get(h, "/metrics")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "busticket_http_requests_total")
	})

	t.Run("booking pages need a session", func(t *testing.T) {
		for _, path := range []string{"/dashboard", "/booking", "/view_bookings", "/edit_booking/1", "/ticket/1"} {
			rec := get(h, path)

			assert.Equal(t, http.StatusFound, rec.Code, path)
			assert.Equal(t, constant.PathLogin, rec.Header().Get("Location"), path)
		}
	})

	t.Run("non numeric booking id", func(t *testing.T) {
		rec := get(h, "/edit_booking/abc")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/login", nil)
		req.Header.Set("Origin", "https://tickets.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "https://tickets.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
