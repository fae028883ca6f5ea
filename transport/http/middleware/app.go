package middleware

import (
	"busticket/config"
	"busticket/infras/otel"
	"busticket/shared/constant"
	"busticket/shared/metrics"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

const (
	otelHTTPScopeName = "http"
	unmatchedRoute    = "unmatched"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	Logger(next http.Handler) http.Handler
	Metrics(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
}

func NewAppMiddleware(otel otel.Otel, config *config.Config) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
	}
}

// routePattern is only known once chi has routed the request.
func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.RoutePattern() == "" {
		return unmatchedRoute
	}

	return rctx.RoutePattern()
}

func wrap(writer http.ResponseWriter, request *http.Request) chiMiddleware.WrapResponseWriter {
	if ww, ok := writer.(chiMiddleware.WrapResponseWriter); ok {
		return ww
	}

	return chiMiddleware.NewWrapResponseWriter(writer, request.ProtoMajor)
}

func status(ww chiMiddleware.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}

	return ww.Status()
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		spanName := fmt.Sprintf("%s %s", request.Method, request.URL.Path)

		ctx, scope := a.otel.NewScope(request.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
			"http.user_agent": request.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       request.Host,
			"http.source":     request.RemoteAddr,
			"http.request_id": chiMiddleware.GetReqID(ctx),
		})

		ww := wrap(writer, request)
		next.ServeHTTP(ww, request.WithContext(ctx))

		scope.SetAttributes(map[string]any{
			"http.route":       routePattern(request),
			"http.status_code": status(ww),
		})

		if status(ww) >= http.StatusInternalServerError {
			scope.TraceError(fmt.Errorf("request failed with status %d", status(ww)))
		}
	})
}

func (a *appMiddleware) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		start := time.Now()
		ww := wrap(writer, request)

		next.ServeHTTP(ww, request)

		event := log.Info()
		if status(ww) >= http.StatusInternalServerError {
			event = log.Error()
		}

		event.
			Str("request_id", chiMiddleware.GetReqID(request.Context())).
			Str("method", request.Method).
			Str("route", routePattern(request)).
			Str("path", request.URL.Path).
			Int("status", status(ww)).
			Int("bytes", ww.BytesWritten()).
			Dur("latency", time.Since(start)).
			Msg("request handled")
	})
}

func (a *appMiddleware) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		start := time.Now()
		ww := wrap(writer, request)

		next.ServeHTTP(ww, request)

		route := routePattern(request)

		metrics.HTTPRequests.WithLabelValues(request.Method, route, strconv.Itoa(status(ww))).Inc()
		metrics.HTTPDuration.WithLabelValues(request.Method, route).Observe(time.Since(start).Seconds())
	})
}
