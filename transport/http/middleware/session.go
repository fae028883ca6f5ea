package middleware

import (
	"busticket/config"
	"busticket/infras/otel"
	"busticket/internal/domains/session/service"
	"busticket/shared/constant"
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Session guards pages that need a logged-in account.
type Session interface {
	RequireSession(next http.Handler) http.Handler
}

type sessionImpl struct {
	session service.Session
	otel    otel.Otel
	cfg     *config.Config
}

func NewSessionMiddleware(session service.Session, otel otel.Otel, cfg *config.Config) Session {
	return &sessionImpl{
		session: session,
		otel:    otel,
		cfg:     cfg,
	}
}

// RequireSession resolves the session cookie into the caller's email and stores it in the request context.
// Requests without a live session are redirected to the login page.
func (m *sessionImpl) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelMiddlewareScopeName, constant.OtelMiddlewareScopeName+".RequireSession")

		cookie, err := request.Cookie(m.cfg.App.Session.CookieName)
		if err != nil {
			scope.End()
			http.Redirect(writer, request, constant.PathLogin, http.StatusFound)

			return
		}

		email, err := m.session.Resolve(ctx, cookie.Value)
		if err != nil {
			log.Debug().Err(err).Str("path", request.URL.Path).Msg("session rejected")
			scope.End()
			http.Redirect(writer, request, constant.PathLogin, http.StatusFound)

			return
		}

		scope.End()

		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, email)
		ctx = context.WithValue(ctx, constant.ContextKeySessionToken, cookie.Value)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
