package account

import (
	"busticket/config"
	"busticket/infras/otel"
	"busticket/internal/domains/account/model/dto"
	"busticket/internal/domains/account/service"
	sessionService "busticket/internal/domains/session/service"
	"busticket/shared/constant"
	"busticket/shared/failure"
	"busticket/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	pathRegister = "/register"
	pathLogout   = "/logout"

	messageRegistered = "Registered successfully! You can login now."
)

type Handler struct {
	service service.Account
	session sessionService.Session
	config  *config.Config
	otel    otel.Otel
}

func New(service service.Account, session sessionService.Session, config *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		session: session,
		config:  config,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get(pathRegister, handler.RegisterPage)
	r.Post(pathRegister, handler.Register)
	r.Get(constant.PathLogin, handler.LoginPage)
	r.Post(constant.PathLogin, handler.Login)
	r.Get(pathLogout, handler.Logout)
}

// RegisterPage handles GET /register.
func (handler *Handler) RegisterPage(w http.ResponseWriter, _ *http.Request) {
	response.WithPage(w, http.StatusOK, response.PageRegister, response.View{Title: "Register"})
}

// Register handles POST /register. Validation and duplicate email failures are shown on the form.
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}
	req.FromRequest(r)

	if err := handler.service.Register(ctx, req); err != nil {
		scope.TraceError(err)

		if failure.IsFailure(err) {
			response.WithPage(w, failure.GetCode(err), response.PageRegister, response.View{Title: "Register", Message: err.Error()})

			return
		}

		log.Error().Err(err).Msg("failed to register account")
		response.WithError(w, err)

		return
	}

	scope.AddEvent("Account registered")

	response.WithPage(w, http.StatusOK, response.PageRegister, response.View{Title: "Register", Message: messageRegistered})
}

// LoginPage handles GET /login.
func (handler *Handler) LoginPage(w http.ResponseWriter, _ *http.Request) {
	response.WithPage(w, http.StatusOK, response.PageLogin, response.View{Title: "Login"})
}

// Login handles POST /login. A successful login sets the session cookie and redirects to the dashboard.
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}
	req.FromRequest(r)

	email, err := handler.service.Authenticate(ctx, req)
	if err != nil {
		scope.TraceError(err)

		if failure.IsFailure(err) {
			response.WithPage(w, failure.GetCode(err), response.PageLogin, response.View{Title: "Login", Message: err.Error()})

			return
		}

		log.Error().Err(err).Msg("failed to authenticate")
		response.WithError(w, err)

		return
	}

	session, err := handler.session.Start(ctx, email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start session")

		response.WithError(w, err)

		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     handler.config.App.Session.CookieName,
		Value:    session.Token,
		Path:     constant.PathHome,
		Expires:  session.ExpiresAt,
		MaxAge:   int(session.ExpiresIn),
		HttpOnly: true,
		Secure:   handler.config.App.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, constant.PathDashboard, http.StatusFound)
}

// Logout handles GET /logout. It always clears the cookie, even when the session was already gone.
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	if cookie, err := r.Cookie(handler.config.App.Session.CookieName); err == nil {
		if err = handler.session.End(ctx, cookie.Value); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to end session")
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     handler.config.App.Session.CookieName,
		Value:    constant.Empty,
		Path:     constant.PathHome,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   handler.config.App.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, constant.PathHome, http.StatusFound)
}
