package router

import (
	"busticket/config"
	"busticket/internal/handlers/account"
	"busticket/internal/handlers/booking"
	"busticket/internal/handlers/home"
	"busticket/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const pathMetrics = "/metrics"

type DomainHandlers struct {
	Home    home.Handler
	Account account.Handler
	Booking booking.Handler
}

type Router struct {
	Config         *config.Config
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	Session        middleware.Session
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		chiMiddleware.RequestID,
		chiMiddleware.RealIP,
		r.App.Logger,
		chiMiddleware.Recoverer,
		r.App.Tracing,
		r.App.Metrics,
	)

	if corsConfig := r.Config.App.CORS; corsConfig.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsConfig.AllowedOrigins,
			AllowedMethods:   corsConfig.AllowedMethods,
			AllowedHeaders:   corsConfig.AllowedHeaders,
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAgeSeconds,
		}))
	}

	router.Handle(pathMetrics, promhttp.Handler())

	r.DomainHandlers.Home.Router(router)
	r.DomainHandlers.Account.Router(router)

	router.Group(func(protected chi.Router) {
		protected.Use(r.Session.RequireSession)
		r.DomainHandlers.Booking.Router(protected)
	})
}

func New(config *config.Config, domainHandlers DomainHandlers, app middleware.AppMiddleware, session middleware.Session) Router {
	return Router{
		Config:         config,
		DomainHandlers: domainHandlers,
		App:            app,
		Session:        session,
	}
}
