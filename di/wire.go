//go:build wireinject
// +build wireinject

package di

import (
	"busticket/config"
	"busticket/infras/jwt"
	"busticket/shared/cache"
	"busticket/transport/http"
	"busticket/transport/http/middleware"
	"busticket/transport/http/router"

	accountRepository "busticket/internal/domains/account/repository"
	accountService "busticket/internal/domains/account/service"
	bookingRepository "busticket/internal/domains/booking/repository"
	bookingService "busticket/internal/domains/booking/service"
	"busticket/internal/domains/booking/ticket"
	sessionService "busticket/internal/domains/session/service"

	accountHandler "busticket/internal/handlers/account"
	bookingHandler "busticket/internal/handlers/booking"
	homeHandler "busticket/internal/handlers/home"

	"github.com/google/wire"
	goRedis "github.com/redis/go-redis/v9"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	providePostgres,
	provideOtel,
	provideRedis,
	wire.Bind(new(goRedis.UniversalClient), new(*goRedis.Client)),
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewSessionMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var accountDomain = wire.NewSet(
	accountRepository.New,
	accountService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	ticket.New,
)

var sessionDomain = wire.NewSet(
	sessionService.New,
)

var domains = wire.NewSet(
	accountDomain,
	bookingDomain,
	sessionDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	homeHandler.New,
	accountHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func()) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return nil, nil
}
