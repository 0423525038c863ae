//go:build wireinject
// +build wireinject

package di

import (
	"roomlist/config"
	"roomlist/infras/jwt"
	"roomlist/infras/otel"
	"roomlist/infras/postgres"
	"roomlist/infras/redis"
	"roomlist/shared/cache"
	"roomlist/transport/http"
	"roomlist/transport/http/middleware"
	"roomlist/transport/http/router"

	"github.com/google/wire"

	authService "roomlist/internal/domains/auth/service"
	bookingRepository "roomlist/internal/domains/booking/repository"
	bookingService "roomlist/internal/domains/booking/service"
	eventRepository "roomlist/internal/domains/event/repository"
	eventService "roomlist/internal/domains/event/service"
	importerRepository "roomlist/internal/domains/importer/repository"
	importerService "roomlist/internal/domains/importer/service"
	linkRepository "roomlist/internal/domains/link/repository"
	linkService "roomlist/internal/domains/link/service"
	roomingListRepository "roomlist/internal/domains/roominglist/repository"
	roomingListService "roomlist/internal/domains/roominglist/service"
	userRepository "roomlist/internal/domains/user/repository"

	authHandler "roomlist/internal/handlers/auth"
	bookingHandler "roomlist/internal/handlers/booking"
	dataHandler "roomlist/internal/handlers/data"
	eventHandler "roomlist/internal/handlers/event"
	healthHandler "roomlist/internal/handlers/health"
	roomingListHandler "roomlist/internal/handlers/roominglist"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var eventDomain = wire.NewSet(
	eventRepository.New,
	eventService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var roomingListDomain = wire.NewSet(
	roomingListRepository.New,
	roomingListService.New,
)

var linkDomain = wire.NewSet(
	linkRepository.New,
	linkService.New,
)

var importerDomain = wire.NewSet(
	importerRepository.New,
	importerService.New,
)

var domains = wire.NewSet(
	authDomain,
	eventDomain,
	bookingDomain,
	roomingListDomain,
	linkDomain,
	importerDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	eventHandler.New,
	bookingHandler.New,
	roomingListHandler.New,
	dataHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
