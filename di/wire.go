//go:build wireinject
// +build wireinject

package di

import (
	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/infras/redis"
	"hotelier/shared/cache"
	"hotelier/transport/http"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/router"

	customerRepository "hotelier/internal/domains/customer/repository"
	customerService "hotelier/internal/domains/customer/service"
	customerHandler "hotelier/internal/handlers/customer"

	roomRepository "hotelier/internal/domains/room/repository"
	roomService "hotelier/internal/domains/room/service"
	roomHandler "hotelier/internal/handlers/room"

	bookingRepository "hotelier/internal/domains/booking/repository"
	bookingService "hotelier/internal/domains/booking/service"
	bookingHandler "hotelier/internal/handlers/booking"

	paymentRepository "hotelier/internal/domains/payment/repository"
	paymentService "hotelier/internal/domains/payment/service"
	paymentHandler "hotelier/internal/handlers/payment"

	staffRepository "hotelier/internal/domains/staff/repository"
	staffService "hotelier/internal/domains/staff/service"
	staffHandler "hotelier/internal/handlers/staff"

	maintenanceService "hotelier/internal/domains/maintenance/service"
	maintenanceHandler "hotelier/internal/handlers/maintenance"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAdminMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var maintenanceDomain = wire.NewSet(
	maintenanceService.NewMigrator,
	maintenanceService.New,
)

var domains = wire.NewSet(
	customerDomain,
	roomDomain,
	bookingDomain,
	paymentDomain,
	staffDomain,
	maintenanceDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	customerHandler.New,
	roomHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	staffHandler.New,
	maintenanceHandler.New,
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
