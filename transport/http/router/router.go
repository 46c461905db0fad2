package router

import (
	"hotelier/internal/handlers/booking"
	"hotelier/internal/handlers/customer"
	"hotelier/internal/handlers/maintenance"
	"hotelier/internal/handlers/payment"
	"hotelier/internal/handlers/room"
	"hotelier/internal/handlers/staff"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Customer    customer.Handler
	Room        room.Handler
	Booking     booking.Handler
	Payment     payment.Handler
	Staff       staff.Handler
	Maintenance maintenance.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.Maintenance.Router(routerGroup)
	})

	router.Get("/swagger/*", httpSwagger.WrapHandler)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
