package router

import (
	"net/http"

	"roomlist/internal/handlers/auth"
	"roomlist/internal/handlers/booking"
	"roomlist/internal/handlers/data"
	"roomlist/internal/handlers/event"
	"roomlist/internal/handlers/health"
	"roomlist/internal/handlers/roominglist"
	"roomlist/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Event       event.Handler
	Booking     booking.Handler
	RoomingList roominglist.Handler
	Data        data.Handler
	Health      health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithRouteNotFound(w)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithRouteNotFound(w)
	})

	r.DomainHandlers.Health.Router(router)

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Event.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.RoomingList.Router(routerGroup)
		r.DomainHandlers.Data.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
