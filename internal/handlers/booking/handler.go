package booking

import (
	"net/http"
	"strconv"

	"roomlist/infras/otel"
	"roomlist/internal/domains/booking/model/dto"
	"roomlist/internal/domains/booking/service"
	linkService "roomlist/internal/domains/link/service"
	"roomlist/shared/constant"
	"roomlist/shared/failure"
	"roomlist/shared/validator"
	"roomlist/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service     service.Booking
	linkService linkService.Link
	otel        otel.Otel
}

func New(service service.Booking, linkService linkService.Link, otel otel.Otel) Handler {
	return Handler{
		service:     service,
		linkService: linkService,
		otel:        otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
		routerGroup.Get("/{id}/rooming-lists", handler.GetBookingRoomingLists)
		routerGroup.Post("/{bookingId}/rooming-lists/{roomingListId}", handler.LinkRoomingList)
		routerGroup.Delete("/{bookingId}/rooming-lists/{roomingListId}", handler.UnlinkRoomingList)
	})
}

func parseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("invalid " + param + " parameter") //nolint:wrapcheck
	}

	return id, nil
}

// GetBookings retrieves all bookings with their event names, ordered by check-in date.
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithList(w, http.StatusOK, bookings, len(bookings))
}

func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id, err := parseID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, booking)
}

func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithMessageData(w, http.StatusCreated, "Booking created successfully", booking)
}

func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id, err := parseID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking updated successfully")

	response.WithMessageData(w, http.StatusOK, "Booking updated successfully", booking)
}

func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id, err := parseID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking deleted successfully")

	response.WithMessageData(w, http.StatusOK, "Booking deleted successfully", booking)
}

// GetBookingRoomingLists retrieves all rooming lists linked to a booking.
func (handler *Handler) GetBookingRoomingLists(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingRoomingLists")
	defer scope.End()

	id, err := parseID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	roomingLists, err := handler.linkService.GetRoomingListsForBooking(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooming lists for booking")

		response.WithError(w, err)

		return
	}

	response.WithList(w, http.StatusOK, roomingLists, len(roomingLists))
}

func (handler *Handler) LinkRoomingList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LinkRoomingList")
	defer scope.End()

	bookingID, err := parseID(r, constant.RequestParamBookingID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	roomingListID, err := parseID(r, constant.RequestParamRoomingListID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	link, err := handler.linkService.Link(ctx, bookingID, roomingListID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to link booking to rooming list")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking linked to rooming list successfully")

	response.WithMessageData(w, http.StatusCreated, "Booking linked to rooming list successfully", link)
}

func (handler *Handler) UnlinkRoomingList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnlinkRoomingList")
	defer scope.End()

	bookingID, err := parseID(r, constant.RequestParamBookingID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	roomingListID, err := parseID(r, constant.RequestParamRoomingListID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.linkService.Unlink(ctx, bookingID, roomingListID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to unlink booking from rooming list")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking unlinked from rooming list successfully")

	response.WithMessage(w, http.StatusOK, "Booking unlinked from rooming list successfully")
}
