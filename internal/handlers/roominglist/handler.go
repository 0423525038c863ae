package roominglist

import (
	"net/http"
	"strconv"

	"roomlist/infras/otel"
	linkService "roomlist/internal/domains/link/service"
	"roomlist/internal/domains/roominglist/model/dto"
	"roomlist/internal/domains/roominglist/service"
	"roomlist/shared/constant"
	"roomlist/shared/failure"
	"roomlist/shared/validator"
	"roomlist/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service     service.RoomingList
	linkService linkService.Link
	otel        otel.Otel
}

func New(service service.RoomingList, linkService linkService.Link, otel otel.Otel) Handler {
	return Handler{
		service:     service,
		linkService: linkService,
		otel:        otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooming-lists", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRoomingLists)
		routerGroup.Post("/", handler.CreateRoomingList)
		routerGroup.Get("/{id}", handler.GetRoomingListByID)
		routerGroup.Put("/{id}", handler.UpdateRoomingList)
		routerGroup.Delete("/{id}", handler.DeleteRoomingList)
		routerGroup.Get("/{id}/bookings", handler.GetRoomingListBookings)
	})
}

func parseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("invalid " + param + " parameter") //nolint:wrapcheck
	}

	return id, nil
}

// GetRoomingLists retrieves all rooming lists with their event names and booking counts.
func (handler *Handler) GetRoomingLists(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomingLists")
	defer scope.End()

	roomingLists, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooming lists")

		response.WithError(w, err)

		return
	}

	response.WithList(w, http.StatusOK, roomingLists, len(roomingLists))
}

func (handler *Handler) GetRoomingListByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomingListByID")
	defer scope.End()

	id, err := parseID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	roomingList, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooming list by ID")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, roomingList)
}

func (handler *Handler) CreateRoomingList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomingList")
	defer scope.End()

	req := dto.CreateRoomingListRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	roomingList, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create rooming list")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooming list created successfully")

	response.WithMessageData(w, http.StatusCreated, "Rooming list created successfully", roomingList)
}

func (handler *Handler) UpdateRoomingList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomingList")
	defer scope.End()

	id, err := parseID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateRoomingListRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	roomingList, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update rooming list")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooming list updated successfully")

	response.WithMessageData(w, http.StatusOK, "Rooming list updated successfully", roomingList)
}

func (handler *Handler) DeleteRoomingList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoomingList")
	defer scope.End()

	id, err := parseID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	roomingList, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete rooming list")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooming list deleted successfully")

	response.WithMessageData(w, http.StatusOK, "Rooming list deleted successfully", roomingList)
}

// GetRoomingListBookings retrieves all bookings linked to a rooming list.
func (handler *Handler) GetRoomingListBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomingListBookings")
	defer scope.End()

	id, err := parseID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	bookings, err := handler.linkService.GetBookingsForRoomingList(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings for rooming list")

		response.WithError(w, err)

		return
	}

	response.WithList(w, http.StatusOK, bookings, len(bookings))
}
