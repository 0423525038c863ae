package event

import (
	"net/http"
	"strconv"

	"roomlist/infras/otel"
	"roomlist/internal/domains/event/model/dto"
	"roomlist/internal/domains/event/service"
	roomingListService "roomlist/internal/domains/roominglist/service"
	"roomlist/shared/constant"
	gDto "roomlist/shared/dto"
	"roomlist/shared/failure"
	"roomlist/shared/validator"
	"roomlist/transport/http/middleware"
	"roomlist/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service            service.Event
	roomingListService roomingListService.RoomingList
	middleware         middleware.Auth
	otel               otel.Otel
}

func New(service service.Event, roomingListService roomingListService.RoomingList, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:            service,
		roomingListService: roomingListService,
		middleware:         middleware,
		otel:               otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/events", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetEvents)
		routerGroup.Post("/", handler.CreateEvent)
		routerGroup.Get("/{id}", handler.GetEventByID)
		routerGroup.Put("/{id}", handler.UpdateEvent)
		routerGroup.Delete("/{id}", handler.DeleteEvent)
		routerGroup.With(handler.middleware.Auth).Get("/{id}/rooming-lists", handler.GetEventRoomingLists)
	})
}

func parseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("invalid " + param + " parameter") //nolint:wrapcheck
	}

	return id, nil
}

func (handler *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEvents")
	defer scope.End()

	events, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get events")

		response.WithError(w, err)

		return
	}

	response.WithList(w, http.StatusOK, events, len(events))
}

func (handler *Handler) GetEventByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventByID")
	defer scope.End()

	id, err := parseID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	event, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get event by ID")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, event)
}

func (handler *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEvent")
	defer scope.End()

	req := dto.CreateEventRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	event, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create event")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event created successfully")

	response.WithMessageData(w, http.StatusCreated, "Event created successfully", event)
}

func (handler *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEvent")
	defer scope.End()

	id, err := parseID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateEventRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	event, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update event")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event updated successfully")

	response.WithMessageData(w, http.StatusOK, "Event updated successfully", event)
}

func (handler *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEvent")
	defer scope.End()

	id, err := parseID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	event, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete event")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event deleted successfully")

	response.WithMessageData(w, http.StatusOK, "Event deleted successfully", event)
}

func (handler *Handler) GetEventRoomingLists(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventRoomingLists")
	defer scope.End()

	id, err := parseID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	var params gDto.QueryParams

	params.FromRequest(r, false)

	roomingLists, err := handler.roomingListService.GetByEvent(ctx, id, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooming lists for event")

		response.WithError(w, err)

		return
	}

	response.WithList(w, http.StatusOK, roomingLists, len(roomingLists))
}
