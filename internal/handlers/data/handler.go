package data

import (
	"net/http"

	"roomlist/infras/otel"
	"roomlist/internal/domains/importer/service"
	"roomlist/shared/constant"
	"roomlist/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Importer
	otel    otel.Otel
}

func New(service service.Importer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/data", func(routerGroup chi.Router) {
		routerGroup.Get("/status", handler.GetDataStatus)
		routerGroup.Post("/insert", handler.InsertData)
		routerGroup.Delete("/clear", handler.ClearData)
	})
}

// GetDataStatus reports row counts for all tables.
func (handler *Handler) GetDataStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDataStatus")
	defer scope.End()

	status, err := handler.service.Status(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get data status")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, status)
}

// InsertData replaces all table contents with the bundled data files in one transaction.
func (handler *Handler) InsertData(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".InsertData")
	defer scope.End()

	result, err := handler.service.Import(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to import data")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Data imported successfully")

	response.WithMessageData(w, http.StatusCreated, "Data inserted successfully", result)
}

// ClearData empties all tables and resets their sequences.
func (handler *Handler) ClearData(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearData")
	defer scope.End()

	if err := handler.service.Clear(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to clear data")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Data cleared successfully")

	response.WithMessage(w, http.StatusOK, "Data cleared successfully")
}
