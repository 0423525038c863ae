package health

import (
	"net/http"

	"roomlist/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (h *Handler) Router(r chi.Router) {
	r.Get("/health", h.Health)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.WithData(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
