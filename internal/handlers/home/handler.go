package home

import (
	"busticket/shared/constant"
	"busticket/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (h *Handler) Router(r chi.Router) {
	r.Get(constant.PathHome, h.Landing)
}

// Landing handles GET / with a plain liveness text.
func (h *Handler) Landing(w http.ResponseWriter, _ *http.Request) {
	response.WithText(w, http.StatusOK, constant.ResponseLanding)
}
