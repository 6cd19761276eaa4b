package tickets_get

import (
	"errors"
	"net/http"

	"courierqueue/internal/handlers/rest/presenter"
	"courierqueue/internal/service/ticket"
	"courierqueue/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отдает талоны юнита, ?status= сужает выборку до одного статуса.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	unitID := presenter.PathUnit(r)
	status := r.URL.Query().Get("status")

	tickets, err := h.service.List(r.Context(), unitID, status)
	if err != nil {
		switch {
		case errors.Is(err, ticket.ErrMissingRequiredFields),
			errors.Is(err, ticket.ErrInvalidStatusFilter):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.Error("list tickets",
				logger.NewField("unit_id", unitID),
				logger.NewField("error", err),
			)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := presenter.Tickets(tickets)

	presenter.WriteJSON(w, h.log, http.StatusOK, response)
}
