package ticket_transition_post

import (
	"errors"
	"net/http"

	"courierqueue/internal/handlers/rest/presenter"
	"courierqueue/internal/service/ticket"
	"courierqueue/pkg/logger"
)

// Handler обслуживает POST /tickets/{id}/call и POST /tickets/{id}/settle.
type Handler struct {
	log        handlerLogger
	transition Transition
}

func New(log handlerLogger, action string, transition Transition) *Handler {
	handlerLog := log.With(logger.NewField("action", action))

	return &Handler{
		log:        handlerLog,
		transition: transition,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := presenter.PathID(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.transition(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ticket.ErrInvalidTicketID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, ticket.ErrTicketNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, ticket.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.Error("ticket transition",
				logger.NewField("ticket_id", id),
				logger.NewField("error", err),
			)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := presenter.TicketResult(result)

	presenter.WriteJSON(w, h.log, http.StatusOK, response)
}
