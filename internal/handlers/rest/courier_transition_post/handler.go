package courier_transition_post

import (
	"errors"
	"net/http"

	"courierqueue/internal/handlers/rest/presenter"
	"courierqueue/internal/service/courier"
	"courierqueue/internal/service/dispatch"
	"courierqueue/pkg/logger"
)

// Handler обслуживает POST /courier/{id}/<action> для действий без тела запроса.
type Handler struct {
	log        handlerLogger
	action     string
	transition Transition
}

func New(log handlerLogger, action string, transition Transition) *Handler {
	handlerLog := log.With(logger.NewField("action", action))

	return &Handler{
		log:        handlerLog,
		action:     action,
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
		case errors.Is(err, courier.ErrInvalidCourierID),
			errors.Is(err, dispatch.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, courier.ErrInvalidTransition),
			errors.Is(err, courier.ErrCourierSuspended):
			h.log.Info("transition rejected",
				logger.NewField("courier_id", id),
				logger.NewField("reason", err.Error()),
			)
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.Error("courier transition",
				logger.NewField("courier_id", id),
				logger.NewField("error", err),
			)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := presenter.Transition(result)

	presenter.WriteJSON(w, h.log, http.StatusOK, response)
}
