package queue_get

import (
	"errors"
	"net/http"

	"courierqueue/internal/handlers/rest/presenter"
	"courierqueue/internal/service/courier"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	unitID := presenter.PathUnit(r)

	view, err := h.service.Queue(r.Context(), unitID)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrInvalidUnit):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.Error("get queue",
				logger.NewField("unit_id", unitID),
				logger.NewField("error", err),
			)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := presenter.Queue(view)

	presenter.WriteJSON(w, h.log, http.StatusOK, response)
}
