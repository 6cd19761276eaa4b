package courier_get

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
	return &Handler{
		service: service,
		log:     log.With(logger.NewField("handler", "courier_get")),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := presenter.PathID(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierEntity, err := h.service.GetCourier(r.Context(), id)
	switch {
	case err == nil:
		presenter.WriteJSON(w, h.log, http.StatusOK, presenter.Courier(courierEntity))
	case errors.Is(err, courier.ErrCourierNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, courier.ErrInvalidCourierID):
		w.WriteHeader(http.StatusBadRequest)
	default:
		h.log.Error("get courier", logger.NewField("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}
