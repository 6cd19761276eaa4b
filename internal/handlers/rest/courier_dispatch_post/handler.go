package courier_dispatch_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"

	"courierqueue/internal/entities"
	"courierqueue/internal/generated/dto"
	"courierqueue/internal/handlers/rest/presenter"
	"courierqueue/internal/service/courier"
	"courierqueue/internal/service/dispatch"
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
	id, err := presenter.PathID(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var dispatchDTO dto.DispatchRequest
	err = json.NewDecoder(r.Body).Decode(&dispatchDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	request := entities.DispatchRequest{
		CourierID:     id,
		DeliveryCount: dispatchDTO.DeliveryCount,
		BagType:       dispatchDTO.Bag,
		HasBeverage:   pointer.Get(dispatchDTO.HasBeverage),
	}

	result, err := h.service.Dispatch(r.Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidCourierID),
			errors.Is(err, dispatch.ErrInvalidDeliveryCount),
			errors.Is(err, dispatch.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, courier.ErrInvalidTransition),
			errors.Is(err, courier.ErrCourierSuspended):
			h.log.Info("dispatch rejected",
				logger.NewField("courier_id", id),
				logger.NewField("reason", err.Error()),
			)
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.Error("dispatch courier",
				logger.NewField("courier_id", id),
				logger.NewField("error", err),
			)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := presenter.Dispatch(result)

	presenter.WriteJSON(w, h.log, http.StatusOK, response)
}
