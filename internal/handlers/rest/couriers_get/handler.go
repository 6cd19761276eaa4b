package couriers_get

import (
	"net/http"

	"courierqueue/internal/handlers/rest/presenter"
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

// ServeHTTP отдает всех курьеров, либо курьеров одного юнита из ?unit=.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	unitID := r.URL.Query().Get("unit")

	courierEntities, err := h.service.GetCouriers(r.Context(), unitID)
	if err != nil {
		h.log.Error("get couriers",
			logger.NewField("unit_id", unitID),
			logger.NewField("error", err),
		)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	courierDTOs := presenter.Couriers(courierEntities)

	presenter.WriteJSON(w, h.log, http.StatusOK, courierDTOs)
}
