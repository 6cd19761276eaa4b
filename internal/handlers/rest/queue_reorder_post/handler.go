package queue_reorder_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"courierqueue/internal/generated/dto"
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
	var reorderDTO dto.ReorderRequest
	err := json.NewDecoder(r.Body).Decode(&reorderDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	unitID := presenter.PathUnit(r)

	view, err := h.service.Reorder(r.Context(), unitID, reorderDTO.IDs)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrInvalidUnit),
			errors.Is(err, courier.ErrInvalidReorder):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.Error("reorder queue",
				logger.NewField("unit_id", unitID),
				logger.NewField("error", err),
			)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.log.Info("queue reordered",
		logger.NewField("unit_id", unitID),
		logger.NewField("ids", reorderDTO.IDs),
	)

	response := presenter.Queue(view)

	presenter.WriteJSON(w, h.log, http.StatusOK, response)
}
