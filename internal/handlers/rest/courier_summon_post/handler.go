package courier_summon_post

import (
	"encoding/json"
	"errors"
	"net/http"

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

	var summonDTO dto.SummonRequest
	err = json.NewDecoder(r.Body).Decode(&summonDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.Summon(r.Context(), id, summonDTO.Reason)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidCourierID),
			errors.Is(err, dispatch.ErrMissingReason):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, courier.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.Error("summon courier",
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
