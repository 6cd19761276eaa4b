package tickets_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"courierqueue/internal/generated/dto"
	"courierqueue/internal/handlers/rest/presenter"
	"courierqueue/internal/service/courier"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var ticketDTO dto.TicketCreate
	err := json.NewDecoder(r.Body).Decode(&ticketDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	unitID := presenter.PathUnit(r)

	issued, err := h.service.Issue(r.Context(), unitID, ticketDTO.CourierID)
	if err != nil {
		switch {
		case errors.Is(err, ticket.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, ticket.ErrUnitMismatch),
			errors.Is(err, ticket.ErrCourierNotEligible),
			errors.Is(err, ticket.ErrTicketAlreadyExists):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.Error("issue ticket",
				logger.NewField("unit_id", unitID),
				logger.NewField("courier_id", ticketDTO.CourierID),
				logger.NewField("error", err),
			)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := presenter.Ticket(issued)

	presenter.WriteJSON(w, h.log, http.StatusCreated, response)
}
