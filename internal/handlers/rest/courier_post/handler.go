package courier_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"courierqueue/internal/entities"
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
	var courierCreateDTO dto.CourierCreate
	err := json.NewDecoder(r.Body).Decode(&courierCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shift, err := presenter.Shift(courierCreateDTO.UseDefaultShift, courierCreateDTO.ShiftStart, courierCreateDTO.ShiftEnd)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierModifyEntity := entities.CourierModify{
		Name:        &courierCreateDTO.Name,
		Phone:       &courierCreateDTO.Phone,
		UnitID:      &courierCreateDTO.UnitID,
		FranchiseID: courierCreateDTO.FranchiseID,
		Active:      courierCreateDTO.Active,
		Shift:       shift,
		WorkDays:    presenter.WorkDays(courierCreateDTO.WorkDays),
	}

	id, err := h.service.CreateCourier(r.Context(), courierModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrMissingRequiredFields),
			errors.Is(err, courier.ErrInvalidName),
			errors.Is(err, courier.ErrInvalidPhone),
			errors.Is(err, courier.ErrInvalidUnit),
			errors.Is(err, courier.ErrInvalidShift),
			errors.Is(err, courier.ErrInvalidWorkDays),
			errors.Is(err, courier.ErrStatusReadOnly):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.Error("create courier", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CourierCreateResponse{
		ID: id,
	}

	presenter.WriteJSON(w, h.log, http.StatusCreated, response)
}
