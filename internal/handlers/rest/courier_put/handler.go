package courier_put

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
	var courierModifyDTO dto.CourierUpdate
	err := json.NewDecoder(r.Body).Decode(&courierModifyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shift, err := presenter.Shift(courierModifyDTO.UseDefaultShift, courierModifyDTO.ShiftStart, courierModifyDTO.ShiftEnd)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Опциональные параметры
	courierModifyEntity := entities.CourierModify{
		ID:          &courierModifyDTO.ID,
		Name:        courierModifyDTO.Name,
		Phone:       courierModifyDTO.Phone,
		UnitID:      courierModifyDTO.UnitID,
		FranchiseID: courierModifyDTO.FranchiseID,
		Active:      courierModifyDTO.Active,
		Shift:       shift,
		WorkDays:    presenter.WorkDays(courierModifyDTO.WorkDays),
	}
	if courierModifyDTO.Status != nil {
		statusType := entities.CourierStatusType(*courierModifyDTO.Status)
		courierModifyEntity.Status = &statusType
	}

	res, err := h.service.UpdateCourier(r.Context(), courierModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrMissingRequiredFields),
			errors.Is(err, courier.ErrInvalidCourierID),
			errors.Is(err, courier.ErrInvalidName),
			errors.Is(err, courier.ErrInvalidPhone),
			errors.Is(err, courier.ErrInvalidUnit),
			errors.Is(err, courier.ErrInvalidShift),
			errors.Is(err, courier.ErrInvalidWorkDays),
			errors.Is(err, courier.ErrStatusReadOnly):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, courier.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.Error("update courier", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := presenter.Courier(res)

	presenter.WriteJSON(w, h.log, http.StatusOK, response)
}
