package dispatch

import (
	"strings"

	"courierqueue/internal/entities"
)

func validateRequest(request entities.DispatchRequest) error {
	if request.CourierID <= 0 {
		return ErrInvalidCourierID
	}
	if request.DeliveryCount < 1 {
		return ErrInvalidDeliveryCount
	}
	if strings.TrimSpace(request.BagType) == "" {
		return ErrMissingRequiredFields
	}
	return nil
}

func isValidReason(reason string) bool {
	return strings.TrimSpace(reason) != ""
}
