package ticket

import (
	"strings"

	"courierqueue/internal/entities"
)

func validateIssue(unitID string, courierID int64) error {
	if strings.TrimSpace(unitID) == "" {
		return ErrMissingRequiredFields
	}
	if courierID <= 0 {
		return ErrMissingRequiredFields
	}
	return nil
}

// parseStatusFilter: пустая строка означает "все статусы".
func parseStatusFilter(raw string) (*entities.TicketStatusType, error) {
	if raw == "" {
		return nil, nil
	}

	status := entities.TicketStatusType(raw)
	switch status {
	case entities.TicketWaiting, entities.TicketCalled, entities.TicketSettled:
		return &status, nil
	default:
		return nil, ErrInvalidStatusFilter
	}
}
