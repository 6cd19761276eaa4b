package webhook

import (
	"strconv"
	"time"

	"courierqueue/internal/entities"
)

func toPayload(notice entities.DispatchWebhook) payload {
	beverage := "NAO"
	if notice.HasBeverage {
		beverage = "SIM"
	}

	return payload{
		Name:          notice.UnitName,
		DepartureTime: notice.DispatchedAt.UTC().Format(time.RFC3339),
		DeliveryCount: strconv.Itoa(notice.DeliveryCount),
		Courier:       notice.CourierName,
		Bag:           notice.BagType,
		HasBeverage:   beverage,
	}
}
