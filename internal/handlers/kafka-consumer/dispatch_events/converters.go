package dispatch_events

import (
	"time"

	"courierqueue/internal/entities"
)

func toDomain(ev dispatchEvent) entities.DispatchEvent {
	return entities.DispatchEvent{
		ID:           ev.ID,
		Key:          ev.Key,
		Kind:         entities.DispatchEventKind(ev.Kind),
		UnitID:       ev.UnitID,
		CourierID:    ev.CourierID,
		CourierName:  ev.CourierName,
		BagType:      ev.BagType,
		TicketID:     ev.TicketID,
		TicketNumber: ev.TicketNumber,
		OccurredAt:   ev.OccurredAt.UTC().Truncate(time.Microsecond),
	}
}
