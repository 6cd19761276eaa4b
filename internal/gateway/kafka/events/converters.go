package events

import "courierqueue/internal/entities"

func fromDomain(ev entities.DispatchEvent) dispatchEvent {
	return dispatchEvent{
		ID:           ev.ID,
		Key:          ev.Key,
		Kind:         ev.Kind.String(),
		UnitID:       ev.UnitID,
		CourierID:    ev.CourierID,
		CourierName:  ev.CourierName,
		BagType:      ev.BagType,
		TicketID:     ev.TicketID,
		TicketNumber: ev.TicketNumber,
		OccurredAt:   ev.OccurredAt,
	}
}
