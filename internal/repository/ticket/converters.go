package ticket

import "courierqueue/internal/entities"

func ToDomain(t *TicketDB) *entities.PaymentTicket {
	if t == nil {
		return nil
	}
	return &entities.PaymentTicket{
		ID:          t.ID,
		Number:      t.Number,
		UnitID:      t.UnitID,
		FranchiseID: t.FranchiseID,
		CourierID:   t.CourierID,
		CourierName: t.CourierName,
		Status:      entities.TicketStatusType(t.Status),
		CreatedAt:   t.CreatedAt,
		CalledAt:    t.CalledAt,
		SettledAt:   t.SettledAt,
		ExpiresAt:   t.ExpiresAt,
	}
}

func ToDomainList(tickets []TicketDB) []entities.PaymentTicket {
	result := make([]entities.PaymentTicket, len(tickets))
	for i := range tickets {
		result[i] = *ToDomain(&tickets[i])
	}
	return result
}
