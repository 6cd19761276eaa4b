// Package presenter переводит доменные сущности в модели HTTP API.
package presenter

import (
	"github.com/AlekSi/pointer"

	"courierqueue/internal/entities"
	"courierqueue/internal/generated/dto"
)

func Courier(c *entities.Courier) dto.Courier {
	out := dto.Courier{
		ID:               c.ID,
		Name:             c.Name,
		Phone:            c.Phone,
		UnitID:           c.UnitID,
		FranchiseID:      c.FranchiseID,
		Active:           c.Active,
		Status:           c.Status.String(),
		QueuePositionKey: c.QueuePositionKey,
		UseDefaultShift:  c.Shift.UseDefault,
		DepartureTime:    c.DepartureTime,
		Bag:              c.BagType,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}

	if !c.Shift.UseDefault {
		out.ShiftStart = pointer.To(c.Shift.Start.String())
		out.ShiftEnd = pointer.To(c.Shift.End.String())
	}
	if c.WorkDays != nil {
		days := []bool(c.WorkDays)
		out.WorkDays = &days
	}

	return out
}

func Couriers(couriers []entities.Courier) []dto.Courier {
	out := make([]dto.Courier, len(couriers))
	for i := range couriers {
		out[i] = Courier(&couriers[i])
	}
	return out
}

func Queue(view *entities.QueueView) dto.Queue {
	out := dto.Queue{
		UnitID:   view.UnitID,
		Couriers: Couriers(view.Couriers),
	}

	if next := view.Next(); next != nil {
		out.Next = pointer.To(Courier(next))
	}
	if nextNext := view.NextNext(); nextNext != nil {
		out.NextNext = pointer.To(Courier(nextNext))
	}

	return out
}

// Warnings никогда не возвращает nil, чтобы в JSON было [] а не null.
func Warnings(warnings []entities.Warning) []dto.Warning {
	out := make([]dto.Warning, len(warnings))
	for i, w := range warnings {
		out[i] = dto.Warning{
			Channel: w.Channel,
			Message: w.Message,
		}
	}
	return out
}

func Transition(result *entities.TransitionResult) dto.TransitionResponse {
	out := dto.TransitionResponse{
		Courier:  Courier(result.Courier),
		Warnings: Warnings(result.Warnings),
	}
	if result.Position > 0 {
		out.Position = pointer.To(result.Position)
	}
	return out
}

func Dispatch(result *entities.DispatchResult) dto.DispatchResponse {
	out := dto.DispatchResponse{
		Courier:      Courier(result.Courier),
		DispatchedAt: result.DispatchedAt,
		PreAlertFor:  result.PreAlertFor,
		Warnings:     Warnings(result.Warnings),
	}
	if result.History != nil {
		out.HistoryID = result.History.ID
	}
	return out
}

func Ticket(t *entities.PaymentTicket) dto.Ticket {
	return dto.Ticket{
		ID:          t.ID,
		Number:      t.Number,
		UnitID:      t.UnitID,
		FranchiseID: t.FranchiseID,
		CourierID:   t.CourierID,
		CourierName: t.CourierName,
		Status:      t.Status.String(),
		CreatedAt:   t.CreatedAt,
		CalledAt:    t.CalledAt,
		SettledAt:   t.SettledAt,
		ExpiresAt:   t.ExpiresAt,
	}
}

func Tickets(tickets []entities.PaymentTicket) []dto.Ticket {
	out := make([]dto.Ticket, len(tickets))
	for i := range tickets {
		out[i] = Ticket(&tickets[i])
	}
	return out
}

func TicketResult(result *entities.TicketResult) dto.TicketResponse {
	return dto.TicketResponse{
		Ticket:   Ticket(result.Ticket),
		Warnings: Warnings(result.Warnings),
	}
}

func Ranking(ranking *entities.Ranking) dto.Ranking {
	out := dto.Ranking{
		UnitID:  ranking.UnitID,
		From:    ranking.From,
		Entries: make([]dto.RankingEntry, len(ranking.Entries)),
	}
	for i, e := range ranking.Entries {
		out.Entries[i] = dto.RankingEntry{
			CourierID:   e.CourierID,
			CourierName: e.CourierName,
			Calls:       e.Calls,
			Deliveries:  e.Deliveries,
		}
	}
	return out
}

func Display(current entities.Announcement, pending int) dto.Display {
	out := dto.Display{
		Phase:   dto.DisplayPhase(current.Phase),
		Pending: pending,
	}
	if current.Phase == entities.PhaseIdle {
		return out
	}

	out.Kind = pointer.To(string(current.Kind))
	out.CourierName = nonEmpty(current.CourierName)
	out.Bag = nonEmpty(current.BagType)
	out.TicketNumber = nonEmpty(current.TicketNumber)
	out.Text = nonEmpty(current.Text)
	if !current.StartedAt.IsZero() {
		out.StartedAt = pointer.To(current.StartedAt)
	}
	return out
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
