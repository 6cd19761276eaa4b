package entities

import "time"

type PaymentTicket struct {
	ID          int64
	Number      string
	UnitID      string
	FranchiseID string
	CourierID   *int64
	CourierName *string
	Status      TicketStatusType
	CreatedAt   time.Time
	CalledAt    *time.Time
	SettledAt   *time.Time
	ExpiresAt   time.Time
}

type TicketStatusType string

const (
	TicketWaiting TicketStatusType = "waiting"
	TicketCalled  TicketStatusType = "called"
	TicketSettled TicketStatusType = "settled"
)

func (t TicketStatusType) String() string {
	return string(t)
}

// Next - единственный допустимый следующий статус. Для settled переходов нет.
func (t TicketStatusType) Next() (TicketStatusType, bool) {
	switch t {
	case TicketWaiting:
		return TicketCalled, true
	case TicketCalled:
		return TicketSettled, true
	default:
		return "", false
	}
}

// CanMoveTo проверяет, что переход идет строго вперед на один шаг.
func (t TicketStatusType) CanMoveTo(target TicketStatusType) bool {
	next, ok := t.Next()
	return ok && next == target
}

type TicketCreate struct {
	Number      string
	UnitID      string
	FranchiseID string
	CourierID   int64
	CourierName string
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// TicketTransition - условный переход талона, применяется только из статуса From.
type TicketTransition struct {
	ID   int64
	From TicketStatusType
	To   TicketStatusType
	At   time.Time
}
