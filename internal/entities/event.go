package entities

import (
	"strconv"
	"time"
)

type DispatchEventKind string

const (
	EventCourierCalled            DispatchEventKind = "courier.called"
	EventCourierAcknowledged      DispatchEventKind = "courier.acknowledged"
	EventCourierNoShow            DispatchEventKind = "courier.no_show"
	EventCourierReturned          DispatchEventKind = "courier.returned"
	EventCourierNoShowWindowClose DispatchEventKind = "courier.no_show_window_closed"
	EventTicketCalled             DispatchEventKind = "ticket.called"
	EventTicketSettled            DispatchEventKind = "ticket.settled"
)

func (k DispatchEventKind) String() string {
	return string(k)
}

// IsCall - события, которые выводятся на публичный экран.
func (k DispatchEventKind) IsCall() bool {
	return k == EventCourierCalled || k == EventTicketCalled
}

// DispatchEvent - зафиксированный переход, который рассылается по шине.
// Key стабилен для одной и той же сущности: по нему экран отсекает дубли push/poll.
type DispatchEvent struct {
	ID           string
	Key          string
	Kind         DispatchEventKind
	UnitID       string
	CourierID    int64
	CourierName  string
	BagType      string
	TicketID     int64
	TicketNumber string
	OccurredAt   time.Time
}

func CourierEventKey(courierID int64) string {
	return "courier:" + strconv.FormatInt(courierID, 10)
}

func TicketEventKey(ticketID int64) string {
	return "ticket:" + strconv.FormatInt(ticketID, 10)
}
