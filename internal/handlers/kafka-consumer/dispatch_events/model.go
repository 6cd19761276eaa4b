package dispatch_events

import "time"

type dispatchEvent struct {
	ID           string    `json:"id"`
	Key          string    `json:"key"`
	Kind         string    `json:"kind"`
	UnitID       string    `json:"unit_id"`
	CourierID    int64     `json:"courier_id,omitempty"`
	CourierName  string    `json:"courier_name,omitempty"`
	BagType      string    `json:"bag_type,omitempty"`
	TicketID     int64     `json:"ticket_id,omitempty"`
	TicketNumber string    `json:"ticket_number,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
