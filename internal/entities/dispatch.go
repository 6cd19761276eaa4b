package entities

import (
	"strconv"
	"time"
)

type DispatchRequest struct {
	CourierID     int64
	DeliveryCount int
	BagType       string
	HasBeverage   bool
}

type DispatchResult struct {
	Courier      *Courier
	History      *DeliveryHistoryRecord
	PreAlertFor  *int64
	Warnings     []Warning
	DispatchedAt time.Time
}

type TransitionResult struct {
	Courier  *Courier
	Position int
	Warnings []Warning
}

type TicketResult struct {
	Ticket   *PaymentTicket
	Warnings []Warning
}

// Ключи отложенных действий в реестре таймеров. На курьера не больше одного таймера каждого вида.
func PreAlertTimerKey(courierID int64) string {
	return "prealert:" + strconv.FormatInt(courierID, 10)
}

func NoShowTimerKey(courierID int64) string {
	return "noshow:" + strconv.FormatInt(courierID, 10)
}

// DispatchWebhook - данные операторского вебхука об отправке курьера.
type DispatchWebhook struct {
	UnitName      string
	CourierName   string
	BagType       string
	DeliveryCount int
	HasBeverage   bool
	DispatchedAt  time.Time
}
