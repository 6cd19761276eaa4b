package history

import "time"

type DeliveryHistoryDB struct {
	ID            int64
	CourierID     int64
	UnitID        string
	BagType       string
	DeliveryCount int32
	HasBeverage   bool
	CreatedAt     time.Time
	ReturnedAt    *time.Time
}

type RankingDB struct {
	CourierID   int64
	CourierName string
	Calls       int64
	Deliveries  int64
}
