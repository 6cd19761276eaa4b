package entities

import "time"

type DeliveryHistoryRecord struct {
	ID            int64
	CourierID     int64
	UnitID        string
	BagType       string
	DeliveryCount int
	HasBeverage   bool
	CreatedAt     time.Time
	ReturnedAt    *time.Time
}

type DeliveryHistoryCreate struct {
	CourierID     int64
	UnitID        string
	BagType       string
	DeliveryCount int
	HasBeverage   bool
	CreatedAt     time.Time
}

type RankingEntry struct {
	CourierID   int64
	CourierName string
	Calls       int64
	Deliveries  int64
}

// Ranking - рейтинг юнита за период [From, now).
type Ranking struct {
	UnitID  string
	From    time.Time
	Entries []RankingEntry
}
