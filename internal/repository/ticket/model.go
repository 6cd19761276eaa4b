package ticket

import "time"

type TicketDB struct {
	ID          int64
	Number      string
	UnitID      string
	FranchiseID string
	CourierID   *int64
	CourierName *string
	Status      string
	CreatedAt   time.Time
	CalledAt    *time.Time
	SettledAt   *time.Time
	ExpiresAt   time.Time
}

const ticketColumns = `id, number, unit_id, franchise_id, courier_id, courier_name, status,
	created_at, called_at, settled_at, expires_at`

func (t *TicketDB) scanTargets() []any {
	return []any{
		&t.ID,
		&t.Number,
		&t.UnitID,
		&t.FranchiseID,
		&t.CourierID,
		&t.CourierName,
		&t.Status,
		&t.CreatedAt,
		&t.CalledAt,
		&t.SettledAt,
		&t.ExpiresAt,
	}
}
