package courier

import "time"

type CourierDB struct {
	ID               int64
	Name             string
	Phone            string
	UnitID           string
	FranchiseID      string
	Active           bool
	Status           string
	QueuePositionKey time.Time
	UseDefaultShift  bool
	ShiftStart       int16
	ShiftEnd         int16
	WorkDays         []bool
	DepartureTime    *time.Time
	BagType          *string
	CalledAt         *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type CourierModifyDB struct {
	ID               *int64
	Name             *string
	Phone            *string
	UnitID           *string
	FranchiseID      *string
	Active           *bool
	Status           *string
	QueuePositionKey *time.Time
	UseDefaultShift  *bool
	ShiftStart       *int16
	ShiftEnd         *int16
	WorkDays         *[]bool
}

const courierColumns = `id, name, phone, unit_id, franchise_id, active, status, queue_position_key,
	use_default_shift, shift_start, shift_end, work_days, departure_time, bag_type, called_at, created_at, updated_at`

func (c *CourierDB) scanTargets() []any {
	return []any{
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.UnitID,
		&c.FranchiseID,
		&c.Active,
		&c.Status,
		&c.QueuePositionKey,
		&c.UseDefaultShift,
		&c.ShiftStart,
		&c.ShiftEnd,
		&c.WorkDays,
		&c.DepartureTime,
		&c.BagType,
		&c.CalledAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
}
