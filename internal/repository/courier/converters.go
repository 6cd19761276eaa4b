package courier

import (
	"courierqueue/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	var workDays entities.WorkDays
	if len(c.WorkDays) == 7 {
		workDays = entities.WorkDays(c.WorkDays)
	}

	return &entities.Courier{
		ID:               c.ID,
		Name:             c.Name,
		Phone:            c.Phone,
		UnitID:           c.UnitID,
		FranchiseID:      c.FranchiseID,
		Active:           c.Active,
		Status:           entities.CourierStatusType(c.Status),
		QueuePositionKey: c.QueuePositionKey,
		Shift: entities.Shift{
			UseDefault: c.UseDefaultShift,
			Start:      entities.TimeOfDay(c.ShiftStart),
			End:        entities.TimeOfDay(c.ShiftEnd),
		},
		WorkDays:      workDays,
		DepartureTime: c.DepartureTime,
		BagType:       c.BagType,
		CalledAt:      c.CalledAt,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func FromDomainModify(courierModify *entities.CourierModify) *CourierModifyDB {
	if courierModify == nil {
		return nil
	}
	courierDB := &CourierModifyDB{
		ID:               courierModify.ID,
		Name:             courierModify.Name,
		Phone:            courierModify.Phone,
		UnitID:           courierModify.UnitID,
		FranchiseID:      courierModify.FranchiseID,
		Active:           courierModify.Active,
		QueuePositionKey: courierModify.QueuePositionKey,
	}

	if courierModify.Status != nil {
		statusType := courierModify.Status.String()
		courierDB.Status = &statusType
	}
	if courierModify.Shift != nil {
		useDefault := courierModify.Shift.UseDefault
		start := int16(courierModify.Shift.Start)
		end := int16(courierModify.Shift.End)
		courierDB.UseDefaultShift = &useDefault
		courierDB.ShiftStart = &start
		courierDB.ShiftEnd = &end
	}
	if courierModify.WorkDays != nil {
		// nil внутри указателя = NULL в БД = все дни
		var days []bool
		if *courierModify.WorkDays != nil {
			days = []bool(*courierModify.WorkDays)
		}
		courierDB.WorkDays = &days
	}

	return courierDB
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i := range couriersDB {
		result[i] = *ToDomain(&couriersDB[i])
	}
	return result
}
