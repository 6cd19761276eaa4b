package history

import "courierqueue/internal/entities"

func ToDomain(d *DeliveryHistoryDB) *entities.DeliveryHistoryRecord {
	if d == nil {
		return nil
	}
	return &entities.DeliveryHistoryRecord{
		ID:            d.ID,
		CourierID:     d.CourierID,
		UnitID:        d.UnitID,
		BagType:       d.BagType,
		DeliveryCount: int(d.DeliveryCount),
		HasBeverage:   d.HasBeverage,
		CreatedAt:     d.CreatedAt,
		ReturnedAt:    d.ReturnedAt,
	}
}

func ToRankingDomainList(rows []RankingDB) []entities.RankingEntry {
	result := make([]entities.RankingEntry, len(rows))
	for i := range rows {
		result[i] = entities.RankingEntry{
			CourierID:   rows[i].CourierID,
			CourierName: rows[i].CourierName,
			Calls:       rows[i].Calls,
			Deliveries:  rows[i].Deliveries,
		}
	}
	return result
}
