package unit

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"courierqueue/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Get возвращает настройки юнита. Для юнита без строки настроек
// возвращаются пустые настройки: все каналы оповещения выключены.
func (r *Repository) Get(ctx context.Context, unitID string) (*entities.UnitSettings, error) {
	query := `
		SELECT unit_id, name, webhook_url,
			dispatch_template, pre_alert_template, return_template, summon_template, payment_call_template,
			speech_delivery_call, speech_payment_call
		FROM unit_settings
		WHERE unit_id = $1
	`

	var settingsDB UnitSettingsDB
	err := r.querier.QueryRow(ctx, query, unitID).Scan(
		&settingsDB.UnitID,
		&settingsDB.Name,
		&settingsDB.WebhookURL,
		&settingsDB.DispatchTemplate,
		&settingsDB.PreAlertTemplate,
		&settingsDB.ReturnTemplate,
		&settingsDB.SummonTemplate,
		&settingsDB.PaymentCallTemplate,
		&settingsDB.SpeechDeliveryCall,
		&settingsDB.SpeechPaymentCall,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entities.UnitSettings{UnitID: unitID}, nil
		}
		return nil, fmt.Errorf("unexpected unit settings repository get error: %w", err)
	}

	return ToDomain(&settingsDB), nil
}
