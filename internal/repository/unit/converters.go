package unit

import "courierqueue/internal/entities"

func ToDomain(u *UnitSettingsDB) *entities.UnitSettings {
	if u == nil {
		return nil
	}
	return &entities.UnitSettings{
		UnitID:     u.UnitID,
		Name:       u.Name,
		WebhookURL: u.WebhookURL,
		Templates: entities.MessageTemplates{
			Dispatch:    u.DispatchTemplate,
			PreAlert:    u.PreAlertTemplate,
			Return:      u.ReturnTemplate,
			Summon:      u.SummonTemplate,
			PaymentCall: u.PaymentCallTemplate,
		},
		Speech: entities.SpeechTemplates{
			DeliveryCall: u.SpeechDeliveryCall,
			PaymentCall:  u.SpeechPaymentCall,
		},
	}
}

func toCached(s *entities.UnitSettings) cachedSettings {
	return cachedSettings{
		UnitID:              s.UnitID,
		Name:                s.Name,
		WebhookURL:          s.WebhookURL,
		DispatchTemplate:    s.Templates.Dispatch,
		PreAlertTemplate:    s.Templates.PreAlert,
		ReturnTemplate:      s.Templates.Return,
		SummonTemplate:      s.Templates.Summon,
		PaymentCallTemplate: s.Templates.PaymentCall,
		SpeechDeliveryCall:  s.Speech.DeliveryCall,
		SpeechPaymentCall:   s.Speech.PaymentCall,
	}
}

func fromCached(c *cachedSettings) *entities.UnitSettings {
	return ToDomain(&UnitSettingsDB{
		UnitID:              c.UnitID,
		Name:                c.Name,
		WebhookURL:          c.WebhookURL,
		DispatchTemplate:    c.DispatchTemplate,
		PreAlertTemplate:    c.PreAlertTemplate,
		ReturnTemplate:      c.ReturnTemplate,
		SummonTemplate:      c.SummonTemplate,
		PaymentCallTemplate: c.PaymentCallTemplate,
		SpeechDeliveryCall:  c.SpeechDeliveryCall,
		SpeechPaymentCall:   c.SpeechPaymentCall,
	})
}
