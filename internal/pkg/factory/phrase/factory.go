package phrase

import (
	"courierqueue/internal/entities"
	"courierqueue/internal/pkg/template"
)

const (
	defaultDeliveryTeaser = "Preparando: {nome}"
	defaultDeliveryCall   = "{nome}, retire o pedido ({bag})"
	defaultPaymentTeaser  = "Senha {senha}"
	defaultPaymentCall    = "Senha {senha}: {nome}, dirija-se ao caixa"
)

type PhraseFactory struct{}

func New() *PhraseFactory {
	return &PhraseFactory{}
}

// Build собирает тексты объявления по виду события. Речь берется только из
// настроек юнита: пустой шаблон означает объявление без голоса.
func (f *PhraseFactory) Build(ev entities.DispatchEvent, settings *entities.UnitSettings) entities.Phrases {
	bindings := template.Bindings{
		template.Name:   ev.CourierName,
		template.Bag:    ev.BagType,
		template.Ticket: ev.TicketNumber,
	}
	if settings != nil {
		bindings[template.Unit] = settings.Name
	}

	var teaser, call, speech string
	switch ev.Kind {
	case entities.EventTicketCalled:
		teaser, call = defaultPaymentTeaser, defaultPaymentCall
		if settings != nil {
			speech = settings.Speech.PaymentCall
		}
	default:
		teaser, call = defaultDeliveryTeaser, defaultDeliveryCall
		if settings != nil {
			speech = settings.Speech.DeliveryCall
		}
	}

	return entities.Phrases{
		Teaser: template.Render(teaser, bindings),
		Call:   template.Render(call, bindings),
		Speech: template.Render(speech, bindings),
	}
}
