package notification

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"courierqueue/internal/entities"
	"courierqueue/internal/pkg/metrics"
	"courierqueue/internal/pkg/template"
	"courierqueue/pkg/logger"
)

const BeverageWarning = "Atenção: o pedido contém bebida."

// Fanout переводит зафиксированный переход во внешние оповещения.
// Ошибки каналов не прерывают друг друга и возвращаются как предупреждения.
// Пустой шаблон, URL или телефон - осознанное отключение канала, не ошибка.
type Fanout struct {
	log       fanoutLogger
	settings  SettingsReader
	webhook   WebhookSender
	messenger MessageSender
}

func New(log fanoutLogger, settings SettingsReader, webhook WebhookSender, messenger MessageSender) *Fanout {
	return &Fanout{
		log:       log,
		settings:  settings,
		webhook:   webhook,
		messenger: messenger,
	}
}

func (f *Fanout) Dispatched(ctx context.Context, courier *entities.Courier, request entities.DispatchRequest, dispatchedAt time.Time) []entities.Warning {
	settings, warnings := f.loadSettings(ctx, courier.UnitID)
	if settings == nil {
		return warnings
	}

	mensagem := ""
	if request.HasBeverage {
		mensagem = BeverageWarning
	}

	bindings := template.Bindings{
		template.Name:    courier.Name,
		template.Bag:     request.BagType,
		template.Count:   strconv.Itoa(request.DeliveryCount),
		template.Message: mensagem,
		template.Unit:    unitName(settings),
	}

	c := newCollector()
	var g errgroup.Group

	if settings.WebhookURL != "" {
		g.Go(func() error {
			err := f.webhook.Send(ctx, settings.WebhookURL, entities.DispatchWebhook{
				UnitName:      unitName(settings),
				CourierName:   courier.Name,
				BagType:       request.BagType,
				DeliveryCount: request.DeliveryCount,
				HasBeverage:   request.HasBeverage,
				DispatchedAt:  dispatchedAt,
			})
			f.record(c, entities.ChannelWebhook, courier.ID, err)
			return nil
		})
	} else {
		metrics.NotificationsTotal.WithLabelValues(entities.ChannelWebhook, metrics.OutcomeSkipped).Inc()
	}

	g.Go(func() error {
		f.sendMessage(ctx, c, courier, settings.Templates.Dispatch, bindings)
		return nil
	})

	_ = g.Wait()

	return append(warnings, c.warnings...)
}

// PreAlert предупреждает курьера, что он следующий в очереди.
func (f *Fanout) PreAlert(ctx context.Context, courier *entities.Courier) []entities.Warning {
	return f.single(ctx, courier, func(t entities.MessageTemplates) string { return t.PreAlert }, nil)
}

func (f *Fanout) Returned(ctx context.Context, courier *entities.Courier, position int) []entities.Warning {
	return f.single(ctx, courier, func(t entities.MessageTemplates) string { return t.Return }, template.Bindings{
		template.Position: strconv.Itoa(position),
	})
}

func (f *Fanout) Summoned(ctx context.Context, courier *entities.Courier, reason string) []entities.Warning {
	return f.single(ctx, courier, func(t entities.MessageTemplates) string { return t.Summon }, template.Bindings{
		template.Message: reason,
	})
}

func (f *Fanout) PaymentCalled(ctx context.Context, ticket *entities.PaymentTicket, courier *entities.Courier) []entities.Warning {
	return f.single(ctx, courier, func(t entities.MessageTemplates) string { return t.PaymentCall }, template.Bindings{
		template.Ticket: ticket.Number,
	})
}

func (f *Fanout) single(
	ctx context.Context,
	courier *entities.Courier,
	pick func(entities.MessageTemplates) string,
	extra template.Bindings,
) []entities.Warning {
	settings, warnings := f.loadSettings(ctx, courier.UnitID)
	if settings == nil {
		return warnings
	}

	bindings := template.Bindings{
		template.Name: courier.Name,
		template.Unit: unitName(settings),
	}
	if courier.BagType != nil {
		bindings[template.Bag] = *courier.BagType
	}
	for k, v := range extra {
		bindings[k] = v
	}

	c := newCollector()
	f.sendMessage(ctx, c, courier, pick(settings.Templates), bindings)

	return append(warnings, c.warnings...)
}

func (f *Fanout) sendMessage(ctx context.Context, c *collector, courier *entities.Courier, tpl string, bindings template.Bindings) {
	if tpl == "" || courier.Phone == "" || !f.messenger.Enabled() {
		metrics.NotificationsTotal.WithLabelValues(entities.ChannelMessenger, metrics.OutcomeSkipped).Inc()
		return
	}

	err := f.messenger.Send(ctx, courier.Phone, template.Render(tpl, bindings))
	f.record(c, entities.ChannelMessenger, courier.ID, err)
}

func (f *Fanout) loadSettings(ctx context.Context, unitID string) (*entities.UnitSettings, []entities.Warning) {
	settings, err := f.settings.Get(ctx, unitID)
	if err != nil {
		f.log.Warn("unit settings unavailable, notifications skipped",
			logger.NewField("unit_id", unitID),
			logger.NewField("error", err),
		)
		return nil, []entities.Warning{{Channel: entities.ChannelSettings, Message: err.Error()}}
	}
	return settings, nil
}

func (f *Fanout) record(c *collector, channel string, courierID int64, err error) {
	if err == nil {
		metrics.NotificationsTotal.WithLabelValues(channel, metrics.OutcomeSent).Inc()
		return
	}

	metrics.NotificationsTotal.WithLabelValues(channel, metrics.OutcomeFailed).Inc()
	f.log.Warn("notification failed",
		logger.NewField("channel", channel),
		logger.NewField("courier_id", courierID),
		logger.NewField("error", err),
	)
	c.add(entities.Warning{Channel: channel, Message: err.Error()})
}

func unitName(settings *entities.UnitSettings) string {
	if settings.Name != "" {
		return settings.Name
	}
	return settings.UnitID
}

type collector struct {
	mu       sync.Mutex
	warnings []entities.Warning
}

func newCollector() *collector {
	return &collector{}
}

func (c *collector) add(w entities.Warning) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, w)
}
