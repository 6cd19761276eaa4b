package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"courierqueue/internal/entities"
)

// Publisher публикует зафиксированные переходы в топик. Ключ сообщения -
// ключ сущности, поэтому события одного курьера или талона идут по порядку.
type Publisher struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *Publisher) Publish(ctx context.Context, ev entities.DispatchEvent) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}

	value, err := json.Marshal(fromDomain(ev))
	if err != nil {
		return fmt.Errorf("gateway events, marshal %s: %w", ev.Kind, err)
	}

	if err := p.producer.Send(ctx, p.topic, []byte(ev.Key), value); err != nil {
		return fmt.Errorf("gateway events, publish %s: %w", ev.Kind, err)
	}

	return nil
}
