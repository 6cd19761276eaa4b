package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"

	"courierqueue/internal/pkg/config"
	"courierqueue/pkg/logger"
)

// Producer - синхронный продюсер: Send возвращается после подтверждения брокером,
// поэтому сервис знает, ушло ли событие, и может вернуть предупреждение оператору.
type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka, brokers []string) (*Producer, error) {
	saramaConfig, err := producerConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build producer config: %w", err)
	}

	kafkaLog := log.With(logger.NewField("brokers", brokers))

	if err := waitForBrokers(ctx, kafkaLog, brokers, saramaConfig); err != nil {
		return nil, err
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create producer: %w", err)
	}

	return NewProducerFrom(kafkaLog, producer), nil
}

// NewProducerFrom оборачивает готовый sarama.SyncProducer (в тестах - mocks.SyncProducer).
func NewProducerFrom(log logger.Logger, producer sarama.SyncProducer) *Producer {
	return &Producer{
		log:      log,
		producer: producer,
	}
}

func (p *Producer) Send(ctx context.Context, topic string, key, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("send message to %s: %w", topic, err)
	}

	p.log.Debug("kafka message sent",
		logger.NewField("topic", topic),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
