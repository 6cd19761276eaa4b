package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/IBM/sarama"

	"courierqueue/internal/pkg/config"
	"courierqueue/pkg/logger"
)

type Consumer struct {
	log     logger.Logger
	group   sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, brokers []string, groupID string, topics []string, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	saramaConfig, err := consumerConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build consumer config: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("group", groupID),
		logger.NewField("topics", topics),
	)

	if err := waitForBrokers(ctx, kafkaLog, brokers, saramaConfig); err != nil {
		return nil, err
	}

	group, err := sarama.NewConsumerGroup(brokers, groupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create consumer group %s: %w", groupID, err)
	}

	return &Consumer{
		log:     kafkaLog,
		group:   group,
		topics:  topics,
		handler: handler,
	}, nil
}

// Start блокируется, пока не отменен ctx или не закрыта группа.
// Consume возвращается на каждой ребалансировке, поэтому вызывается в цикле.
func (c *Consumer) Start(ctx context.Context) error {
	go c.logErrors()

	for {
		if err := c.group.Consume(ctx, c.topics, c.handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return err
			}
			c.log.Error("consume session failed", logger.NewField("error", err))
			return fmt.Errorf("consume: %w", err)
		}

		if err := ctx.Err(); err != nil {
			return err
		}
		c.log.Info("consumer group rebalanced")
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}

// logErrors вычитывает асинхронные ошибки группы: без этого канал
// заполняется и сессия блокируется.
func (c *Consumer) logErrors() {
	for err := range c.group.Errors() {
		c.log.Warn("consumer group error", logger.NewField("error", err))
	}
}
