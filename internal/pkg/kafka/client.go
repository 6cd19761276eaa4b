package kafka

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"courierqueue/internal/pkg/config"
	"courierqueue/pkg/logger"
	"courierqueue/pkg/retrier"
	"courierqueue/pkg/retrier/backoff_adapter"
)

func baseConfig(cfg *config.Kafka) (*sarama.Config, error) {
	version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = version
	saramaConfig.ClientID = "courierqueue"
	return saramaConfig, nil
}

func consumerConfig(cfg *config.Kafka) (*sarama.Config, error) {
	saramaConfig, err := baseConfig(cfg)
	if err != nil {
		return nil, err
	}

	// экран показывает текущее состояние очереди, старые события ему не нужны
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = cfg.Sarama.ConsumerOffsetsAutocommit
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	saramaConfig.Consumer.Return.Errors = true
	return saramaConfig, nil
}

func producerConfig(cfg *config.Kafka) (*sarama.Config, error) {
	saramaConfig, err := baseConfig(cfg)
	if err != nil {
		return nil, err
	}

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	// ключ сообщения = курьер или талон, события одной сущности идут в одну партицию
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner
	return saramaConfig, nil
}

// SplitBrokers разбирает KAFKA_BROKERS вида "host1:9092, host2:9092".
func SplitBrokers(raw string) []string {
	brokers := strings.Split(raw, ",")
	result := make([]string, 0, len(brokers))
	for i := range brokers {
		broker := strings.TrimSpace(brokers[i])
		if broker != "" {
			result = append(result, broker)
		}
	}
	return result
}

// GroupForUnit - consumer group экрана юнита. Экраны разных юнитов читают
// топик независимо, а реплики одного экрана делят партиции.
func GroupForUnit(base, unitID string) string {
	return base + "." + unitID
}

// waitForBrokers повторяет подключение, пока брокеры не ответят списком топиков.
func waitForBrokers(ctx context.Context, log logger.Logger, brokers []string, saramaConfig *sarama.Config) error {
	var attempt uint64
	connect := backoff_adapter.New(retrier.Config{
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
		OnRetry: func(err error, wait time.Duration) {
			log.Warn("kafka is not reachable yet",
				logger.NewField("attempt", attempt),
				logger.NewField("retry_in", wait),
				logger.NewField("error", err),
			)
		},
	})

	err := connect.ExecuteWithContext(ctx, func(context.Context) error {
		attempt++
		client, err := sarama.NewClient(brokers, saramaConfig)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close probe kafka client", logger.NewField("error", err))
			}
		}()

		_, err = client.Topics()
		return err
	})
	if err != nil {
		return fmt.Errorf("kafka unreachable after %d attempts: %w", attempt, err)
	}

	log.Info("kafka connection established", logger.NewField("attempts", attempt))
	return nil
}
