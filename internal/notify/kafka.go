package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// KafkaDispatcher публикует события в Kafka через асинхронный продюсер.
// Ошибки продюсера вычитываются в фоне и только логируются.
type KafkaDispatcher struct {
	producer sarama.AsyncProducer
	topic    string
	logger   *zap.SugaredLogger
}

// NewKafkaDispatcher создаёт продюсер уведомлений.
func NewKafkaDispatcher(brokers []string, topic string, logger *zap.SugaredLogger) (*KafkaDispatcher, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	saramaConfig.Producer.Return.Successes = false
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Version = sarama.V2_8_0_0

	saramaConfig.Net.DialTimeout = 10 * time.Second
	saramaConfig.Net.ReadTimeout = 10 * time.Second
	saramaConfig.Net.WriteTimeout = 10 * time.Second

	producer, err := sarama.NewAsyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification producer: %w", err)
	}

	d := &KafkaDispatcher{producer: producer, topic: topic, logger: logger}

	go func() {
		for perr := range producer.Errors() {
			logger.Warnw("notification publish failed",
				"topic", perr.Msg.Topic,
				"error", perr.Err,
			)
		}
	}()

	logger.Infow("kafka notification dispatcher ready", "brokers", brokers, "topic", topic)
	return d, nil
}

func (d *KafkaDispatcher) Notify(_ context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}
	d.producer.Input() <- &sarama.ProducerMessage{
		Topic: d.topic,
		Key:   sarama.StringEncoder(e.RequestID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-kind"), Value: []byte(e.Kind)},
		},
	}
	return nil
}

// Close останавливает продюсер.
func (d *KafkaDispatcher) Close() error {
	return d.producer.Close()
}
