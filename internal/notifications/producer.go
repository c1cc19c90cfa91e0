package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"tixly/pkg/logger"
)

// Producer publishes domain notifications. Publishing is fire-and-forget
// from the caller's point of view: a broker failure is logged, never
// surfaced as a request error.
type Producer interface {
	PublishOrderCreated(ctx context.Context, payload OrderCreatedPayload) error
	PublishWithdrawalProcessed(ctx context.Context, payload WithdrawalProcessedPayload) error
	Close() error
}

// ProducerConfig contains configuration for the Kafka producer
type ProducerConfig struct {
	Brokers          []string
	Topic            string
	RetryMax         int
	Timeout          time.Duration
	IdempotentWrites bool
}

// DefaultProducerConfig returns a default producer configuration
func DefaultProducerConfig(brokers []string, topic string) *ProducerConfig {
	return &ProducerConfig{
		Brokers:          brokers,
		Topic:            topic,
		RetryMax:         3,
		Timeout:          10 * time.Second,
		IdempotentWrites: true,
	}
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	config   *ProducerConfig
	log      *logger.Logger
}

// NewKafkaProducer creates a sync producer against the configured brokers.
func NewKafkaProducer(config *ProducerConfig) (Producer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = config.Timeout
	saramaConfig.Producer.Idempotent = config.IdempotentWrites
	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Hash partitioner keeps messages for one event/vendor ordered
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &kafkaProducer{
		producer: producer,
		config:   config,
		log:      logger.GetDefault(),
	}, nil
}

func (kp *kafkaProducer) PublishOrderCreated(ctx context.Context, payload OrderCreatedPayload) error {
	return kp.publish(newMessage(MessageTypeOrderCreated, payload))
}

func (kp *kafkaProducer) PublishWithdrawalProcessed(ctx context.Context, payload WithdrawalProcessedPayload) error {
	return kp.publish(newMessage(MessageTypeWithdrawalProcessed, payload))
}

func (kp *kafkaProducer) publish(msg *Message) error {
	messageBytes, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     kp.config.Topic,
		Key:       sarama.StringEncoder(msg.PartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Headers:   kp.createHeaders(msg),
		Timestamp: msg.CreatedAt,
	}

	partition, offset, err := kp.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send notification to Kafka: %w", err)
	}

	kp.log.Info("notification published",
		"topic", kp.config.Topic,
		"partition", partition,
		"offset", offset,
		"type", string(msg.Type),
	)
	return nil
}

func (kp *kafkaProducer) createHeaders(msg *Message) []sarama.RecordHeader {
	return []sarama.RecordHeader{
		{Key: []byte("message_id"), Value: []byte(msg.ID.String())},
		{Key: []byte("message_type"), Value: []byte(msg.Type)},
		{Key: []byte("producer"), Value: []byte("tixly-backend")},
		{Key: []byte("created_at"), Value: []byte(msg.CreatedAt.Format(time.RFC3339))},
	}
}

func (kp *kafkaProducer) Close() error {
	if kp.producer != nil {
		if err := kp.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
	}
	return nil
}

// noopProducer satisfies Producer when no brokers are configured.
type noopProducer struct{}

// NewNoopProducer returns a producer that silently drops every message.
func NewNoopProducer() Producer {
	return noopProducer{}
}

func (noopProducer) PublishOrderCreated(context.Context, OrderCreatedPayload) error {
	return nil
}

func (noopProducer) PublishWithdrawalProcessed(context.Context, WithdrawalProcessedPayload) error {
	return nil
}

func (noopProducer) Close() error { return nil }

var (
	_ Producer = (*kafkaProducer)(nil)
	_ Producer = noopProducer{}
)
