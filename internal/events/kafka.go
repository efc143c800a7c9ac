package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vinixport_backend/internal/logger"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type KafkaConfig struct {
	Brokers  []string
	Topic    string
	Username string
	Password string
}

// KafkaPublisher пишет события асинхронно. Ключ сообщения - id заявки,
// поэтому события одной заявки попадают в одну партицию по порядку.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg KafkaConfig) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers are not configured")
	}
	if cfg.Topic == "" {
		return nil, errors.New("kafka topic is not configured")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		Async:                  true,
		WriteTimeout:           10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.SideEffectLog("kafka", fmt.Sprintf("publish %d message(s)", len(messages)), err)
			}
		},
	}
	if cfg.Username != "" {
		writer.Transport = &kafka.Transport{
			SASL: plain.Mechanism{Username: cfg.Username, Password: cfg.Password},
		}
	}

	logger.Info("Kafka producer created", "brokers", cfg.Brokers, "topic", cfg.Topic)
	return &KafkaPublisher{writer: writer}, nil
}

// EncodeMessage собирает kafka.Message для события
func EncodeMessage(event ReviewRequestEvent) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(event.ReviewRequestID),
		Value: data,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, event ReviewRequestEvent) error {
	msg, err := EncodeMessage(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	logger.CtxDebug(ctx, "Kafka message queued", "type", event.Type, "review_request_id", event.ReviewRequestID)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
