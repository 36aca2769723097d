// Package events delivers outbox messages to consumers outside the service.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"parceltrack/internal/core/domain/model/outbox"

	skafka "github.com/segmentio/kafka-go"
)

const (
	headerEventType = "event-type"
	headerMessageID = "message-id"
)

// Writer is the subset of kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// KafkaPublisher writes each message to one topic, keyed by parcel id so
// events of a parcel stay ordered within a partition.
type KafkaPublisher struct {
	writer Writer
	logger *slog.Logger
}

// NewKafkaPublisher builds a publisher on a comma-separated broker list.
func NewKafkaPublisher(brokers, topic string, logger *slog.Logger) *KafkaPublisher {
	addrs := make([]string, 0)
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			addrs = append(addrs, b)
		}
	}

	w := &skafka.Writer{
		Addr:                   skafka.TCP(addrs...),
		Topic:                  topic,
		Balancer:               &skafka.Hash{},
		RequiredAcks:           skafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return NewKafkaPublisherWithWriter(w, logger)
}

// NewKafkaPublisherWithWriter allows injecting a test writer.
func NewKafkaPublisherWithWriter(w Writer, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: w,
		logger: logger.With("component", "kafka-publisher"),
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, message *outbox.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	msg := skafka.Message{
		Key:   []byte(message.AggregateID().String()),
		Value: message.Payload(),
		Headers: []skafka.Header{
			{Key: headerEventType, Value: []byte(message.EventType())},
			{Key: headerMessageID, Value: []byte(message.ID().String())},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, "kafka write failed",
			"message_id", message.ID().String(),
			"event_type", message.EventType(),
			"error", err,
		)
		return fmt.Errorf("kafka write: %w", err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
