package producer

import (
	"context"

	"go-certtrack/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// Publisher sends one outbox event to the broker.
type Publisher interface {
	Publish(ctx context.Context, event kafka.OutboxEvent) error
}

// MessageWriter is the part of *kafkago.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type kafkaPublisher struct {
	writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) Publisher {
	return &kafkaPublisher{writer: writer}
}

// Publish keys messages by aggregate id so one certificate's events stay ordered.
func (p *kafkaPublisher) Publish(ctx context.Context, event kafka.OutboxEvent) error {
	msg := kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
			{Key: "request_id", Value: []byte(event.RequestID)},
		},
	}
	return p.writer.WriteMessages(ctx, msg)
}
