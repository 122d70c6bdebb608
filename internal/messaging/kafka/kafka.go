package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"

	"storefront/internal/messaging"
)

const maxAttempts = 3

type kafkaPublisher struct {
	writer *kafkaGo.Writer
}

// NewPublisher creates a Kafka publisher writing to a single topic. The
// event type travels in the "event-type" header.
func NewPublisher(brokers []string, topic string) messaging.Publisher {
	return &kafkaPublisher{
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafkaGo.LeastBytes{},
			BatchTimeout:           10 * time.Millisecond,
			WriteTimeout:           time.Second,
			MaxAttempts:            maxAttempts,
			AllowAutoTopicCreation: true,
		},
	}
}

func (k *kafkaPublisher) PublishEvent(ctx context.Context, key string, event messaging.Event) error {
	msg, err := newMessage(key, event)
	if err != nil {
		return err
	}
	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s: %w", event.EventType(), err)
	}
	return nil
}

func (k *kafkaPublisher) Close() error {
	return k.writer.Close()
}

func newMessage(key string, event messaging.Event) (kafkaGo.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafkaGo.Header{
			{Key: "event-type", Value: []byte(event.EventType())},
		},
	}, nil
}
