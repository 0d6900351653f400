// Package messaging carries wear events from the API to the wardrobe
// store. Recording a wear is fire-and-forget for the caller; a consumer
// applies the usage update and failed messages land on a DLQ.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/onefitted/fitted/internal/config"
	"github.com/onefitted/fitted/pkg/models"
)

const consumerGroup = "wear-processors"

type WearMessage struct {
	Event      models.WearEvent `json:"event"`
	Timestamp  time.Time        `json:"timestamp"`
	RetryCount int              `json:"retry_count"`
}

type MessageBus struct {
	writer    *kafka.Writer
	reader    *kafka.Reader
	dlqWriter *kafka.Writer
	logger    *logrus.Logger
}

func NewMessageBus(cfg *config.Config, logger *logrus.Logger) (*MessageBus, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Kafka.Brokers...),
		Topic:        cfg.Kafka.Topics.WearEvents,
		Balancer:     &kafka.Hash{}, // key by user so a user's wears stay ordered
		RequiredAcks: kafka.RequireOne,
		Async:        false,
		BatchTimeout: 10 * time.Millisecond,
		BatchSize:    100,
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Kafka.Brokers,
		Topic:          cfg.Kafka.Topics.WearEvents,
		GroupID:        consumerGroup,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})

	dlqWriter := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Kafka.Brokers...),
		Topic:        cfg.Kafka.Topics.WearEventsDLQ,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}

	return &MessageBus{
		writer:    writer,
		reader:    reader,
		dlqWriter: dlqWriter,
		logger:    logger,
	}, nil
}

func (mb *MessageBus) PublishWearEvent(event models.WearEvent) error {
	message := WearMessage{
		Event:     event,
		Timestamp: time.Now(),
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal wear message: %w", err)
	}

	kafkaMessage := kafka.Message{
		Key:   []byte(event.UserID.String()),
		Value: messageBytes,
		Headers: []kafka.Header{
			{Key: "item_id", Value: []byte(event.ItemID)},
			{Key: "timestamp", Value: []byte(message.Timestamp.Format(time.RFC3339))},
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := mb.writer.WriteMessages(ctx, kafkaMessage); err != nil {
		mb.logger.WithError(err).WithFields(logrus.Fields{
			"user_id": event.UserID,
			"item_id": event.ItemID,
		}).Error("Failed to publish wear event")
		return fmt.Errorf("failed to write wear event: %w", err)
	}

	mb.logger.WithFields(logrus.Fields{
		"user_id": event.UserID,
		"item_id": event.ItemID,
	}).Debug("Wear event published")

	return nil
}

// ConsumeWearEvents reads wear events and hands them to the handler until
// the context is cancelled. Messages the handler rejects go to the DLQ.
func (mb *MessageBus) ConsumeWearEvents(ctx context.Context, handler func(context.Context, models.WearEvent) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			message, err := mb.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				mb.logger.WithError(err).Error("Failed to read wear event")
				continue
			}

			var wearMessage WearMessage
			if err := json.Unmarshal(message.Value, &wearMessage); err != nil {
				mb.logger.WithError(err).Warn("Malformed wear message, sending to DLQ")
				mb.sendToDLQ(ctx, message.Value)
				continue
			}

			if err := handler(ctx, wearMessage.Event); err != nil {
				mb.logger.WithError(err).WithField("item_id", wearMessage.Event.ItemID).
					Error("Wear event handler failed, sending to DLQ")
				mb.sendToDLQ(ctx, message.Value)
			}
		}
	}
}

func (mb *MessageBus) sendToDLQ(ctx context.Context, value []byte) {
	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := mb.dlqWriter.WriteMessages(writeCtx, kafka.Message{Value: value}); err != nil {
		mb.logger.WithError(err).Error("Failed to write wear event to DLQ")
	}
}

func (mb *MessageBus) Close() error {
	if err := mb.writer.Close(); err != nil {
		return err
	}
	if err := mb.dlqWriter.Close(); err != nil {
		return err
	}
	return mb.reader.Close()
}
