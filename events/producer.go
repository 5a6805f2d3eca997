package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Shipment lifecycle event types.
const (
	TypeShipmentCreated = "shipment.created"
	TypeShipmentUpdated = "shipment.updated"
	TypeShipmentDeleted = "shipment.deleted"
)

// ShipmentEvent is the payload published for downstream consumers
// (notifications, provider matching). JSON-encoded for language-neutral
// consumption.
type ShipmentEvent struct {
	Type       string    `json:"type"`
	ShipmentID string    `json:"shipmentId"`
	Reference  string    `json:"reference,omitempty"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Producer writes shipment events to a Kafka topic. A nil Producer is valid
// and publishes nothing, so callers never need to branch on whether the
// broker is configured.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokerURL, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokerURL),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish sends one event keyed by shipment id, so events for the same
// shipment land on the same partition. Failures are logged and returned;
// API handlers treat publishing as fire-and-forget.
func (p *Producer) Publish(ctx context.Context, event ShipmentEvent) error {
	if p == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("failed to marshal shipment event", zap.Error(err))
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.ShipmentID),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		zap.L().Error("kafka write failed",
			zap.String("type", event.Type),
			zap.String("shipmentId", event.ShipmentID),
			zap.Error(err))
		return err
	}

	return nil
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
