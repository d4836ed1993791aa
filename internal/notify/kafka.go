package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Skotchmaster/vape_shop/internal/checkout"
	"github.com/Skotchmaster/vape_shop/internal/models"
	"github.com/Skotchmaster/vape_shop/pkg/logging"
)

const (
	TopicOrders   = "order_events"
	TopicProducts = "product_events"

	publishTimeout = 5 * time.Second
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes order and product events as JSON.
type KafkaNotifier struct {
	W MessageWriter
}

func NewKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
}

func NewKafkaNotifier(brokers []string) *KafkaNotifier {
	return &KafkaNotifier{W: NewKafkaWriter(brokers)}
}

func (k *KafkaNotifier) publish(ctx context.Context, topic, key string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := k.W.WriteMessages(ctx, kafka.Message{Topic: topic, Key: []byte(key), Value: data}); err != nil {
		return fmt.Errorf("kafka: write to %s: %w", topic, err)
	}
	return nil
}

func (k *KafkaNotifier) Notify(ctx context.Context, r checkout.Record) error {
	return k.publish(ctx, TopicOrders, r.ID, map[string]any{
		"type":          "order_created",
		"orderID":       r.ID,
		"customer":      r.Customer,
		"items":         r.Items,
		"subtotal":      r.Subtotal,
		"shipping":      r.Shipping,
		"total":         r.Total,
		"paymentMethod": r.PaymentMethod,
		"orderDate":     r.PlacedAt,
	})
}

func (k *KafkaNotifier) ProductSaved(ctx context.Context, p models.Product, created bool) {
	typ := "product_updated"
	if created {
		typ = "product_created"
	}
	err := k.publish(ctx, TopicProducts, p.ID, map[string]any{
		"type":      typ,
		"productID": p.ID,
		"name":      p.Name,
		"price":     p.Price,
		"category":  p.Category,
	})
	if err != nil {
		logging.FromContext(ctx).Error("product_event_error", "type", typ, "product_id", p.ID, "error", err)
	}
}

func (k *KafkaNotifier) ProductDeleted(ctx context.Context, id string) {
	err := k.publish(ctx, TopicProducts, id, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})
	if err != nil {
		logging.FromContext(ctx).Error("product_event_error", "type", "product_deleted", "product_id", id, "error", err)
	}
}

func (k *KafkaNotifier) Close() error {
	return k.W.Close()
}
