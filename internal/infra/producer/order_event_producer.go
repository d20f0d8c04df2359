package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/roselab/warehouse/internal/model"
	"github.com/segmentio/kafka-go"
)

type OrderEventType string

var (
	OrderEventCreated       OrderEventType = "order.created"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
)

// OrderEvent carries the order snapshot published after a successful commit.
type OrderEvent struct {
	Type      OrderEventType    `json:"type"`
	OrderID   uint              `json:"order_id"`
	Status    model.OrderStatus `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
}

// IOrderEventProducer publishes order lifecycle events.
type IOrderEventProducer interface {
	OrderCreated(ctx context.Context, order *model.OrderModel) error
	OrderStatusChanged(ctx context.Context, order *model.OrderModel) error
	Close() error
}

type OrderEventProducer struct {
	writer *kafka.Writer
	closed atomic.Bool
}

// NewOrderEventProducer creates a producer writing to the given topic.
func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		MaxAttempts:  3,
		Compression:  kafka.Snappy,
	}
	return &OrderEventProducer{writer: writer}
}

func (p *OrderEventProducer) OrderCreated(ctx context.Context, order *model.OrderModel) error {
	return p.produce(ctx, OrderEventCreated, order)
}

func (p *OrderEventProducer) OrderStatusChanged(ctx context.Context, order *model.OrderModel) error {
	return p.produce(ctx, OrderEventStatusChanged, order)
}

func (p *OrderEventProducer) produce(ctx context.Context, eventType OrderEventType, order *model.OrderModel) error {
	if p.closed.Load() {
		return fmt.Errorf("producer is closed")
	}

	event := OrderEvent{
		Type:      eventType,
		OrderID:   order.ID,
		Status:    order.Status,
		Timestamp: time.Now().UTC(),
	}
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", order.ID)),
		Value: value,
	})
}

func (p *OrderEventProducer) Close() error {
	if p.closed.CompareAndSwap(false, true) {
		return p.writer.Close()
	}
	return nil
}
