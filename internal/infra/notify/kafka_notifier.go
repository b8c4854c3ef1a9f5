package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

const OrderCreatedEvent = "order.created"

var ErrWriterClosed = errors.New("kafka notifier is closed")

// MessageWriter is the subset of *kafka.Writer used here.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes one event per order, keyed by order id so a partition keeps per-order ordering.
type KafkaNotifier struct {
	writer MessageWriter
	topic  string
	closed atomic.Bool
}

func NewKafkaWriter(brokers []string, topic string, logger *zerolog.Logger) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		MaxAttempts:  3,
		Transport: &kafka.Transport{
			Dial: func(ctx context.Context, network string, address string) (net.Conn, error) {
				dialer := &kafka.Dialer{
					Timeout:   10 * time.Second,
					DualStack: true,
					KeepAlive: 30 * time.Second,
				}
				return dialer.DialContext(ctx, network, address)
			},
		},
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			if logger != nil {
				logger.Error().Msgf("kafka writer: "+msg, args...)
			}
		}),
	}
}

func NewKafkaNotifier(writer MessageWriter, topic string) *KafkaNotifier {
	if writer == nil {
		panic("kafka writer cannot be nil")
	}
	return &KafkaNotifier{writer: writer, topic: topic}
}

func (k *KafkaNotifier) Name() string {
	return "kafka"
}

func (k *KafkaNotifier) Notify(ctx context.Context, n OrderNotification) error {
	if k.closed.Load() {
		return ErrWriterClosed
	}

	value, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to encode order notification: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(n.OrderID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(OrderCreatedEvent)},
		},
		Time: time.Now().UTC(),
	}
	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish order %s to %s: %w", n.OrderID, k.topic, err)
	}
	return nil
}

func (k *KafkaNotifier) Close() error {
	if !k.closed.CompareAndSwap(false, true) {
		return nil
	}
	return k.writer.Close()
}
