package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type sendFunc func(ctx context.Context, text string) error

// Consumer redelivers queued notifications.
type Consumer struct {
	send     sendFunc
	log      *zap.Logger
	ready    chan bool
	attempts int
	backoff  time.Duration
}

func NewConsumer(send sendFunc, log *zap.Logger) *Consumer {
	return &Consumer{
		send:     send,
		log:      log.Named("consumer"),
		ready:    make(chan bool),
		attempts: 5,
		backoff:  2 * time.Second,
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	select {
	case <-consumer.ready:
	default:
		close(consumer.ready)
	}
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			if err := consumer.Process(session.Context(), message.Value); err != nil {
				consumer.log.Error("notification dropped", zap.Error(err), zap.String("value", string(message.Value)))
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// Process delivers one queued notification, retrying with a linear backoff.
func (consumer *Consumer) Process(ctx context.Context, value []byte) error {
	var msg model.Notification
	if err := json.Unmarshal(value, &msg); err != nil {
		return err
	}
	var err error
	for i := 1; i <= consumer.attempts; i++ {
		if err = consumer.send(ctx, msg.Text); err == nil {
			consumer.log.Debug("notification redelivered", zap.Int("attempt", i))
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(i) * consumer.backoff):
		}
	}
	return err
}
