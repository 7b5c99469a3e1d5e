// Package notify delivers operator messages, parking undelivered ones on a Kafka topic for retry.
package notify

import (
	"context"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	"github.com/Astemirdum/library-borrowing/pkg/kafka"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Sender interface {
	Send(ctx context.Context, text string) error
}

type Notifier struct {
	sender Sender
	queue  kafka.Enqueuer
	log    *zap.Logger
}

// New builds a notifier; queue may be nil, in which case failures are returned as is.
func New(sender Sender, queue kafka.Enqueuer, log *zap.Logger) *Notifier {
	return &Notifier{
		sender: sender,
		queue:  queue,
		log:    log.Named("notify"),
	}
}

func (n *Notifier) Send(ctx context.Context, text string) error {
	err := n.sender.Send(ctx, text)
	if err == nil {
		return nil
	}
	if n.queue == nil {
		return err
	}
	if qErr := n.queue.Enqueue(kafka.NotificationTopic, model.Notification{Text: text}); qErr != nil {
		return errors.Wrapf(err, "enqueue failed: %v", qErr)
	}
	n.log.Warn("delivery failed, queued for retry", zap.Error(err))
	return nil
}
