package kafka_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Astemirdum/library-borrowing/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingGroup struct {
	sarama.ConsumerGroup
	calls  atomic.Int32
	closed atomic.Bool
	err    error
}

func (g *failingGroup) Consume(context.Context, []string, sarama.ConsumerGroupHandler) error {
	g.calls.Add(1)
	return g.err
}

func (g *failingGroup) Close() error {
	g.closed.Store(true)
	return nil
}

func TestConsume_BacksOffOnError(t *testing.T) {
	group := &failingGroup{err: errors.New("kafka: client has run out of available brokers")}
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	start := time.Now()
	require.NoError(t, kafka.Consume(ctx, group, nil, zap.NewNop(), kafka.NotificationTopic))
	require.Less(t, time.Since(start), time.Second)
	require.EqualValues(t, 1, group.calls.Load())
	require.True(t, group.closed.Load())
}

func TestConsume_ClosedGroup(t *testing.T) {
	group := &failingGroup{err: sarama.ErrClosedConsumerGroup}

	require.NoError(t, kafka.Consume(context.Background(), group, nil, zap.NewNop(), kafka.NotificationTopic))
	require.EqualValues(t, 1, group.calls.Load())
	require.True(t, group.closed.Load())
}
