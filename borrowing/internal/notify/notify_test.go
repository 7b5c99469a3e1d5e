package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/notify"
	"github.com/Astemirdum/library-borrowing/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sender struct {
	err  error
	sent []string
}

func (s *sender) Send(_ context.Context, text string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, text)
	return nil
}

func TestNotifier_Send(t *testing.T) {
	errDown := errors.New("telegram down")

	t.Run("delivered", func(t *testing.T) {
		s := &sender{}
		require.NoError(t, notify.New(s, nil, zap.NewNop()).Send(context.Background(), "hello"))
		require.Equal(t, []string{"hello"}, s.sent)
	})

	t.Run("no queue", func(t *testing.T) {
		err := notify.New(&sender{err: errDown}, nil, zap.NewNop()).Send(context.Background(), "hello")
		require.ErrorIs(t, err, errDown)
	})

	t.Run("queued on failure", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
			var msg model.Notification
			if err := json.Unmarshal(val, &msg); err != nil {
				return err
			}
			if msg.Text != "No borrowings overdue today!" {
				return errors.New("unexpected text " + msg.Text)
			}
			return nil
		})
		defer func() { require.NoError(t, producer.Close()) }()

		n := notify.New(&sender{err: errDown}, kafka.NewEnqueuer(producer), zap.NewNop())
		require.NoError(t, n.Send(context.Background(), "No borrowings overdue today!"))
	})

	t.Run("queue failure", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
		defer func() { require.NoError(t, producer.Close()) }()

		n := notify.New(&sender{err: errDown}, kafka.NewEnqueuer(producer), zap.NewNop())
		require.ErrorIs(t, n.Send(context.Background(), "hello"), errDown)
	})
}
