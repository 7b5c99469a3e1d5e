package handler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConsumer_Process(t *testing.T) {
	errDown := errors.New("telegram down")
	tests := []struct {
		name      string
		value     string
		failFirst int
		wantCalls int
		wantErr   bool
	}{
		{name: "ok", value: `{"text":"No borrowings overdue today!"}`, wantCalls: 1},
		{name: "retried", value: `{"text":"hello"}`, failFirst: 2, wantCalls: 3},
		{name: "err. gave up", value: `{"text":"hello"}`, failFirst: 10, wantCalls: 3, wantErr: true},
		{name: "err. bad payload", value: `not json`, wantCalls: 0, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var (
				calls int
				texts []string
			)
			c := NewConsumer(func(_ context.Context, text string) error {
				calls++
				if calls <= tt.failFirst {
					return errDown
				}
				texts = append(texts, text)
				return nil
			}, zap.NewNop())
			c.attempts = 3
			c.backoff = time.Millisecond

			err := c.Process(context.Background(), []byte(tt.value))
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Len(t, texts, 1)
			}
			require.Equal(t, tt.wantCalls, calls)
		})
	}
}
