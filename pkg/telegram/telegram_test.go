package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Astemirdum/library-borrowing/pkg/telegram"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_Send(t *testing.T) {
	type response struct {
		code int
		body string
	}
	tests := []struct {
		name     string
		cfg      telegram.Config
		response response
		wantErr  bool
	}{
		{
			name:     "ok",
			cfg:      telegram.Config{Token: "123:abc", ChatID: "42"},
			response: response{code: http.StatusOK, body: `{"ok":true,"result":{}}`},
		},
		{
			name:     "err. api rejected",
			cfg:      telegram.Config{Token: "123:abc", ChatID: "42"},
			response: response{code: http.StatusBadRequest, body: `{"ok":false,"description":"Bad Request: chat not found"}`},
			wantErr:  true,
		},
		{
			name:    "err. not configured",
			cfg:     telegram.Config{},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/bot123:abc/sendMessage", r.URL.Path)
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				w.WriteHeader(tt.response.code)
				_, _ = w.Write([]byte(tt.response.body))
			}))
			defer srv.Close()

			cfg := tt.cfg
			cfg.BaseURL = srv.URL
			cfg.Timeout = time.Second
			err := telegram.New(cfg, zap.NewNop()).Send(context.Background(), "No borrowings overdue today!")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, map[string]string{"chat_id": "42", "text": "No borrowings overdue today!"}, got)
		})
	}
}

func TestClient_SendTransportErrorHidesToken(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	cfg := telegram.Config{Token: "123:secret-token", ChatID: "42", BaseURL: base, Timeout: time.Second}
	err := telegram.New(cfg, zap.NewNop()).Send(context.Background(), "hello")
	require.Error(t, err)
	require.NotContains(t, err.Error(), "secret-token")
	require.Contains(t, err.Error(), "telegram send")
}
