package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Config struct {
	Token   string        `yaml:"token" envconfig:"TELEGRAM_BOT_TOKEN" json:"-"`
	ChatID  string        `yaml:"chatID" envconfig:"TELEGRAM_CHAT_ID"`
	BaseURL string        `yaml:"baseURL" envconfig:"TELEGRAM_BASE_URL" default:"https://api.telegram.org"`
	Timeout time.Duration `yaml:"timeout" envconfig:"TELEGRAM_TIMEOUT" default:"5s"`
}

var ErrNotConfigured = errors.New("telegram bot is not configured")

type Client struct {
	cfg    Config
	client *http.Client
	log    *zap.Logger
}

func New(cfg Config, log *zap.Logger) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log.Named("telegram"),
	}
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send posts text to the configured chat via the Bot API sendMessage method.
func (c *Client) Send(ctx context.Context, text string) error {
	if c.cfg.Token == "" || c.cfg.ChatID == "" {
		return ErrNotConfigured
	}
	body, err := json.Marshal(sendMessageRequest{ChatID: c.cfg.ChatID, Text: text})
	if err != nil {
		return err
	}
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.cfg.BaseURL, c.cfg.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		// the request URL carries the bot token
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return errors.Wrap(err, "telegram send")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	var res apiResponse
	if err = json.Unmarshal(data, &res); err != nil || !res.OK || resp.StatusCode != http.StatusOK {
		return errors.Errorf("telegram send: status %d: %s", resp.StatusCode, res.Description)
	}
	c.log.Debug("message sent", zap.Int("len", len(text)))
	return nil
}
