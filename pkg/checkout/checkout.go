// Package checkout creates hosted checkout sessions on Stripe and reads back their settlement.
package checkout

import (
	"context"
	"net/http"
	"time"

	"github.com/Astemirdum/library-borrowing/pkg/circuit_breaker"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

type Config struct {
	SecretKey  string        `yaml:"secretKey" envconfig:"STRIPE_SECRET_KEY" json:"-"`
	SuccessURL string        `yaml:"successURL" envconfig:"STRIPE_SUCCESS_URL" default:"http://localhost:8080/api/v1/payments/success?session_id={CHECKOUT_SESSION_ID}"`
	CancelURL  string        `yaml:"cancelURL" envconfig:"STRIPE_CANCEL_URL" default:"http://localhost:8080/api/v1/payments/cancel?session_id={CHECKOUT_SESSION_ID}"`
	Currency   string        `yaml:"currency" envconfig:"STRIPE_CURRENCY" default:"usd"`
	Timeout    time.Duration `yaml:"timeout" envconfig:"STRIPE_TIMEOUT" default:"10s"`
	// BaseURL overrides the Stripe API endpoint.
	BaseURL string `yaml:"baseURL" envconfig:"STRIPE_BASE_URL"`
}

var ErrGateway = errors.New("checkout gateway failure")

type Session struct {
	ID  string
	URL string
	// AmountTotal is in the smallest currency unit.
	AmountTotal int64
}

// Money converts AmountTotal back to currency units.
func (s Session) Money() decimal.Decimal {
	return decimal.New(s.AmountTotal, -2)
}

type Client struct {
	cfg Config
	api *client.API
	cb  circuit_breaker.CircuitBreaker
	log *zap.Logger
}

func New(cfg Config, log *zap.Logger) *Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	backendCfg := &stripe.BackendConfig{
		HTTPClient:        httpClient,
		MaxNetworkRetries: stripe.Int64(1),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	}
	if cfg.BaseURL != "" {
		backendCfg.URL = stripe.String(cfg.BaseURL)
	}
	b := stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg)

	return &Client{
		cfg: cfg,
		api: client.New(cfg.SecretKey, &stripe.Backends{API: b, Connect: b, Uploads: b}),
		cb:  circuit_breaker.New(10, 30*time.Second, 0.5, 3),
		log: log.Named("checkout"),
	}
}

// CreateSession opens a one-item payment session for amount.
func (c *Client) CreateSession(ctx context.Context, name string, amount decimal.Decimal) (Session, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(c.cfg.SuccessURL),
		CancelURL:  stripe.String(c.cfg.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(c.cfg.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(name),
					},
					UnitAmount: stripe.Int64(ToCents(amount)),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx

	var sess *stripe.CheckoutSession
	err := c.cb.Call(func() error {
		var err error
		sess, err = c.api.CheckoutSessions.New(params)
		return err
	})
	if err != nil {
		c.log.Error("create session", zap.String("item", name), zap.Error(err))
		return Session{}, errors.Wrap(ErrGateway, err.Error())
	}
	return Session{ID: sess.ID, URL: sess.URL, AmountTotal: sess.AmountTotal}, nil
}

func (c *Client) IsPaid(ctx context.Context, sessionID string) (bool, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	var sess *stripe.CheckoutSession
	err := c.cb.Call(func() error {
		var err error
		sess, err = c.api.CheckoutSessions.Get(sessionID, params)
		return err
	})
	if err != nil {
		c.log.Error("get session", zap.String("session_id", sessionID), zap.Error(err))
		return false, errors.Wrap(ErrGateway, err.Error())
	}
	return sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid, nil
}

func ToCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
