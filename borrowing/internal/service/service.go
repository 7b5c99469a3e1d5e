package service

import (
	"context"
	"time"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/errs"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/repository"
	"github.com/Astemirdum/library-borrowing/pkg/auth"
	"github.com/Astemirdum/library-borrowing/pkg/checkout"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// FineMultiplier scales the daily fee for every overdue day.
const FineMultiplier = 2

type Checkout interface {
	CreateSession(ctx context.Context, name string, amount decimal.Decimal) (checkout.Session, error)
	IsPaid(ctx context.Context, sessionID string) (bool, error)
}

type Notifier interface {
	Send(ctx context.Context, text string) error
}

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	checkout Checkout
	notifier Notifier
	auth     auth.Config
	now      func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithAuth(cfg auth.Config) Option {
	return func(s *Service) {
		s.auth = cfg
	}
}

func NewService(repo repository.Repository, checkout Checkout, notifier Notifier, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:      log.Named("service"),
		repo:     repo,
		checkout: checkout,
		notifier: notifier,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) today() model.Date {
	return model.NewDate(s.now())
}

// notify delivers best-effort; a failed delivery never fails the caller.
func (s *Service) notify(ctx context.Context, text string) {
	if err := s.notifier.Send(context.WithoutCancel(ctx), text); err != nil {
		s.log.Warn("notification is not delivered", zap.Error(err))
	}
}

// freeSessionPrefix marks payments settled without a checkout session.
const freeSessionPrefix = "free_"

// openSession requests a checkout session and records it as a Pending payment.
// A zero amount never reaches the gateway and is recorded as Paid.
func (s *Service) openSession(ctx context.Context, repo repository.Repository, borrowingID int64, typ model.PaymentType, name string, amount decimal.Decimal) (model.Payment, error) {
	if !amount.IsPositive() {
		return repo.CreatePayment(ctx, model.NewPayment{
			Status:      model.PaymentStatusPaid,
			Type:        typ,
			BorrowingID: borrowingID,
			SessionID:   freeSessionPrefix + uuid.NewString(),
			MoneyToPay:  decimal.Zero,
		})
	}
	sess, err := s.checkout.CreateSession(ctx, name, amount)
	if err != nil {
		return model.Payment{}, errors.Wrap(errs.ErrGateway, err.Error())
	}
	return repo.CreatePayment(ctx, model.NewPayment{
		Type:        typ,
		BorrowingID: borrowingID,
		SessionURL:  sess.URL,
		SessionID:   sess.ID,
		MoneyToPay:  sess.Money(),
	})
}

func validationErr(msg string) error {
	return errors.Wrap(errs.ErrValidation, msg)
}
