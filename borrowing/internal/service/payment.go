package service

import (
	"context"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/errs"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	"github.com/pkg/errors"
)

func (s *Service) ListPayments(ctx context.Context, actor model.Actor, f model.PaymentFilter) (model.ListPayments, error) {
	f.UserID = nil
	if !actor.IsStaff {
		f.UserID = &actor.UserID
	}
	return s.repo.ListPayments(ctx, f)
}

func (s *Service) GetPayment(ctx context.Context, actor model.Actor, id int64) (model.Payment, error) {
	var owner *int64
	if !actor.IsStaff {
		owner = &actor.UserID
	}
	return s.repo.GetPayment(ctx, id, owner)
}

// PaymentSuccess settles the payment of a checkout session once the gateway reports it paid.
// Repeated calls are no-ops.
func (s *Service) PaymentSuccess(ctx context.Context, sessionID string) (model.PaymentCallbackResponse, error) {
	if sessionID == "" {
		return model.PaymentCallbackResponse{}, validationErr("session_id is required")
	}
	p, err := s.repo.GetPaymentBySession(ctx, sessionID)
	if err != nil {
		return model.PaymentCallbackResponse{}, err
	}
	if p.Status == model.PaymentStatusPaid {
		return model.PaymentCallbackResponse{Message: msgPaymentPaid, Payment: &p}, nil
	}

	paid, err := s.checkout.IsPaid(ctx, sessionID)
	if err != nil {
		return model.PaymentCallbackResponse{}, errors.Wrap(errs.ErrGateway, err.Error())
	}
	if !paid {
		return model.PaymentCallbackResponse{Message: msgPaymentNotYet, Payment: &p}, nil
	}

	changed, err := s.repo.MarkPaid(ctx, sessionID)
	if err != nil {
		return model.PaymentCallbackResponse{}, err
	}
	p.Status = model.PaymentStatusPaid
	if !changed {
		return model.PaymentCallbackResponse{Message: msgPaymentPaid, Payment: &p}, nil
	}
	s.notify(ctx, paidMessage(p))
	return model.PaymentCallbackResponse{Message: msgPaymentDone, Payment: &p}, nil
}

func (s *Service) PaymentCancel(ctx context.Context, sessionID string) (model.PaymentCallbackResponse, error) {
	if sessionID == "" {
		return model.PaymentCallbackResponse{}, validationErr("session_id is required")
	}
	p, err := s.repo.GetPaymentBySession(ctx, sessionID)
	if err != nil {
		return model.PaymentCallbackResponse{}, err
	}
	return model.PaymentCallbackResponse{Message: msgPaymentCancel, Payment: &p}, nil
}
