package service

import (
	"context"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/errs"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func intDec(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// BorrowingFee is the prepaid amount for keeping a book from borrowDate to expected.
func BorrowingFee(dailyFee decimal.Decimal, borrowDate, expected model.Date) decimal.Decimal {
	return dailyFee.Mul(intDec(expected.DaysSince(borrowDate)))
}

// Fine is charged for every day past the expected return date.
func Fine(dailyFee decimal.Decimal, overdueDays int) decimal.Decimal {
	return dailyFee.Mul(intDec(overdueDays * FineMultiplier))
}

func (s *Service) CreateBorrowing(ctx context.Context, actor model.Actor, req model.BorrowingCreateRequest) (model.Borrowing, error) {
	today := s.today()
	if req.ExpectedReturnDate.IsZero() {
		return model.Borrowing{}, validationErr("expected_return_date is required")
	}
	if !req.ExpectedReturnDate.After(today.Time) {
		return model.Borrowing{}, validationErr("expected_return_date must be later than today")
	}

	var out model.Borrowing
	err := s.repo.WithTx(ctx, func(repo repository.Repository) error {
		book, err := repo.GetBookForUpdate(ctx, req.BookID)
		if err != nil {
			return err
		}
		if book.Inventory <= 0 {
			return errs.ErrInventoryExhausted
		}
		pending, err := repo.HasPendingPayments(ctx, actor.UserID)
		if err != nil {
			return err
		}
		if pending {
			return errs.ErrOutstandingPayment
		}

		b, err := repo.CreateBorrowing(ctx, model.NewBorrowing{
			BookID:             book.ID,
			UserID:             actor.UserID,
			BorrowDate:         today,
			ExpectedReturnDate: model.NewDate(req.ExpectedReturnDate.Time),
		})
		if err != nil {
			return err
		}
		if err = repo.DecrementInventory(ctx, book.ID); err != nil {
			return err
		}
		book.Inventory--
		b.Book = book

		p, err := s.openSession(ctx, repo, b.ID, model.PaymentTypePayment,
			"Borrowing of "+book.Title, BorrowingFee(book.DailyFee, b.BorrowDate, b.ExpectedReturnDate))
		if err != nil {
			return err
		}
		b.Payments = []model.Payment{p}
		out = b
		return nil
	})
	if err != nil {
		return model.Borrowing{}, err
	}

	s.notify(ctx, createdMessage(out, s.borrower(ctx, out.UserID)))
	return out, nil
}

func (s *Service) ReturnBorrowing(ctx context.Context, actor model.Actor, id int64) (model.ReturnResponse, error) {
	today := s.today()

	var resp model.ReturnResponse
	err := s.repo.WithTx(ctx, func(repo repository.Repository) error {
		b, err := repo.GetBorrowingForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !actor.IsStaff && b.UserID != actor.UserID {
			return errs.ErrNotFound
		}
		if !b.IsActive() {
			return errs.ErrAlreadyReturned
		}
		if err = repo.MarkReturned(ctx, b.ID, today); err != nil {
			return err
		}
		if err = repo.IncrementInventory(ctx, b.Book.ID); err != nil {
			return err
		}
		b.ActualReturnDate = &today
		b.Book.Inventory++

		resp.Message = msgReturned
		if overdue := today.DaysSince(b.ExpectedReturnDate); overdue > 0 {
			fine, err := s.openSession(ctx, repo, b.ID, model.PaymentTypeFine,
				"Fine for "+b.Book.Title, Fine(b.Book.DailyFee, overdue))
			if err != nil {
				return err
			}
			resp.Fine = &fine
			resp.Message = msgReturnedOverdue
		}

		payments, err := repo.ListBorrowingPayments(ctx, []int64{b.ID})
		if err != nil {
			return err
		}
		b.Payments = paymentsOf(payments, b.ID)
		resp.Borrowing = b
		return nil
	})
	if err != nil {
		return model.ReturnResponse{}, err
	}

	s.notify(ctx, returnedMessage(resp.Borrowing, s.borrower(ctx, resp.Borrowing.UserID), resp.Fine))
	return resp, nil
}

func (s *Service) GetBorrowing(ctx context.Context, actor model.Actor, id int64) (model.Borrowing, error) {
	b, err := s.repo.GetBorrowing(ctx, id)
	if err != nil {
		return model.Borrowing{}, err
	}
	if !actor.IsStaff && b.UserID != actor.UserID {
		return model.Borrowing{}, errs.ErrNotFound
	}
	payments, err := s.repo.ListBorrowingPayments(ctx, []int64{b.ID})
	if err != nil {
		return model.Borrowing{}, err
	}
	b.Payments = paymentsOf(payments, b.ID)
	return b, nil
}

// ListBorrowings shows a non-staff caller only their own borrowings; user_id is honored for staff.
func (s *Service) ListBorrowings(ctx context.Context, actor model.Actor, f model.BorrowingFilter) (model.ListBorrowings, error) {
	if !actor.IsStaff {
		f.UserID = &actor.UserID
	}
	list, err := s.repo.ListBorrowings(ctx, f)
	if err != nil {
		return model.ListBorrowings{}, err
	}
	ids := make([]int64, 0, len(list.Items))
	for _, b := range list.Items {
		ids = append(ids, b.ID)
	}
	payments, err := s.repo.ListBorrowingPayments(ctx, ids)
	if err != nil {
		return model.ListBorrowings{}, err
	}
	for i := range list.Items {
		list.Items[i].Payments = paymentsOf(payments, list.Items[i].ID)
	}
	return list, nil
}

func (s *Service) borrower(ctx context.Context, userID int64) model.User {
	u, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		s.log.Warn("borrower lookup", zap.Int64("user_id", userID), zap.Error(err))
		return model.User{ID: userID}
	}
	return u
}

func paymentsOf(m map[int64][]model.Payment, id int64) []model.Payment {
	if p := m[id]; p != nil {
		return p
	}
	return []model.Payment{}
}
