package service

import (
	"context"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	"github.com/shopspring/decimal"
)

var maxDailyFee = decimal.RequireFromString("999999.99")

func validateFee(fee decimal.Decimal) error {
	switch {
	case fee.IsNegative():
		return validationErr("daily_fee must be greater than or equal to 0")
	case !fee.Equal(fee.Round(2)):
		return validationErr("daily_fee must have at most 2 decimal places")
	case fee.GreaterThan(maxDailyFee):
		return validationErr("daily_fee is too large")
	}
	return nil
}

func (s *Service) ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error) {
	return s.repo.ListBooks(ctx, f)
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error) {
	if err := validateFee(req.DailyFee); err != nil {
		return model.Book{}, err
	}
	return s.repo.CreateBook(ctx, req)
}

func (s *Service) UpdateBook(ctx context.Context, id int64, req model.BookRequest) (model.Book, error) {
	if err := validateFee(req.DailyFee); err != nil {
		return model.Book{}, err
	}
	return s.repo.UpdateBook(ctx, id, req)
}

func (s *Service) PatchBook(ctx context.Context, id int64, patch model.BookPatch) (model.Book, error) {
	if patch.DailyFee != nil {
		if err := validateFee(*patch.DailyFee); err != nil {
			return model.Book{}, err
		}
	}
	return s.repo.PatchBook(ctx, id, patch)
}

func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.repo.DeleteBook(ctx, id)
}
