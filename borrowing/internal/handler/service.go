package handler

import (
	"context"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BorrowingService interface {
	ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id int64, req model.BookRequest) (model.Book, error)
	PatchBook(ctx context.Context, id int64, patch model.BookPatch) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error

	ListBorrowings(ctx context.Context, actor model.Actor, f model.BorrowingFilter) (model.ListBorrowings, error)
	GetBorrowing(ctx context.Context, actor model.Actor, id int64) (model.Borrowing, error)
	CreateBorrowing(ctx context.Context, actor model.Actor, req model.BorrowingCreateRequest) (model.Borrowing, error)
	ReturnBorrowing(ctx context.Context, actor model.Actor, id int64) (model.ReturnResponse, error)
	NotifyOverdue(ctx context.Context) (int, error)

	ListPayments(ctx context.Context, actor model.Actor, f model.PaymentFilter) (model.ListPayments, error)
	GetPayment(ctx context.Context, actor model.Actor, id int64) (model.Payment, error)
	PaymentSuccess(ctx context.Context, sessionID string) (model.PaymentCallbackResponse, error)
	PaymentCancel(ctx context.Context, sessionID string) (model.PaymentCallbackResponse, error)

	Register(ctx context.Context, req model.UserCreateRequest) (model.User, error)
	Login(ctx context.Context, req model.TokenRequest) (model.TokenResponse, error)
	Me(ctx context.Context, actor model.Actor) (model.User, error)
	UpdateMe(ctx context.Context, actor model.Actor, patch model.UserPatch) (model.User, error)
}

var _ BorrowingService = (*service.Service)(nil)
