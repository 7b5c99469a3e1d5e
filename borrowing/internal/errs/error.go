package errs

import (
	"github.com/pkg/errors"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("not found")
	ErrInventoryExhausted = errors.New("Book inventory is 0")
	ErrOutstandingPayment = errors.New("You have pending payments. Please complete them before borrowing another book")
	ErrAlreadyReturned    = errors.New("Borrowing has been already returned")
	ErrPermissionDenied   = errors.New("You do not have permission to perform this action")
	ErrUnauthenticated    = errors.New("Authentication credentials were not provided")
	ErrGateway            = errors.New("payment gateway is unavailable")
	ErrUserExists         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}
