package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultPageSize = 5
	MaxPageSize     = 100
)

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"page_size"`
	TotalElements int `json:"total_elements"`
}

type PageRequest struct {
	Page int `query:"page" validate:"omitempty,gte=1"`
	Size int `query:"size" validate:"omitempty,gte=1,lte=100"`
}

// Normalize fills defaults for an absent page or size.
func (p PageRequest) Normalize() PageRequest {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

func (p PageRequest) Offset() uint64 {
	return uint64((p.Page - 1) * p.Size)
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID  int64
	IsStaff bool
}

// Date is a calendar date serialized as YYYY-MM-DD.
type Date struct {
	time.Time `json:",inline"`
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

// DaysSince is the number of calendar days from other to d.
func (d Date) DaysSince(other Date) int {
	return int(dayNumber(d.Time) - dayNumber(other.Time))
}

func dayNumber(t time.Time) int64 {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

const secondsPerDay = 24 * 60 * 60

type Cover string

const (
	CoverHard Cover = "Hard"
	CoverSoft Cover = "Soft"
)

type Book struct {
	ID        int64           `json:"id" db:"id"`
	Title     string          `json:"title" db:"title"`
	Author    string          `json:"author" db:"author"`
	Cover     Cover           `json:"cover" db:"cover"`
	Inventory int             `json:"inventory" db:"inventory"`
	DailyFee  decimal.Decimal `json:"daily_fee" db:"daily_fee"`
}

type BookRequest struct {
	Title     string          `json:"title" validate:"required,max=255"`
	Author    string          `json:"author" validate:"required,max=255"`
	Cover     Cover           `json:"cover" validate:"required,oneof=Hard Soft"`
	Inventory *int            `json:"inventory" validate:"required,gte=0"`
	DailyFee  decimal.Decimal `json:"daily_fee"`
}

type BookPatch struct {
	Title     *string          `json:"title" validate:"omitempty,min=1,max=255"`
	Author    *string          `json:"author" validate:"omitempty,min=1,max=255"`
	Cover     *Cover           `json:"cover" validate:"omitempty,oneof=Hard Soft"`
	Inventory *int             `json:"inventory" validate:"omitempty,gte=0"`
	DailyFee  *decimal.Decimal `json:"daily_fee"`
}

type BookFilter struct {
	Title string `query:"title"`
	PageRequest
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []Book `json:"items"`
}

type Borrowing struct {
	ID                 int64     `json:"id"`
	BorrowDate         Date      `json:"borrow_date"`
	ExpectedReturnDate Date      `json:"expected_return_date"`
	ActualReturnDate   *Date     `json:"actual_return_date"`
	UserID             int64     `json:"user"`
	Book               Book      `json:"book"`
	Payments           []Payment `json:"payments"`
}

func (b Borrowing) IsActive() bool {
	return b.ActualReturnDate == nil
}

type BorrowingCreateRequest struct {
	BookID             int64 `json:"book" validate:"required,gt=0"`
	ExpectedReturnDate Date  `json:"expected_return_date" validate:"required"`
}

type NewBorrowing struct {
	BookID             int64
	UserID             int64
	BorrowDate         Date
	ExpectedReturnDate Date
}

// BorrowingFilter.ActiveOnly keeps unreturned borrowings; false applies no filter.
type BorrowingFilter struct {
	UserID     *int64 `query:"user_id"`
	ActiveOnly bool   `query:"is_active"`
	PageRequest
}

type ListBorrowings struct {
	Paging `json:",inline"`
	Items  []Borrowing `json:"items"`
}

type ReturnResponse struct {
	Message   string    `json:"message"`
	Borrowing Borrowing `json:"borrowing"`
	Fine      *Payment  `json:"fine,omitempty"`
}

// OverdueBorrowing is an unreturned borrowing joined with its book and borrower.
type OverdueBorrowing struct {
	ID                 int64
	BorrowDate         Date
	ExpectedReturnDate Date
	BookTitle          string
	UserID             int64
	UserFullName       string
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
)

type PaymentType string

const (
	PaymentTypePayment PaymentType = "Payment"
	PaymentTypeFine    PaymentType = "Fine"
)

type Payment struct {
	ID          int64           `json:"id" db:"id"`
	Status      PaymentStatus   `json:"status" db:"status"`
	Type        PaymentType     `json:"type" db:"type"`
	BorrowingID int64           `json:"borrowing" db:"borrowing_id"`
	SessionURL  string          `json:"session_url" db:"session_url"`
	SessionID   string          `json:"session_id" db:"session_id"`
	MoneyToPay  decimal.Decimal `json:"money_to_pay" db:"money_to_pay"`
}

// NewPayment.Status defaults to Pending.
type NewPayment struct {
	Status      PaymentStatus
	Type        PaymentType
	BorrowingID int64
	SessionURL  string
	SessionID   string
	MoneyToPay  decimal.Decimal
}

type PaymentFilter struct {
	UserID *int64        `query:"-"`
	Status PaymentStatus `query:"status" validate:"omitempty,oneof=Pending Paid"`
	Type   PaymentType   `query:"type" validate:"omitempty,oneof=Payment Fine"`
	PageRequest
}

type ListPayments struct {
	Paging `json:",inline"`
	Items  []Payment `json:"items"`
}

type PaymentCallbackResponse struct {
	Message string   `json:"message"`
	Payment *Payment `json:"payment,omitempty"`
}

type User struct {
	ID           int64  `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	FirstName    string `json:"first_name" db:"first_name"`
	LastName     string `json:"last_name" db:"last_name"`
	IsStaff      bool   `json:"is_staff" db:"is_staff"`
}

func (u User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

type UserCreateRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=5"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
}

type NewUser struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
}

type UserPatch struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name" validate:"omitempty,max=150"`
	Password  *string `json:"password" validate:"omitempty,min=5"`

	PasswordHash *string `json:"-"`
}

type TokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Access string `json:"access"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Notification is the queued form of an operator message.
type Notification struct {
	Text string `json:"text"`
}
