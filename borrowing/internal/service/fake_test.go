package service_test

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/errs"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/repository"
	"github.com/Astemirdum/library-borrowing/pkg/checkout"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type memState struct {
	seq        int64
	books      map[int64]model.Book
	borrowings map[int64]model.Borrowing
	payments   map[int64]model.Payment
	users      map[int64]model.User
}

func (s *memState) clone() memState {
	c := memState{
		seq:        s.seq,
		books:      make(map[int64]model.Book, len(s.books)),
		borrowings: make(map[int64]model.Borrowing, len(s.borrowings)),
		payments:   make(map[int64]model.Payment, len(s.payments)),
		users:      make(map[int64]model.User, len(s.users)),
	}
	for k, v := range s.books {
		c.books[k] = v
	}
	for k, v := range s.borrowings {
		c.borrowings[k] = v
	}
	for k, v := range s.payments {
		c.payments[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	return c
}

// memRepo is an in-memory repository; a failed WithTx restores the state snapshot.
type memRepo struct {
	s    *memState
	inTx bool
}

var _ repository.Repository = (*memRepo)(nil)

func newMemRepo() *memRepo {
	return &memRepo{s: &memState{
		books:      map[int64]model.Book{},
		borrowings: map[int64]model.Borrowing{},
		payments:   map[int64]model.Payment{},
		users:      map[int64]model.User{},
	}}
}

func (r *memRepo) nextID() int64 {
	r.s.seq++
	return r.s.seq
}

func (r *memRepo) addBook(title string, inventory int, fee string) model.Book {
	b := model.Book{ID: r.nextID(), Title: title, Author: "Frank Herbert", Cover: model.CoverHard, Inventory: inventory, DailyFee: decimal.RequireFromString(fee)}
	r.s.books[b.ID] = b
	return b
}

func (r *memRepo) addUser(first, last string, staff bool) model.User {
	u := model.User{ID: r.nextID(), Email: strings.ToLower(first) + "@library.io", FirstName: first, LastName: last, IsStaff: staff}
	r.s.users[u.ID] = u
	return u
}

func (r *memRepo) WithTx(_ context.Context, fn func(repo repository.Repository) error) error {
	if r.inTx {
		return fn(r)
	}
	snapshot := r.s.clone()
	if err := fn(&memRepo{s: r.s, inTx: true}); err != nil {
		*r.s = snapshot
		return err
	}
	return nil
}

func (r *memRepo) ListBooks(_ context.Context, f model.BookFilter) (model.ListBooks, error) {
	page := f.PageRequest.Normalize()
	var items []model.Book
	for _, b := range r.s.books {
		if f.Title == "" || strings.Contains(strings.ToLower(b.Title), strings.ToLower(f.Title)) {
			items = append(items, b)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return model.ListBooks{Paging: model.Paging{Page: page.Page, PageSize: page.Size, TotalElements: len(items)}, Items: items}, nil
}

func (r *memRepo) GetBook(_ context.Context, id int64) (model.Book, error) {
	b, ok := r.s.books[id]
	if !ok {
		return model.Book{}, errs.ErrNotFound
	}
	return b, nil
}

func (r *memRepo) GetBookForUpdate(ctx context.Context, id int64) (model.Book, error) {
	return r.GetBook(ctx, id)
}

func (r *memRepo) CreateBook(_ context.Context, req model.BookRequest) (model.Book, error) {
	b := model.Book{ID: r.nextID(), Title: req.Title, Author: req.Author, Cover: req.Cover, Inventory: *req.Inventory, DailyFee: req.DailyFee}
	r.s.books[b.ID] = b
	return b, nil
}

func (r *memRepo) UpdateBook(_ context.Context, id int64, req model.BookRequest) (model.Book, error) {
	if _, ok := r.s.books[id]; !ok {
		return model.Book{}, errs.ErrNotFound
	}
	b := model.Book{ID: id, Title: req.Title, Author: req.Author, Cover: req.Cover, Inventory: *req.Inventory, DailyFee: req.DailyFee}
	r.s.books[id] = b
	return b, nil
}

func (r *memRepo) PatchBook(_ context.Context, id int64, patch model.BookPatch) (model.Book, error) {
	b, ok := r.s.books[id]
	if !ok {
		return model.Book{}, errs.ErrNotFound
	}
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Inventory != nil {
		b.Inventory = *patch.Inventory
	}
	if patch.DailyFee != nil {
		b.DailyFee = *patch.DailyFee
	}
	r.s.books[id] = b
	return b, nil
}

func (r *memRepo) DeleteBook(_ context.Context, id int64) error {
	if _, ok := r.s.books[id]; !ok {
		return errs.ErrNotFound
	}
	delete(r.s.books, id)
	return nil
}

func (r *memRepo) DecrementInventory(_ context.Context, bookID int64) error {
	b, ok := r.s.books[bookID]
	if !ok || b.Inventory <= 0 {
		return errs.ErrInventoryExhausted
	}
	b.Inventory--
	r.s.books[bookID] = b
	return nil
}

func (r *memRepo) IncrementInventory(_ context.Context, bookID int64) error {
	b, ok := r.s.books[bookID]
	if !ok {
		return errs.ErrNotFound
	}
	b.Inventory++
	r.s.books[bookID] = b
	return nil
}

func (r *memRepo) CreateBorrowing(_ context.Context, nb model.NewBorrowing) (model.Borrowing, error) {
	if _, ok := r.s.books[nb.BookID]; !ok {
		return model.Borrowing{}, errs.ErrNotFound
	}
	b := model.Borrowing{
		ID:                 r.nextID(),
		BorrowDate:         nb.BorrowDate,
		ExpectedReturnDate: nb.ExpectedReturnDate,
		UserID:             nb.UserID,
		Book:               model.Book{ID: nb.BookID},
		Payments:           []model.Payment{},
	}
	r.s.borrowings[b.ID] = b
	return b, nil
}

func (r *memRepo) GetBorrowing(_ context.Context, id int64) (model.Borrowing, error) {
	b, ok := r.s.borrowings[id]
	if !ok {
		return model.Borrowing{}, errs.ErrNotFound
	}
	b.Book = r.s.books[b.Book.ID]
	b.Payments = []model.Payment{}
	return b, nil
}

func (r *memRepo) GetBorrowingForUpdate(ctx context.Context, id int64) (model.Borrowing, error) {
	return r.GetBorrowing(ctx, id)
}

func (r *memRepo) ListBorrowings(ctx context.Context, f model.BorrowingFilter) (model.ListBorrowings, error) {
	page := f.PageRequest.Normalize()
	items := []model.Borrowing{}
	for id, b := range r.s.borrowings {
		if f.UserID != nil && b.UserID != *f.UserID {
			continue
		}
		if f.ActiveOnly && !b.IsActive() {
			continue
		}
		full, _ := r.GetBorrowing(ctx, id)
		items = append(items, full)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return model.ListBorrowings{Paging: model.Paging{Page: page.Page, PageSize: page.Size, TotalElements: len(items)}, Items: items}, nil
}

func (r *memRepo) MarkReturned(_ context.Context, id int64, date model.Date) error {
	b, ok := r.s.borrowings[id]
	if !ok || !b.IsActive() {
		return errs.ErrAlreadyReturned
	}
	b.ActualReturnDate = &date
	r.s.borrowings[id] = b
	return nil
}

func (r *memRepo) ListOverdue(_ context.Context, until model.Date) ([]model.OverdueBorrowing, error) {
	var items []model.OverdueBorrowing
	for _, b := range r.s.borrowings {
		if !b.IsActive() || b.ExpectedReturnDate.After(until.Time) {
			continue
		}
		u := r.s.users[b.UserID]
		items = append(items, model.OverdueBorrowing{
			ID:                 b.ID,
			BorrowDate:         b.BorrowDate,
			ExpectedReturnDate: b.ExpectedReturnDate,
			BookTitle:          r.s.books[b.Book.ID].Title,
			UserID:             b.UserID,
			UserFullName:       u.FullName(),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *memRepo) HasPendingPayments(_ context.Context, userID int64) (bool, error) {
	for _, p := range r.s.payments {
		if p.Status == model.PaymentStatusPending && r.s.borrowings[p.BorrowingID].UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) CreatePayment(_ context.Context, np model.NewPayment) (model.Payment, error) {
	for _, p := range r.s.payments {
		if p.SessionID == np.SessionID {
			return model.Payment{}, errs.ErrValidation
		}
	}
	status := np.Status
	if status == "" {
		status = model.PaymentStatusPending
	}
	p := model.Payment{
		ID:          r.nextID(),
		Status:      status,
		Type:        np.Type,
		BorrowingID: np.BorrowingID,
		SessionURL:  np.SessionURL,
		SessionID:   np.SessionID,
		MoneyToPay:  np.MoneyToPay,
	}
	r.s.payments[p.ID] = p
	return p, nil
}

func (r *memRepo) GetPayment(_ context.Context, id int64, userID *int64) (model.Payment, error) {
	p, ok := r.s.payments[id]
	if !ok || (userID != nil && r.s.borrowings[p.BorrowingID].UserID != *userID) {
		return model.Payment{}, errs.ErrNotFound
	}
	return p, nil
}

func (r *memRepo) GetPaymentBySession(_ context.Context, sessionID string) (model.Payment, error) {
	for _, p := range r.s.payments {
		if p.SessionID == sessionID {
			return p, nil
		}
	}
	return model.Payment{}, errs.ErrNotFound
}

func (r *memRepo) ListPayments(_ context.Context, f model.PaymentFilter) (model.ListPayments, error) {
	page := f.PageRequest.Normalize()
	items := []model.Payment{}
	for _, p := range r.s.payments {
		if f.UserID != nil && r.s.borrowings[p.BorrowingID].UserID != *f.UserID {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		items = append(items, p)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return model.ListPayments{Paging: model.Paging{Page: page.Page, PageSize: page.Size, TotalElements: len(items)}, Items: items}, nil
}

func (r *memRepo) ListBorrowingPayments(_ context.Context, ids []int64) (map[int64][]model.Payment, error) {
	want := map[int64]bool{}
	for _, id := range ids {
		want[id] = true
	}
	out := map[int64][]model.Payment{}
	for _, p := range r.s.payments {
		if want[p.BorrowingID] {
			out[p.BorrowingID] = append(out[p.BorrowingID], p)
		}
	}
	for id := range out {
		sort.Slice(out[id], func(i, j int) bool { return out[id][i].ID < out[id][j].ID })
	}
	return out, nil
}

func (r *memRepo) MarkPaid(_ context.Context, sessionID string) (bool, error) {
	for id, p := range r.s.payments {
		if p.SessionID == sessionID && p.Status == model.PaymentStatusPending {
			p.Status = model.PaymentStatusPaid
			r.s.payments[id] = p
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) CreateUser(_ context.Context, nu model.NewUser) (model.User, error) {
	for _, u := range r.s.users {
		if u.Email == nu.Email {
			return model.User{}, errs.ErrUserExists
		}
	}
	u := model.User{ID: r.nextID(), Email: nu.Email, PasswordHash: nu.PasswordHash, FirstName: nu.FirstName, LastName: nu.LastName}
	r.s.users[u.ID] = u
	return u, nil
}

func (r *memRepo) GetUser(_ context.Context, id int64) (model.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return model.User{}, errs.ErrNotFound
	}
	return u, nil
}

func (r *memRepo) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return model.User{}, errs.ErrNotFound
}

func (r *memRepo) UpdateUser(_ context.Context, id int64, patch model.UserPatch) (model.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return model.User{}, errs.ErrNotFound
	}
	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = *patch.LastName
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	r.s.users[id] = u
	return u, nil
}

type fakeCheckout struct {
	err   error
	items []string
	paid  map[string]bool
}

func (c *fakeCheckout) CreateSession(_ context.Context, name string, amount decimal.Decimal) (checkout.Session, error) {
	if c.err != nil {
		return checkout.Session{}, c.err
	}
	c.items = append(c.items, name)
	id := fmt.Sprintf("cs_test_%d", len(c.items))
	return checkout.Session{ID: id, URL: "https://checkout.stripe.com/c/pay/" + id, AmountTotal: checkout.ToCents(amount)}, nil
}

func (c *fakeCheckout) IsPaid(_ context.Context, sessionID string) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	return c.paid[sessionID], nil
}

type fakeNotifier struct {
	err      error
	messages []string
}

func (n *fakeNotifier) Send(_ context.Context, text string) error {
	if n.err != nil {
		return n.err
	}
	n.messages = append(n.messages, text)
	return nil
}

var errGatewayDown = errors.New("stripe: connection refused")

func itoa(n int64) string {
	return fmt.Sprintf("%d", n)
}
