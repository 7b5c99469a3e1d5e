//go:build integration

package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/errs"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/repository"
	"github.com/Astemirdum/library-borrowing/borrowing/migrations"
	"github.com/Astemirdum/library-borrowing/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Run against a disposable database:
//
//	DB_HOST=localhost DB_PASSWORD=postgres go test -tags integration ./borrowing/internal/repository/
func newRepo(t *testing.T) repository.Repository {
	t.Helper()
	var cfg postgres.DB
	require.NoError(t, envconfig.Process("", &cfg))

	ctx := context.Background()
	pool, err := postgres.NewPostgresDB(ctx, &cfg, migrations.MigrationFiles)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `truncate payments, borrowings, books, users restart identity cascade`)
	require.NoError(t, err)

	repo, err := repository.NewRepository(pool, zap.NewNop())
	require.NoError(t, err)
	return repo
}

func seed(t *testing.T, repo repository.Repository, inventory int) (model.Book, model.User) {
	t.Helper()
	ctx := context.Background()
	book, err := repo.CreateBook(ctx, model.BookRequest{
		Title:     "Dune",
		Author:    "Frank Herbert",
		Cover:     model.CoverHard,
		Inventory: &inventory,
		DailyFee:  decimal.RequireFromString("2.00"),
	})
	require.NoError(t, err)
	u, err := repo.CreateUser(ctx, model.NewUser{Email: "alice@mail.com", PasswordHash: "x", FirstName: "Alice"})
	require.NoError(t, err)
	return book, u
}

func today() model.Date {
	return model.NewDate(time.Now())
}

func TestRepository_DecrementInventoryStopsAtZero(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	book, _ := seed(t, repo, 1)

	require.NoError(t, repo.DecrementInventory(ctx, book.ID))
	require.ErrorIs(t, repo.DecrementInventory(ctx, book.ID), errs.ErrInventoryExhausted)

	got, err := repo.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.Inventory)
}

func TestRepository_MarkReturnedOnce(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	book, u := seed(t, repo, 1)

	b, err := repo.CreateBorrowing(ctx, model.NewBorrowing{
		BookID: book.ID, UserID: u.ID, BorrowDate: today(), ExpectedReturnDate: today().AddDays(3),
	})
	require.NoError(t, err)

	require.NoError(t, repo.MarkReturned(ctx, b.ID, today()))
	require.ErrorIs(t, repo.MarkReturned(ctx, b.ID, today().AddDays(1)), errs.ErrAlreadyReturned)

	got, err := repo.GetBorrowing(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ActualReturnDate)
	require.Equal(t, today().String(), got.ActualReturnDate.String())
}

func TestRepository_MarkPaidIdempotent(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	book, u := seed(t, repo, 1)

	b, err := repo.CreateBorrowing(ctx, model.NewBorrowing{
		BookID: book.ID, UserID: u.ID, BorrowDate: today(), ExpectedReturnDate: today().AddDays(1),
	})
	require.NoError(t, err)
	_, err = repo.CreatePayment(ctx, model.NewPayment{
		Type: model.PaymentTypePayment, BorrowingID: b.ID, SessionURL: "https://checkout.test/cs_1",
		SessionID: "cs_1", MoneyToPay: decimal.RequireFromString("2.00"),
	})
	require.NoError(t, err)

	pending, err := repo.HasPendingPayments(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, pending)

	changed, err := repo.MarkPaid(ctx, "cs_1")
	require.NoError(t, err)
	require.True(t, changed)
	changed, err = repo.MarkPaid(ctx, "cs_1")
	require.NoError(t, err)
	require.False(t, changed)

	pending, err = repo.HasPendingPayments(ctx, u.ID)
	require.NoError(t, err)
	require.False(t, pending)
}

// Two transactions racing for the last copy: the row lock lets exactly one through.
func TestRepository_LastCopyRace(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	book, u := seed(t, repo, 1)

	const workers = 2
	var (
		wg   sync.WaitGroup
		errc = make(chan error, workers)
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errc <- repo.WithTx(ctx, func(tx repository.Repository) error {
				b, err := tx.GetBookForUpdate(ctx, book.ID)
				if err != nil {
					return err
				}
				if b.Inventory <= 0 {
					return errs.ErrInventoryExhausted
				}
				// hold the lock while the other transaction queues on it
				time.Sleep(100 * time.Millisecond)
				if _, err = tx.CreateBorrowing(ctx, model.NewBorrowing{
					BookID: book.ID, UserID: u.ID, BorrowDate: today(), ExpectedReturnDate: today().AddDays(2),
				}); err != nil {
					return err
				}
				return tx.DecrementInventory(ctx, book.ID)
			})
		}()
	}
	wg.Wait()
	close(errc)

	var ok, exhausted int
	for err := range errc {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, errs.ErrInventoryExhausted):
			exhausted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, 1, exhausted)

	got, err := repo.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.Inventory)
	list, err := repo.ListBorrowings(ctx, model.BorrowingFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, list.TotalElements)
}
