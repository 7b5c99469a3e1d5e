package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Repository interface {
	// WithTx runs fn against a repository bound to one transaction.
	// Nested calls join the outer transaction.
	WithTx(ctx context.Context, fn func(repo Repository) error) error

	ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	GetBookForUpdate(ctx context.Context, id int64) (model.Book, error)
	CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id int64, req model.BookRequest) (model.Book, error)
	PatchBook(ctx context.Context, id int64, patch model.BookPatch) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	DecrementInventory(ctx context.Context, bookID int64) error
	IncrementInventory(ctx context.Context, bookID int64) error

	CreateBorrowing(ctx context.Context, nb model.NewBorrowing) (model.Borrowing, error)
	GetBorrowing(ctx context.Context, id int64) (model.Borrowing, error)
	GetBorrowingForUpdate(ctx context.Context, id int64) (model.Borrowing, error)
	ListBorrowings(ctx context.Context, f model.BorrowingFilter) (model.ListBorrowings, error)
	MarkReturned(ctx context.Context, id int64, date model.Date) error
	ListOverdue(ctx context.Context, until model.Date) ([]model.OverdueBorrowing, error)

	HasPendingPayments(ctx context.Context, userID int64) (bool, error)
	CreatePayment(ctx context.Context, np model.NewPayment) (model.Payment, error)
	GetPayment(ctx context.Context, id int64, userID *int64) (model.Payment, error)
	GetPaymentBySession(ctx context.Context, sessionID string) (model.Payment, error)
	ListPayments(ctx context.Context, f model.PaymentFilter) (model.ListPayments, error)
	ListBorrowingPayments(ctx context.Context, borrowingIDs []int64) (map[int64][]model.Payment, error)
	MarkPaid(ctx context.Context, sessionID string) (bool, error)

	CreateUser(ctx context.Context, nu model.NewUser) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	UpdateUser(ctx context.Context, id int64, patch model.UserPatch) (model.User, error)
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type repository struct {
	pool *pgxpool.Pool
	db   querier
	inTx bool
	log  *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		pool: db,
		db:   db,
		log:  log.Named("repo"),
	}, nil
}

const (
	usersTableName      = `users`
	booksTableName      = `books`
	borrowingsTableName = `borrowings`
	paymentsTableName   = `payments`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) WithTx(ctx context.Context, fn func(repo Repository) error) error {
	if r.inTx {
		return fn(r)
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	txRepo := &repository{pool: r.pool, db: tx, inTx: true, log: r.log}
	if err = fn(txRepo); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			r.log.Error("rollback", zap.Error(rbErr))
		}
		return err
	}
	return errors.Wrap(tx.Commit(ctx), "commit tx")
}

func isPgErr(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func count(ctx context.Context, db querier, q sq.SelectBuilder) (int, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err = db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func toDate(t time.Time) model.Date {
	return model.NewDate(t)
}
