package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/errs"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

var borrowingColumns = []string{
	"br.id", "br.borrow_date", "br.expected_return_date", "br.actual_return_date", "br.user_id",
	"b.id", "b.title", "b.author", "b.cover", "b.inventory", "b.daily_fee",
}

func selectBorrowings() sq.SelectBuilder {
	return qb.Select(borrowingColumns...).
		From(borrowingsTableName + " br").
		Join(booksTableName + " b on b.id = br.book_id")
}

func scanBorrowing(row pgx.Row) (model.Borrowing, error) {
	var (
		b                        model.Borrowing
		borrowDate, expectedDate time.Time
		actualDate               *time.Time
	)
	err := row.Scan(&b.ID, &borrowDate, &expectedDate, &actualDate, &b.UserID,
		&b.Book.ID, &b.Book.Title, &b.Book.Author, &b.Book.Cover, &b.Book.Inventory, &b.Book.DailyFee)
	if err != nil {
		return model.Borrowing{}, err
	}
	b.BorrowDate = toDate(borrowDate)
	b.ExpectedReturnDate = toDate(expectedDate)
	if actualDate != nil {
		d := toDate(*actualDate)
		b.ActualReturnDate = &d
	}
	b.Payments = []model.Payment{}
	return b, nil
}

func (r *repository) CreateBorrowing(ctx context.Context, nb model.NewBorrowing) (model.Borrowing, error) {
	query, args, err := qb.Insert(borrowingsTableName).
		Columns("borrow_date", "expected_return_date", "book_id", "user_id").
		Values(nb.BorrowDate.Time, nb.ExpectedReturnDate.Time, nb.BookID, nb.UserID).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Borrowing{}, err
	}
	var id int64
	if err = r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		switch {
		case isPgErr(err, pgerrcode.ForeignKeyViolation):
			return model.Borrowing{}, errs.ErrNotFound
		case isPgErr(err, pgerrcode.CheckViolation):
			return model.Borrowing{}, errors.Wrap(errs.ErrValidation, "expected_return_date must not precede borrow_date")
		}
		return model.Borrowing{}, errors.Wrap(err, "CreateBorrowing")
	}
	return model.Borrowing{
		ID:                 id,
		BorrowDate:         nb.BorrowDate,
		ExpectedReturnDate: nb.ExpectedReturnDate,
		UserID:             nb.UserID,
		Book:               model.Book{ID: nb.BookID},
		Payments:           []model.Payment{},
	}, nil
}

func (r *repository) GetBorrowing(ctx context.Context, id int64) (model.Borrowing, error) {
	return r.getBorrowing(ctx, selectBorrowings().Where(sq.Eq{"br.id": id}))
}

// GetBorrowingForUpdate locks the borrowing row until the surrounding transaction ends.
func (r *repository) GetBorrowingForUpdate(ctx context.Context, id int64) (model.Borrowing, error) {
	return r.getBorrowing(ctx, selectBorrowings().Where(sq.Eq{"br.id": id}).Suffix("for update of br"))
}

func (r *repository) getBorrowing(ctx context.Context, q sq.SelectBuilder) (model.Borrowing, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return model.Borrowing{}, err
	}
	b, err := scanBorrowing(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Borrowing{}, errs.ErrNotFound
		}
		return model.Borrowing{}, err
	}
	return b, nil
}

func borrowingFilter(f model.BorrowingFilter) sq.And {
	where := sq.And{}
	if f.UserID != nil {
		where = append(where, sq.Eq{"br.user_id": *f.UserID})
	}
	if f.ActiveOnly {
		where = append(where, sq.Eq{"br.actual_return_date": nil})
	}
	return where
}

func (r *repository) ListBorrowings(ctx context.Context, f model.BorrowingFilter) (model.ListBorrowings, error) {
	page := f.PageRequest.Normalize()
	where := borrowingFilter(f)

	total, err := count(ctx, r.db, qb.Select("count(*)").From(borrowingsTableName+" br").Where(where))
	if err != nil {
		return model.ListBorrowings{}, err
	}

	query, args, err := selectBorrowings().
		Where(where).
		OrderBy("br.borrow_date", "br.id").
		Limit(uint64(page.Size)).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return model.ListBorrowings{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.ListBorrowings{}, err
	}
	defer rows.Close()

	items := make([]model.Borrowing, 0, page.Size)
	for rows.Next() {
		b, err := scanBorrowing(rows)
		if err != nil {
			return model.ListBorrowings{}, err
		}
		items = append(items, b)
	}
	if err = rows.Err(); err != nil {
		return model.ListBorrowings{}, err
	}
	return model.ListBorrowings{
		Paging: model.Paging{Page: page.Page, PageSize: page.Size, TotalElements: total},
		Items:  items,
	}, nil
}

// MarkReturned stamps the return date once; a second call reports ErrAlreadyReturned.
func (r *repository) MarkReturned(ctx context.Context, id int64, date model.Date) error {
	q := `
update borrowings
    set actual_return_date = @date
where id = @id and actual_return_date is null`
	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "date": date.Time})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrAlreadyReturned
	}
	return nil
}

func (r *repository) ListOverdue(ctx context.Context, until model.Date) ([]model.OverdueBorrowing, error) {
	query, args, err := qb.Select("br.id", "br.borrow_date", "br.expected_return_date", "b.title",
		"u.id", "u.email", "u.first_name", "u.last_name").
		From(borrowingsTableName + " br").
		Join(booksTableName + " b on b.id = br.book_id").
		Join(usersTableName + " u on u.id = br.user_id").
		Where(sq.Eq{"br.actual_return_date": nil}).
		Where(sq.LtOrEq{"br.expected_return_date": until.Time}).
		OrderBy("br.expected_return_date", "br.id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OverdueBorrowing
	for rows.Next() {
		var (
			o                        model.OverdueBorrowing
			borrowDate, expectedDate time.Time
			u                        model.User
		)
		if err = rows.Scan(&o.ID, &borrowDate, &expectedDate, &o.BookTitle,
			&u.ID, &u.Email, &u.FirstName, &u.LastName); err != nil {
			return nil, err
		}
		o.BorrowDate = toDate(borrowDate)
		o.ExpectedReturnDate = toDate(expectedDate)
		o.UserID = u.ID
		o.UserFullName = u.FullName()
		items = append(items, o)
	}
	return items, rows.Err()
}
