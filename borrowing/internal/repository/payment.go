package repository

import (
	"context"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/errs"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

var paymentColumns = []string{"p.id", "p.status", "p.type", "p.borrowing_id", "p.session_url", "p.session_id", "p.money_to_pay"}

func selectPayments() sq.SelectBuilder {
	return qb.Select(paymentColumns...).From(paymentsTableName + " p")
}

func (r *repository) HasPendingPayments(ctx context.Context, userID int64) (bool, error) {
	q := `
select exists(
    select 1 from payments p
    join borrowings br on br.id = p.borrowing_id
    where br.user_id = $1 and p.status = $2
)`
	var exists bool
	if err := r.db.QueryRow(ctx, q, userID, model.PaymentStatusPending).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *repository) CreatePayment(ctx context.Context, np model.NewPayment) (model.Payment, error) {
	if np.Status == "" {
		np.Status = model.PaymentStatusPending
	}
	query, args, err := qb.Insert(paymentsTableName).
		Columns("status", "type", "borrowing_id", "session_url", "session_id", "money_to_pay").
		Values(np.Status, np.Type, np.BorrowingID, np.SessionURL, np.SessionID, np.MoneyToPay).
		Suffix("returning id, status, type, borrowing_id, session_url, session_id, money_to_pay").
		ToSql()
	if err != nil {
		return model.Payment{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Payment{}, err
	}
	defer rows.Close()

	p, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Payment])
	if err != nil {
		switch {
		case isPgErr(err, pgerrcode.UniqueViolation):
			return model.Payment{}, errors.Wrapf(errs.ErrValidation, "checkout session %s is already recorded", np.SessionID)
		case isPgErr(err, pgerrcode.ForeignKeyViolation):
			return model.Payment{}, errs.ErrNotFound
		}
		return model.Payment{}, errors.Wrap(err, "CreatePayment")
	}
	return p, nil
}

func (r *repository) collectPayment(ctx context.Context, q sq.SelectBuilder) (model.Payment, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return model.Payment{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Payment{}, err
	}
	defer rows.Close()

	p, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Payment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Payment{}, errs.ErrNotFound
		}
		return model.Payment{}, err
	}
	return p, nil
}

// GetPayment returns the payment, restricted to borrowings of userID when it is set.
func (r *repository) GetPayment(ctx context.Context, id int64, userID *int64) (model.Payment, error) {
	q := selectPayments().Where(sq.Eq{"p.id": id})
	if userID != nil {
		q = q.Join(borrowingsTableName + " br on br.id = p.borrowing_id").
			Where(sq.Eq{"br.user_id": *userID})
	}
	return r.collectPayment(ctx, q)
}

func (r *repository) GetPaymentBySession(ctx context.Context, sessionID string) (model.Payment, error) {
	return r.collectPayment(ctx, selectPayments().Where(sq.Eq{"p.session_id": sessionID}))
}

func (r *repository) ListPayments(ctx context.Context, f model.PaymentFilter) (model.ListPayments, error) {
	page := f.PageRequest.Normalize()
	where := sq.And{}
	if f.UserID != nil {
		where = append(where, sq.Eq{"br.user_id": *f.UserID})
	}
	if f.Status != "" {
		where = append(where, sq.Eq{"p.status": f.Status})
	}
	if f.Type != "" {
		where = append(where, sq.Eq{"p.type": f.Type})
	}
	join := borrowingsTableName + " br on br.id = p.borrowing_id"

	total, err := count(ctx, r.db, qb.Select("count(*)").From(paymentsTableName+" p").Join(join).Where(where))
	if err != nil {
		return model.ListPayments{}, err
	}

	query, args, err := selectPayments().
		Join(join).
		Where(where).
		OrderBy("p.id").
		Limit(uint64(page.Size)).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return model.ListPayments{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.ListPayments{}, err
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Payment])
	if err != nil {
		return model.ListPayments{}, errors.Wrap(err, "pgx.CollectRows")
	}
	return model.ListPayments{
		Paging: model.Paging{Page: page.Page, PageSize: page.Size, TotalElements: total},
		Items:  items,
	}, nil
}

func (r *repository) ListBorrowingPayments(ctx context.Context, borrowingIDs []int64) (map[int64][]model.Payment, error) {
	out := make(map[int64][]model.Payment, len(borrowingIDs))
	if len(borrowingIDs) == 0 {
		return out, nil
	}
	query, args, err := selectPayments().
		Where(sq.Eq{"p.borrowing_id": borrowingIDs}).
		OrderBy("p.id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Payment])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	for _, p := range payments {
		out[p.BorrowingID] = append(out[p.BorrowingID], p)
	}
	return out, nil
}

// MarkPaid moves a Pending payment to Paid and reports whether this call did it.
func (r *repository) MarkPaid(ctx context.Context, sessionID string) (bool, error) {
	q := `
update payments
    set status = @paid
where session_id = @session_id and status = @pending`
	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"session_id": sessionID,
		"paid":       model.PaymentStatusPaid,
		"pending":    model.PaymentStatusPending,
	})
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
