package repository

import (
	"context"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/errs"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var bookColumns = []string{"id", "title", "author", "cover", "inventory", "daily_fee"}

func (r *repository) ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error) {
	page := f.PageRequest.Normalize()
	where := sq.And{}
	if f.Title != "" {
		where = append(where, sq.ILike{"title": "%" + f.Title + "%"})
	}

	total, err := count(ctx, r.db, qb.Select("count(*)").From(booksTableName).Where(where))
	if err != nil {
		return model.ListBooks{}, err
	}

	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(where).
		OrderBy("id").
		Limit(uint64(page.Size)).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.ListBooks{}, err
	}
	defer rows.Close()

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return model.ListBooks{}, errors.Wrap(err, "pgx.CollectRows")
	}
	return model.ListBooks{
		Paging: model.Paging{Page: page.Page, PageSize: page.Size, TotalElements: total},
		Items:  books,
	}, nil
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return r.getBook(ctx, qb.Select(bookColumns...).From(booksTableName).Where(sq.Eq{"id": id}))
}

// GetBookForUpdate locks the book row until the surrounding transaction ends.
func (r *repository) GetBookForUpdate(ctx context.Context, id int64) (model.Book, error) {
	return r.getBook(ctx, qb.Select(bookColumns...).From(booksTableName).Where(sq.Eq{"id": id}).Suffix("for update"))
}

func (r *repository) getBook(ctx context.Context, q sq.SelectBuilder) (model.Book, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return model.Book{}, err
	}
	return r.collectBook(ctx, query, args...)
}

func (r *repository) collectBook(ctx context.Context, query string, args ...any) (model.Book, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Book{}, err
	}
	defer rows.Close()

	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		if isPgErr(err, pgerrcode.CheckViolation) {
			return model.Book{}, errors.Wrap(errs.ErrValidation, err.Error())
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "cover", "inventory", "daily_fee").
		Values(req.Title, req.Author, req.Cover, *req.Inventory, req.DailyFee).
		Suffix("returning id, title, author, cover, inventory, daily_fee").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	return r.collectBook(ctx, query, args...)
}

func (r *repository) UpdateBook(ctx context.Context, id int64, req model.BookRequest) (model.Book, error) {
	query, args, err := qb.Update(booksTableName).
		SetMap(map[string]any{
			"title":     req.Title,
			"author":    req.Author,
			"cover":     req.Cover,
			"inventory": *req.Inventory,
			"daily_fee": req.DailyFee,
		}).
		Where(sq.Eq{"id": id}).
		Suffix("returning id, title, author, cover, inventory, daily_fee").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	return r.collectBook(ctx, query, args...)
}

func (r *repository) PatchBook(ctx context.Context, id int64, patch model.BookPatch) (model.Book, error) {
	set := map[string]any{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Author != nil {
		set["author"] = *patch.Author
	}
	if patch.Cover != nil {
		set["cover"] = *patch.Cover
	}
	if patch.Inventory != nil {
		set["inventory"] = *patch.Inventory
	}
	if patch.DailyFee != nil {
		set["daily_fee"] = *patch.DailyFee
	}
	if len(set) == 0 {
		return r.GetBook(ctx, id)
	}
	query, args, err := qb.Update(booksTableName).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("returning id, title, author, cover, inventory, daily_fee").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	return r.collectBook(ctx, query, args...)
}

func (r *repository) DeleteBook(ctx context.Context, id int64) error {
	query, args, err := qb.Delete(booksTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// DecrementInventory takes one copy off the shelf; it never drives inventory below zero.
func (r *repository) DecrementInventory(ctx context.Context, bookID int64) error {
	q := `
update books
    set inventory = inventory - 1
where id = @book_id and inventory > 0`
	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"book_id": bookID})
	if err != nil {
		if isPgErr(err, pgerrcode.CheckViolation) {
			return errs.ErrInventoryExhausted
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrInventoryExhausted
	}
	return nil
}

func (r *repository) IncrementInventory(ctx context.Context, bookID int64) error {
	q := `
update books
    set inventory = inventory + 1
where id = @book_id`
	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"book_id": bookID})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
