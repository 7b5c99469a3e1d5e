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

const userReturning = "returning id, email, password_hash, first_name, last_name, is_staff"

var userColumns = []string{"id", "email", "password_hash", "first_name", "last_name", "is_staff"}

func (r *repository) collectUser(ctx context.Context, query string, args ...any) (model.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.User{}, err
	}
	defer rows.Close()

	u, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return model.User{}, errs.ErrNotFound
		case isPgErr(err, pgerrcode.UniqueViolation):
			return model.User{}, errs.ErrUserExists
		}
		return model.User{}, err
	}
	return u, nil
}

func (r *repository) CreateUser(ctx context.Context, nu model.NewUser) (model.User, error) {
	query, args, err := qb.Insert(usersTableName).
		Columns("email", "password_hash", "first_name", "last_name").
		Values(nu.Email, nu.PasswordHash, nu.FirstName, nu.LastName).
		Suffix(userReturning).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	return r.collectUser(ctx, query, args...)
}

func (r *repository) GetUser(ctx context.Context, id int64) (model.User, error) {
	query, args, err := qb.Select(userColumns...).From(usersTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return model.User{}, err
	}
	return r.collectUser(ctx, query, args...)
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where("lower(email) = lower(?)", email).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	return r.collectUser(ctx, query, args...)
}

func (r *repository) UpdateUser(ctx context.Context, id int64, patch model.UserPatch) (model.User, error) {
	set := map[string]any{}
	if patch.FirstName != nil {
		set["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		set["last_name"] = *patch.LastName
	}
	if patch.PasswordHash != nil {
		set["password_hash"] = *patch.PasswordHash
	}
	if len(set) == 0 {
		return r.GetUser(ctx, id)
	}
	query, args, err := qb.Update(usersTableName).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix(userReturning).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	return r.collectUser(ctx, query, args...)
}
