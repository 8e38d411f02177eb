package repository

import (
	"context"
	"errors"
	"fmt"

	"gallery_board/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var userColumns = []string{"id", "user_name", "email", "password", "role", "created_at", "updated_at"}

type UserRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewUserRepository(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.UserName, &u.Email, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *UserRepo) SaveUser(ctx context.Context, user models.User) (models.User, error) {
	const op = "repository.UserRepo.SaveUser"

	role := user.Role
	if role == "" {
		role = models.RoleUser
	}

	query, args, err := r.sb.Insert(usersTable).
		Columns("user_name", "email", "password", "role").
		Values(user.UserName, user.Email, user.Password, role).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	saved, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, storageErr(err))
	}

	return saved, nil
}

func (r *UserRepo) UserByEmail(ctx context.Context, email string) (models.User, error) {
	const op = "repository.UserRepo.UserByEmail"

	return r.userBy(ctx, op, sq.Eq{"email": email})
}

func (r *UserRepo) UserByID(ctx context.Context, userID int64) (models.User, error) {
	const op = "repository.UserRepo.UserByID"

	return r.userBy(ctx, op, sq.Eq{"id": userID})
}

func (r *UserRepo) userBy(ctx context.Context, op string, where sq.Eq) (models.User, error) {
	query, args, err := r.sb.Select(userColumns...).From(usersTable).Where(where).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, storageErr(err))
	}

	return user, nil
}

func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	const op = "repository.UserRepo.EmailExists"

	query, args, err := r.sb.Select("1").From(usersTable).Where(sq.Eq{"email": email}).Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var one int
	err = r.db.QueryRow(ctx, query, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}
