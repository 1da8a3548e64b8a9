package repository

import (
	"context"

	"estate-booking/internal/domain/user"
	"estate-booking/internal/infra/repository/converter"
	sqlc "estate-booking/internal/infra/sqlc/generated"
	"estate-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	UpdateUserNotificationToken(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserNotificationTokenParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		return nil, repoErr("failed to get user", err)
	}
	return converter.UserFromRow(row), nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u)); err != nil {
		return repoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateNotificationToken(ctx context.Context, u *user.User) error {
	rows, err := r.queries.UpdateUserNotificationToken(ctx, r.db, sqlc.UpdateUserNotificationTokenParams{
		ID:                u.ID(),
		NotificationToken: pgconv.StringToPgtype(u.NotificationToken()),
		UpdatedAt:         pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	return affected(rows, err, "failed to update notification token")
}
