package readstore

import (
	"context"

	sqlc "estate-booking/internal/infra/sqlc/generated"
	"estate-booking/internal/pkg/pgconv"
	"estate-booking/internal/usecase/queries"
	"estate-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		return nil, readErr("failed to find user", err)
	}
	return &queries.UserView{
		ID:                   row.ID,
		Email:                row.Email,
		DisplayName:          row.DisplayName,
		Role:                 row.Role,
		HasNotificationToken: row.NotificationToken.Valid && row.NotificationToken.String != "",
		IsActive:             row.IsActive,
		CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

type CommandReadQueries interface {
	GetUserNotificationToken(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (pgtype.Text, error)
	ListActiveProjectManagers(ctx context.Context, db sqlc.DBTX, projectID uuid.UUID) ([]sqlc.ListActiveProjectManagersRow, error)
}

// CommandReads serves the non-transactional lookups of the booking fan-out.
type CommandReads struct {
	queries CommandReadQueries
	db      sqlc.DBTX
}

func NewCommandReads(queries CommandReadQueries, db sqlc.DBTX) *CommandReads {
	return &CommandReads{queries: queries, db: db}
}

// NotificationToken returns "" when the user has no token registered.
func (r *CommandReads) NotificationToken(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := r.queries.GetUserNotificationToken(ctx, r.db, userID)
	if err != nil {
		return "", readErr("failed to read notification token", err)
	}
	return pgconv.StringFromPgtype(token), nil
}

func (r *CommandReads) ActiveProjectManagers(ctx context.Context, projectID uuid.UUID) ([]shared.ManagerSnapshot, error) {
	rows, err := r.queries.ListActiveProjectManagers(ctx, r.db, projectID)
	if err != nil {
		return nil, readErr("failed to list project managers", err)
	}
	out := make([]shared.ManagerSnapshot, 0, len(rows))
	for _, row := range rows {
		out = append(out, shared.ManagerSnapshot{
			ID:                row.ID,
			Email:             row.Email,
			DisplayName:       row.DisplayName,
			NotificationToken: pgconv.StringFromPgtype(row.NotificationToken),
		})
	}
	return out, nil
}
