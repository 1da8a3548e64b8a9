package converter

import (
	"estate-booking/internal/domain/user"
	sqlc "estate-booking/internal/infra/sqlc/generated"
	"estate-booking/internal/pkg/pgconv"
)

func UserFromRow(row sqlc.Users) *user.User {
	return user.ReconstructUser(
		row.ID,
		row.Email,
		row.DisplayName,
		user.Role(row.Role),
		pgconv.StringFromPgtype(row.NotificationToken),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:                u.ID(),
		Email:             u.Email(),
		DisplayName:       u.DisplayName(),
		Role:              u.Role().String(),
		NotificationToken: pgconv.StringToPgtype(u.NotificationToken()),
		IsActive:          u.IsActive(),
		CreatedAt:         pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}
