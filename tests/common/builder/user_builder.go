//go:build unit || e2e

package builder

import (
	"time"

	"estate-booking/internal/domain/user"
	sqlc "estate-booking/internal/infra/sqlc/generated"
	"estate-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID                uuid.UUID
	Email             string
	DisplayName       string
	Role              string
	NotificationToken string
	IsActive          bool
	Now               time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:          uuid.New(),
		Email:       "test@example.com",
		DisplayName: "Test User",
		Role:        string(user.RoleClient),
		IsActive:    true,
		Now:         time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(u.ID, email, u.DisplayName, role, u.Now), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	return sqlc.Users{
		ID:                u.ID,
		Email:             u.Email,
		DisplayName:       u.DisplayName,
		Role:              u.Role,
		NotificationToken: pgtype.Text{String: u.NotificationToken, Valid: u.NotificationToken != ""},
		IsActive:          u.IsActive,
		CreatedAt:         pgtype.Timestamptz{Time: u.Now, Valid: true},
		UpdatedAt:         pgtype.Timestamptz{Time: u.Now, Valid: true},
	}
}

func (u *UserBuilder) BuildActor() commands.Actor {
	return commands.Actor{ID: u.ID, Role: user.Role(u.Role)}
}

func (u *UserBuilder) BuildSyncRequest() commands.SyncProfileRequest {
	return commands.SyncProfileRequest{Email: u.Email, DisplayName: u.DisplayName}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithDisplayName(name string) *UserBuilder {
	u.DisplayName = name
	return u
}

func (u *UserBuilder) WithRole(role user.Role) *UserBuilder {
	u.Role = string(role)
	return u
}

func (u *UserBuilder) WithNotificationToken(token string) *UserBuilder {
	u.NotificationToken = token
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
