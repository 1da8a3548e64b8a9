package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const UnknownClientName = "Unknown Client"

type User struct {
	id                uuid.UUID
	email             string
	displayName       string
	role              Role
	notificationToken string
	isActive          bool
	createdAt         time.Time
	updatedAt         time.Time
}

// NewUser keeps the identity provider's subject id when given one.
func NewUser(id uuid.UUID, email Email, displayName string, role Role, now time.Time) *User {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &User{
		id:          id,
		email:       email.Value(),
		displayName: strings.TrimSpace(displayName),
		role:        role,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email, displayName string,
	role Role,
	notificationToken string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:                id,
		email:             email,
		displayName:       displayName,
		role:              role,
		notificationToken: notificationToken,
		isActive:          isActive,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// DisplayLabel is the name denormalized onto bookings: display name, then email.
func (u *User) DisplayLabel() string {
	if name := strings.TrimSpace(u.displayName); name != "" {
		return name
	}
	if email := strings.TrimSpace(u.email); email != "" {
		return email
	}
	return UnknownClientName
}

func (u *User) SetNotificationToken(token string, now time.Time) {
	u.notificationToken = token
	u.updatedAt = now
}

func (u *User) IsActiveManager() bool {
	return u.isActive && u.role == RoleManager
}

func (u *User) ID() uuid.UUID             { return u.id }
func (u *User) Email() string             { return u.email }
func (u *User) DisplayName() string       { return u.displayName }
func (u *User) Role() Role                { return u.role }
func (u *User) NotificationToken() string { return u.notificationToken }
func (u *User) IsActive() bool            { return u.isActive }
func (u *User) CreatedAt() time.Time      { return u.createdAt }
func (u *User) UpdatedAt() time.Time      { return u.updatedAt }
