package commands

import (
	"estate-booking/internal/domain/user"
	"estate-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Actor is the authenticated caller as resolved from the identity provider token.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) require(min user.Role) error {
	if a.ID == uuid.Nil {
		return errs.ErrUnauthenticated
	}
	if !a.Role.AtLeast(min) {
		return ErrPermissionDenied.WithDetail("required_role", min.String())
	}
	return nil
}
