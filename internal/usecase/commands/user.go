package commands

import (
	"context"

	"estate-booking/internal/domain/user"
	"estate-booking/internal/infra"
	"estate-booking/internal/pkg/clock"
	"estate-booking/internal/pkg/errs"
	"estate-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SyncProfileRequest struct {
	Email       string
	DisplayName string
}

type UserCommands interface {
	// SyncProfile creates the caller's user record from identity provider claims
	// on first sight. It reports whether a record was created.
	SyncProfile(ctx context.Context, actor Actor, req SyncProfileRequest) (bool, error)
	RegisterNotificationToken(ctx context.Context, callerID uuid.UUID, token string) error
}

type userUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserUseCase(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userUseCaseImpl{uow: uow, clock: clk}
}

func (uc *userUseCaseImpl) RegisterNotificationToken(ctx context.Context, callerID uuid.UUID, token string) error {
	if callerID == uuid.Nil {
		return errs.ErrUnauthenticated
	}
	tok, err := user.NewNotificationToken(token)
	if err != nil {
		return invalid(err)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().GetByID(ctx, callerID)
		if err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}
		u.SetNotificationToken(tok, uc.clock.Now())
		return tx.Users().UpdateNotificationToken(ctx, u)
	})
	return errs.Internal(err)
}

func (uc *userUseCaseImpl) SyncProfile(ctx context.Context, actor Actor, req SyncProfileRequest) (bool, error) {
	if actor.ID == uuid.Nil {
		return false, errs.ErrUnauthenticated
	}
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return false, invalid(err)
	}
	if !actor.Role.IsValid() {
		return false, invalid(user.ErrInvalidRole)
	}

	var created bool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = false
		_, err := tx.Users().GetByID(ctx, actor.ID)
		if err == nil {
			return nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		u := user.NewUser(actor.ID, email, req.DisplayName, actor.Role, uc.clock.Now())
		if err := tx.Users().Create(ctx, u); err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, errs.Internal(err)
	}
	return created, nil
}
