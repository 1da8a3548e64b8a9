package commands

import (
	"context"

	"estate-booking/internal/domain/project"
	"estate-booking/internal/domain/user"
	"estate-booking/internal/infra"
	"estate-booking/internal/pkg/clock"
	"estate-booking/internal/pkg/errs"
	"estate-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Name     string
	Location string
}

type ProjectCommands interface {
	CreateProject(ctx context.Context, actor Actor, req CreateProjectRequest) (uuid.UUID, error)
	AssignManager(ctx context.Context, actor Actor, projectID, managerID uuid.UUID) error
}

type projectUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewProjectUseCase(uow shared.UnitOfWork, clk clock.Clock) ProjectCommands {
	return &projectUseCaseImpl{uow: uow, clock: clk}
}

func (uc *projectUseCaseImpl) CreateProject(ctx context.Context, actor Actor, req CreateProjectRequest) (uuid.UUID, error) {
	if err := actor.require(user.RoleAdmin); err != nil {
		return uuid.Nil, err
	}
	p, err := project.New(req.Name, req.Location, uc.clock.Now())
	if err != nil {
		return uuid.Nil, invalid(err)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Projects().Create(ctx, p)
	})
	if err != nil {
		return uuid.Nil, errs.Internal(err)
	}
	return p.ID(), nil
}

func (uc *projectUseCaseImpl) AssignManager(ctx context.Context, actor Actor, projectID, managerID uuid.UUID) error {
	if err := actor.require(user.RoleAdmin); err != nil {
		return err
	}
	if projectID == uuid.Nil {
		return ErrMissingProjectID
	}
	if managerID == uuid.Nil {
		return ErrInvalidInput.WithDetail("field", "managerId")
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Projects().GetForUpdate(ctx, projectID); err != nil {
			return notFoundAs(err, ErrProjectNotFound)
		}
		m, err := tx.Users().GetByID(ctx, managerID)
		if err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}
		if !m.IsActiveManager() {
			return ErrNotAManager.WithDetail("role", m.Role().String())
		}
		err = tx.Projects().AssignManager(ctx, project.ManagerAssignment{
			ProjectID:  projectID,
			ManagerID:  managerID,
			AssignedAt: uc.clock.Now(),
		})
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrAlreadyAssigned
		}
		return err
	})
	return errs.Internal(err)
}
