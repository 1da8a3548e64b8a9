package commands

import (
	"context"
	"time"

	"estate-booking/internal/domain/activity"
	"estate-booking/internal/domain/booking"
	"estate-booking/internal/domain/plot"
	"estate-booking/internal/domain/project"
	"estate-booking/internal/domain/user"
	"estate-booking/internal/infra"
	"estate-booking/internal/pkg/clock"
	"estate-booking/internal/pkg/errs"
	"estate-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePlotRequest struct {
	ProjectID  uuid.UUID
	PlotNumber string
	Price      *decimal.Decimal
	SizeSqm    *decimal.Decimal
}

type UpdatePlotStatusResult struct {
	Status           plot.Status
	CancelledBooking *uuid.UUID
}

type PlotCommands interface {
	CreatePlot(ctx context.Context, actor Actor, req CreatePlotRequest) (uuid.UUID, error)
	UpdatePlotStatus(ctx context.Context, actor Actor, projectID, plotID uuid.UUID, status plot.Status) (*UpdatePlotStatusResult, error)
	DeletePlot(ctx context.Context, actor Actor, projectID, plotID uuid.UUID) error
}

type plotUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPlotUseCase(uow shared.UnitOfWork, clk clock.Clock) PlotCommands {
	return &plotUseCaseImpl{uow: uow, clock: clk}
}

func (uc *plotUseCaseImpl) CreatePlot(ctx context.Context, actor Actor, req CreatePlotRequest) (uuid.UUID, error) {
	if err := actor.require(user.RoleManager); err != nil {
		return uuid.Nil, err
	}
	if req.ProjectID == uuid.Nil {
		return uuid.Nil, ErrMissingProjectID
	}

	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		proj, err := tx.Projects().GetForUpdate(ctx, req.ProjectID)
		if err != nil {
			return notFoundAs(err, ErrProjectNotFound)
		}
		if err := proj.AcceptsNewPlots(); err != nil {
			return ErrProjectClosed.WithCause(err)
		}

		now := uc.clock.Now()
		p, err := plot.New(proj.ID(), req.PlotNumber, req.Price, req.SizeSqm, now)
		if err != nil {
			return invalid(err)
		}
		if err := tx.Plots().Create(ctx, p); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrPlotNumberTaken.WithDetail("plotNumber", p.PlotNumber())
			}
			return err
		}

		if err := proj.ApplyPlotEvent(project.Created(p.Status()), now); err != nil {
			return counterErr(err)
		}
		if err := tx.Projects().SaveCounters(ctx, proj); err != nil {
			return err
		}

		createdID = p.ID()
		return tx.Activity().Append(ctx, activity.NewPlotEntry(actor.ID, activity.ActionPlotCreated, proj.ID(), p.ID(), "plot "+p.PlotNumber()+" created", now))
	})
	if err != nil {
		return uuid.Nil, errs.Internal(err)
	}
	return createdID, nil
}

func (uc *plotUseCaseImpl) UpdatePlotStatus(ctx context.Context, actor Actor, projectID, plotID uuid.UUID, status plot.Status) (*UpdatePlotStatusResult, error) {
	if err := actor.require(user.RoleManager); err != nil {
		return nil, err
	}
	if projectID == uuid.Nil {
		return nil, ErrMissingProjectID
	}
	if plotID == uuid.Nil {
		return nil, ErrMissingPlotID
	}
	if !status.IsValid() {
		return nil, invalid(plot.ErrInvalidStatus)
	}
	if status == plot.StatusBooked {
		return nil, invalid(plot.ErrBookedByWorkflow)
	}

	var result UpdatePlotStatusResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = UpdatePlotStatusResult{}

		p, err := tx.Plots().GetForUpdate(ctx, projectID, plotID)
		if err != nil {
			return notFoundAs(err, ErrPlotNotFound)
		}
		proj, err := tx.Projects().GetForUpdate(ctx, projectID)
		if err != nil {
			return notFoundAs(err, ErrProjectNotFound)
		}

		now := uc.clock.Now()
		old := p.Status()
		released, err := p.ChangeStatus(status, now)
		if err != nil {
			return invalid(err)
		}
		result.Status = p.Status()
		if old == p.Status() {
			return nil
		}
		if err := tx.Plots().Update(ctx, p); err != nil {
			return err
		}
		if err := proj.ApplyPlotEvent(project.Changed(old, p.Status()), now); err != nil {
			return counterErr(err)
		}
		if err := tx.Projects().SaveCounters(ctx, proj); err != nil {
			return err
		}

		if released != nil {
			cancelled, err := cancelPendingBooking(ctx, tx, actor.ID, *released, now)
			if err != nil {
				return err
			}
			if cancelled {
				result.CancelledBooking = released
			}
		}

		return tx.Activity().Append(ctx, activity.NewPlotEntry(actor.ID, activity.ActionPlotStatusChanged, projectID, plotID,
			"status "+old.String()+" -> "+p.Status().String(), now))
	})
	if err != nil {
		return nil, errs.Internal(err)
	}
	return &result, nil
}

func (uc *plotUseCaseImpl) DeletePlot(ctx context.Context, actor Actor, projectID, plotID uuid.UUID) error {
	if err := actor.require(user.RoleAdmin); err != nil {
		return err
	}
	if projectID == uuid.Nil {
		return ErrMissingProjectID
	}
	if plotID == uuid.Nil {
		return ErrMissingPlotID
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Plots().GetForUpdate(ctx, projectID, plotID)
		if err != nil {
			return notFoundAs(err, ErrPlotNotFound)
		}
		proj, err := tx.Projects().GetForUpdate(ctx, projectID)
		if err != nil {
			return notFoundAs(err, ErrProjectNotFound)
		}

		now := uc.clock.Now()
		if err := tx.Plots().Delete(ctx, p); err != nil {
			return notFoundAs(err, ErrPlotNotFound)
		}
		if err := proj.ApplyPlotEvent(project.Deleted(p.Status()), now); err != nil {
			return counterErr(err)
		}
		if err := tx.Projects().SaveCounters(ctx, proj); err != nil {
			return err
		}
		if id := p.BookingID(); id != nil {
			if _, err := cancelPendingBooking(ctx, tx, actor.ID, *id, now); err != nil {
				return err
			}
		}
		return tx.Activity().Append(ctx, activity.NewPlotEntry(actor.ID, activity.ActionPlotDeleted, projectID, plotID,
			"plot "+p.PlotNumber()+" deleted", now))
	})
	return errs.Internal(err)
}

// cancelPendingBooking cancels the booking that held a released plot. Bookings
// already past pending are left alone.
func cancelPendingBooking(ctx context.Context, tx shared.Tx, actorID, bookingID uuid.UUID, now time.Time) (bool, error) {
	b, err := tx.Bookings().GetForUpdate(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := b.Cancel(now); err != nil {
		if errs.Is(err, booking.ErrNotPending) {
			return false, nil
		}
		return false, err
	}
	if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
		return false, err
	}
	return true, tx.Activity().Append(ctx, activity.NewBookingCancelled(actorID, b.ProjectID(), b.PlotID(), b.ID(), now))
}
