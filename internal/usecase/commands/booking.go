package commands

import (
	"context"
	"log/slog"

	"estate-booking/internal/domain/activity"
	"estate-booking/internal/domain/booking"
	"estate-booking/internal/domain/plot"
	"estate-booking/internal/domain/project"
	"estate-booking/internal/pkg/clock"
	"estate-booking/internal/pkg/errs"
	"estate-booking/internal/pkg/metrics"
	"estate-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const bookingSuccessMessage = "Plot booked successfully"

type BookPlotRequest struct {
	PlotID    uuid.UUID
	ProjectID uuid.UUID
	Details   map[string]any
}

type BookPlotResult struct {
	Success       bool
	BookingID     uuid.UUID
	Message       string
	IgnoredFields []string
	Fanout        FanoutReport
}

type BookingCommands interface {
	BookPlot(ctx context.Context, callerID uuid.UUID, req BookPlotRequest) (*BookPlotResult, error)
}

type bookingUseCaseImpl struct {
	uow    shared.UnitOfWork
	fanout *FanoutDispatcher
	clock  clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, fanout *FanoutDispatcher, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, fanout: fanout, clock: clk}
}

func (uc *bookingUseCaseImpl) BookPlot(ctx context.Context, callerID uuid.UUID, req BookPlotRequest) (*BookPlotResult, error) {
	res, err := uc.bookPlot(ctx, callerID, req)
	if err != nil {
		metrics.RecordBookingAttempt(string(errs.CodeOf(err)))
		return nil, err
	}
	metrics.RecordBookingAttempt("success")
	return res, nil
}

func (uc *bookingUseCaseImpl) bookPlot(ctx context.Context, callerID uuid.UUID, req BookPlotRequest) (*BookPlotResult, error) {
	if callerID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}
	if req.PlotID == uuid.Nil {
		return nil, ErrMissingPlotID
	}
	if req.ProjectID == uuid.Nil {
		return nil, ErrMissingProjectID
	}
	details, ignored, err := booking.NewDetails(req.Details)
	if err != nil {
		return nil, invalid(err)
	}
	if len(ignored) > 0 {
		slog.Info("dropped booking detail fields", "plot_id", req.PlotID, "fields", ignored)
	}

	var created BookingCreated
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Plots().GetForUpdate(ctx, req.ProjectID, req.PlotID)
		if err != nil {
			return notFoundAs(err, ErrPlotNotFound)
		}
		if p.Status() != plot.StatusAvailable {
			return notAvailable(p.Status())
		}

		caller, err := tx.Users().GetByID(ctx, callerID)
		if err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}

		proj, err := tx.Projects().GetForUpdate(ctx, req.ProjectID)
		if err != nil {
			return notFoundAs(err, ErrProjectNotFound)
		}

		now := uc.clock.Now()
		b := booking.New(p.ID(), proj.ID(), caller, details, now)
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}

		if err := p.Book(caller.ID(), b.ID(), now); err != nil {
			var na *plot.NotAvailableError
			if errs.As(err, &na) {
				return notAvailable(na.Status)
			}
			return err
		}
		if err := tx.Plots().Update(ctx, p); err != nil {
			return err
		}

		if err := proj.ApplyPlotEvent(project.Changed(plot.StatusAvailable, plot.StatusBooked), now); err != nil {
			return counterErr(err)
		}
		if err := tx.Projects().SaveCounters(ctx, proj); err != nil {
			return err
		}

		if err := tx.Activity().Append(ctx, activity.NewBookingCreated(caller.ID(), proj.ID(), p.ID(), b.ID(), now)); err != nil {
			return err
		}

		created = BookingCreated{
			BookingID:  b.ID(),
			PlotID:     p.ID(),
			ProjectID:  proj.ID(),
			ClientID:   caller.ID(),
			ClientName: b.ClientName(),
			PlotNumber: p.PlotNumber(),
		}
		return nil
	})
	if err != nil {
		return nil, errs.Internal(err)
	}

	report := uc.fanout.Dispatch(ctx, created)

	return &BookPlotResult{
		Success:       true,
		BookingID:     created.BookingID,
		Message:       bookingSuccessMessage,
		IgnoredFields: ignored,
		Fanout:        report,
	}, nil
}
