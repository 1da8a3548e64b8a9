package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"estate-booking/internal/domain/task"
	"estate-booking/internal/pkg/clock"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/pkg/errs"
	"estate-booking/internal/pkg/metrics"
	"estate-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// BookingCreated is what the fan-out needs to know about a committed booking.
type BookingCreated struct {
	BookingID  uuid.UUID
	PlotID     uuid.UUID
	ProjectID  uuid.UUID
	ClientID   uuid.UUID
	ClientName string
	PlotNumber string
}

// FanoutReport summarizes post-commit side effects. It is informational only:
// the booking is already committed whatever it says.
type FanoutReport struct {
	ClientNotified   bool
	ManagersFound    int
	ManagersNotified int
	TasksCreated     int
	Errors           []error
}

func (r FanoutReport) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return errs.Join(r.Errors...)
}

type FanoutDispatcher struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	clock    clock.Clock
	cfg      config.BookingConfig
}

func NewFanoutDispatcher(uow shared.UnitOfWork, notifier shared.Notifier, clk clock.Clock, cfg config.BookingConfig) *FanoutDispatcher {
	return &FanoutDispatcher{uow: uow, notifier: notifier, clock: clk, cfg: cfg}
}

type reportCollector struct {
	mu     sync.Mutex
	report FanoutReport
}

func (c *reportCollector) fail(kind string, err error) {
	metrics.RecordFanoutFailure(kind)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.report.Errors = append(c.report.Errors, err)
}

func (c *reportCollector) update(fn func(r *FanoutReport)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.report)
}

// Dispatch notifies the client and every active project manager, and creates
// one follow-up task per manager. Each recipient is handled independently and
// failures are logged and collected, never returned.
func (d *FanoutDispatcher) Dispatch(ctx context.Context, ev BookingCreated) FanoutReport {
	ctx = context.WithoutCancel(ctx)
	if d.cfg.FanoutTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.FanoutTimeout)
		defer cancel()
	}

	var g errgroup.Group
	if d.cfg.FanoutConcurrency > 0 {
		g.SetLimit(d.cfg.FanoutConcurrency)
	}
	col := &reportCollector{}

	g.Go(func() error {
		d.notifyClient(ctx, ev, col)
		return nil
	})

	managers, err := d.uow.CommandReads().ActiveProjectManagers(ctx, ev.ProjectID)
	if err != nil {
		slog.Error("failed to list project managers for booking",
			"booking_id", ev.BookingID,
			"project_id", ev.ProjectID,
			"error", err.Error())
		col.fail(metrics.FanoutManagerLookup, errs.Wrap(err, "list project managers"))
	}
	col.update(func(r *FanoutReport) { r.ManagersFound = len(managers) })

	for _, m := range managers {
		g.Go(func() error {
			d.notifyManager(ctx, ev, m, col)
			d.createFollowUp(ctx, ev, m, col)
			return nil
		})
	}

	_ = g.Wait()
	return col.report
}

func (d *FanoutDispatcher) notifyClient(ctx context.Context, ev BookingCreated, col *reportCollector) {
	token, err := d.uow.CommandReads().NotificationToken(ctx, ev.ClientID)
	if err != nil {
		slog.Warn("failed to look up client notification token",
			"booking_id", ev.BookingID,
			"client_id", ev.ClientID,
			"error", err.Error())
		col.fail(metrics.FanoutClientNotification, errs.Wrap(err, "client token lookup"))
		return
	}
	if token == "" {
		return
	}
	err = d.notifier.Send(ctx, shared.Notification{
		Token: token,
		Title: "Booking Confirmed",
		Body:  fmt.Sprintf("Your booking for plot %s has been received.", ev.PlotNumber),
		Data:  notificationData("booking_confirmed", ev),
	})
	if err != nil {
		slog.Warn("failed to notify client of booking",
			"booking_id", ev.BookingID,
			"client_id", ev.ClientID,
			"error", err.Error())
		col.fail(metrics.FanoutClientNotification, errs.Wrap(err, "client notification"))
		return
	}
	col.update(func(r *FanoutReport) { r.ClientNotified = true })
}

func (d *FanoutDispatcher) notifyManager(ctx context.Context, ev BookingCreated, m shared.ManagerSnapshot, col *reportCollector) {
	if m.NotificationToken == "" {
		return
	}
	err := d.notifier.Send(ctx, shared.Notification{
		Token: m.NotificationToken,
		Title: "New Booking",
		Body:  fmt.Sprintf("%s booked plot %s.", ev.ClientName, ev.PlotNumber),
		Data:  notificationData("new_booking", ev),
	})
	if err != nil {
		slog.Warn("failed to notify manager of booking",
			"booking_id", ev.BookingID,
			"manager_id", m.ID,
			"error", err.Error())
		col.fail(metrics.FanoutManagerNotification, errs.Wrapf(err, "notify manager %s", m.ID))
		return
	}
	col.update(func(r *FanoutReport) { r.ManagersNotified++ })
}

func (d *FanoutDispatcher) createFollowUp(ctx context.Context, ev BookingCreated, m shared.ManagerSnapshot, col *reportCollector) {
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t := task.NewBookingFollowUp(ev.BookingID, ev.ProjectID, ev.PlotID, m.ID,
			d.clock.Now(), d.cfg.TaskDueAfter, task.ParsePriority(d.cfg.TaskPriority))
		return tx.Tasks().Create(ctx, t)
	})
	if err != nil {
		slog.Error("failed to create booking follow-up task",
			"booking_id", ev.BookingID,
			"manager_id", m.ID,
			"error", err.Error())
		col.fail(metrics.FanoutManagerTask, errs.Wrapf(err, "task for manager %s", m.ID))
		return
	}
	col.update(func(r *FanoutReport) { r.TasksCreated++ })
}

func notificationData(kind string, ev BookingCreated) map[string]string {
	return map[string]string{
		"type":      kind,
		"bookingId": ev.BookingID.String(),
		"plotId":    ev.PlotID.String(),
		"projectId": ev.ProjectID.String(),
	}
}
