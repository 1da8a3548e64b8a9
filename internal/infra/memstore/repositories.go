package memstore

import (
	"context"
	"log/slog"

	"estate-booking/internal/domain/activity"
	"estate-booking/internal/domain/booking"
	"estate-booking/internal/domain/plot"
	"estate-booking/internal/domain/project"
	"estate-booking/internal/domain/task"
	"estate-booking/internal/domain/user"
	"estate-booking/internal/infra"

	"github.com/google/uuid"
)

func notFound(msg string) error {
	return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, msg, nil)
}

func duplicate(msg string) error {
	return infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, msg, nil)
}

type projectRepo struct{ t *transaction }

func (r projectRepo) Create(_ context.Context, p *project.Project) error {
	key := idKey(collProjects, p.ID())
	if _, ok := r.t.get(key); ok {
		return duplicate("project already exists")
	}
	r.t.put(key, projectToRecord(p))
	return nil
}

func (r projectRepo) GetForUpdate(_ context.Context, id uuid.UUID) (*project.Project, error) {
	v, ok := r.t.get(idKey(collProjects, id))
	if !ok {
		return nil, notFound("project not found")
	}
	return v.(projectRecord).domain(), nil
}

func (r projectRepo) SaveCounters(_ context.Context, p *project.Project) error {
	key := idKey(collProjects, p.ID())
	v, ok := r.t.get(key)
	if !ok {
		return notFound("failed to update project counters")
	}
	rec := v.(projectRecord)
	rec.Counters = p.Counters()
	rec.UpdatedAt = p.UpdatedAt()
	r.t.put(key, rec)
	return nil
}

func (r projectRepo) AssignManager(_ context.Context, a project.ManagerAssignment) error {
	if _, ok := r.t.get(idKey(collProjects, a.ProjectID)); !ok {
		return infra.WrapRepoErr(slog.Default(), infra.KindForeignKeyViolated, "project does not exist", nil)
	}
	key := pairKey(collProjectManagers, a.ProjectID, a.ManagerID.String())
	if _, ok := r.t.get(key); ok {
		return duplicate("manager already assigned")
	}
	r.t.put(key, a)
	return nil
}

type plotRepo struct{ t *transaction }

func (r plotRepo) Create(_ context.Context, p *plot.Plot) error {
	numberKey := pairKey(collPlotNumbers, p.ProjectID(), p.PlotNumber())
	if _, ok := r.t.get(numberKey); ok {
		return duplicate("plot number already used in project")
	}
	r.t.put(numberKey, p.ID())
	r.t.put(idKey(collPlots, p.ID()), p.Snapshot())
	return nil
}

func (r plotRepo) GetForUpdate(_ context.Context, projectID, plotID uuid.UUID) (*plot.Plot, error) {
	v, ok := r.t.get(idKey(collPlots, plotID))
	if !ok {
		return nil, notFound("plot not found")
	}
	s := v.(plot.Snapshot)
	if s.ProjectID != projectID {
		return nil, notFound("plot not found")
	}
	return plot.Reconstruct(s), nil
}

func (r plotRepo) Update(_ context.Context, p *plot.Plot) error {
	key := idKey(collPlots, p.ID())
	if _, ok := r.t.get(key); !ok {
		return notFound("failed to update plot")
	}
	r.t.put(key, p.Snapshot())
	return nil
}

func (r plotRepo) Delete(_ context.Context, p *plot.Plot) error {
	key := idKey(collPlots, p.ID())
	if _, ok := r.t.get(key); !ok {
		return notFound("failed to delete plot")
	}
	r.t.del(key)
	r.t.del(pairKey(collPlotNumbers, p.ProjectID(), p.PlotNumber()))
	return nil
}

type bookingRepo struct{ t *transaction }

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if b.Status() == booking.StatusPending {
		pendingKey := idKey(collPendingBookings, b.PlotID())
		if _, ok := r.t.get(pendingKey); ok {
			return duplicate("plot already has a pending booking")
		}
		r.t.put(pendingKey, b.ID())
	}
	r.t.put(idKey(collBookings, b.ID()), bookingToRecord(b))
	return nil
}

func (r bookingRepo) GetForUpdate(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	v, ok := r.t.get(idKey(collBookings, id))
	if !ok {
		return nil, notFound("booking not found")
	}
	return v.(bookingRecord).domain(), nil
}

func (r bookingRepo) UpdateStatus(_ context.Context, b *booking.Booking) error {
	key := idKey(collBookings, b.ID())
	v, ok := r.t.get(key)
	if !ok {
		return notFound("failed to update booking status")
	}
	rec := v.(bookingRecord)
	rec.Status = b.Status()
	rec.UpdatedAt = b.UpdatedAt()
	r.t.put(key, rec)

	if rec.Status != booking.StatusPending {
		pendingKey := idKey(collPendingBookings, rec.PlotID)
		if holder, ok := r.t.get(pendingKey); ok && holder.(uuid.UUID) == rec.ID {
			r.t.del(pendingKey)
		}
	}
	return nil
}

type userRepo struct{ t *transaction }

func (r userRepo) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	v, ok := r.t.get(idKey(collUsers, id))
	if !ok {
		return nil, notFound("user not found")
	}
	return v.(userRecord).domain(), nil
}

func (r userRepo) Create(_ context.Context, u *user.User) error {
	key := idKey(collUsers, u.ID())
	if _, ok := r.t.get(key); ok {
		return duplicate("user already exists")
	}
	r.t.put(key, userToRecord(u))
	return nil
}

func (r userRepo) UpdateNotificationToken(_ context.Context, u *user.User) error {
	key := idKey(collUsers, u.ID())
	v, ok := r.t.get(key)
	if !ok {
		return notFound("failed to update notification token")
	}
	rec := v.(userRecord)
	rec.NotificationToken = u.NotificationToken()
	rec.UpdatedAt = u.UpdatedAt()
	r.t.put(key, rec)
	return nil
}

type taskRepo struct{ t *transaction }

func (r taskRepo) Create(_ context.Context, tk *task.Task) error {
	r.t.put(idKey(collTasks, tk.ID), *tk)
	return nil
}

type activityRepo struct{ t *transaction }

func (r activityRepo) Append(_ context.Context, e *activity.Entry) error {
	r.t.put(idKey(collActivity, e.ID), *e)
	return nil
}
