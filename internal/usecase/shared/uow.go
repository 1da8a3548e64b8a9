package shared

import (
	"context"

	"estate-booking/internal/domain/activity"
	"estate-booking/internal/domain/booking"
	"estate-booking/internal/domain/plot"
	"estate-booking/internal/domain/project"
	"estate-booking/internal/domain/task"
	"estate-booking/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn as one atomic step. fn is re-run from scratch when the
	// store reports a write conflict, so it must not have side effects outside tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: reads for commands that do not need a transaction
	CommandReads() CommandReads
}

type Tx interface {
	Projects() ProjectRepository
	Plots() PlotRepository
	Bookings() BookingRepository
	Users() UserRepository
	Tasks() TaskRepository
	Activity() ActivityRepository
}

type CommandReads interface {
	NotificationToken(ctx context.Context, userID uuid.UUID) (string, error)
	ActiveProjectManagers(ctx context.Context, projectID uuid.UUID) ([]ManagerSnapshot, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, p *project.Project) error
	// GetForUpdate locks the project row until the transaction ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*project.Project, error)
	SaveCounters(ctx context.Context, p *project.Project) error
	AssignManager(ctx context.Context, a project.ManagerAssignment) error
}

type PlotRepository interface {
	Create(ctx context.Context, p *plot.Plot) error
	// GetForUpdate returns the plot only when it belongs to projectID.
	GetForUpdate(ctx context.Context, projectID, plotID uuid.UUID) (*plot.Plot, error)
	Update(ctx context.Context, p *plot.Plot) error
	Delete(ctx context.Context, p *plot.Plot) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, b *booking.Booking) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
	UpdateNotificationToken(ctx context.Context, u *user.User) error
}

type TaskRepository interface {
	Create(ctx context.Context, t *task.Task) error
}

// ActivityRepository is append-only.
type ActivityRepository interface {
	Append(ctx context.Context, e *activity.Entry) error
}
