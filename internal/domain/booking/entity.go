package booking

import (
	"time"

	"estate-booking/internal/domain/user"
	"estate-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

var ErrNotPending = errs.New("booking is not pending")

type Booking struct {
	id         uuid.UUID
	plotID     uuid.UUID
	projectID  uuid.UUID
	clientID   uuid.UUID
	clientName string
	status     Status
	details    Details
	createdAt  time.Time
	updatedAt  time.Time
}

// New builds a pending booking for client. System fields are set after the
// details so that nothing supplied by the caller can override them.
func New(plotID, projectID uuid.UUID, client *user.User, details Details, now time.Time) *Booking {
	b := &Booking{details: details.Clone()}
	b.id = uuid.New()
	b.plotID = plotID
	b.projectID = projectID
	b.clientID = client.ID()
	b.clientName = client.DisplayLabel()
	b.status = StatusPending
	b.createdAt = now
	b.updatedAt = now
	return b
}

func Reconstruct(id, plotID, projectID, clientID uuid.UUID, clientName string, status Status, details Details, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:         id,
		plotID:     plotID,
		projectID:  projectID,
		clientID:   clientID,
		clientName: clientName,
		status:     status,
		details:    details,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Cancel is used when the plot behind a pending booking is released or removed.
func (b *Booking) Cancel(at time.Time) error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusCancelled
	b.updatedAt = at
	return nil
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) PlotID() uuid.UUID    { return b.plotID }
func (b *Booking) ProjectID() uuid.UUID { return b.projectID }
func (b *Booking) ClientID() uuid.UUID  { return b.clientID }
func (b *Booking) ClientName() string   { return b.clientName }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) Details() Details     { return b.details.Clone() }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
