package memstore

import (
	"time"

	"estate-booking/internal/domain/booking"
	"estate-booking/internal/domain/project"
	"estate-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Stored values are immutable once committed; every write stores a fresh record.
// Booking timestamps keep microsecond precision, like timestamptz, so list
// cursors address them exactly.

type projectRecord struct {
	ID        uuid.UUID
	Name      string
	Location  string
	Status    project.Status
	Counters  project.Counters
	CreatedAt time.Time
	UpdatedAt time.Time
}

func projectToRecord(p *project.Project) projectRecord {
	return projectRecord{
		ID:        p.ID(),
		Name:      p.Name(),
		Location:  p.Location(),
		Status:    p.Status(),
		Counters:  p.Counters(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func (r projectRecord) domain() *project.Project {
	return project.Reconstruct(r.ID, r.Name, r.Location, r.Status, r.Counters, r.CreatedAt, r.UpdatedAt)
}

type bookingRecord struct {
	ID         uuid.UUID
	PlotID     uuid.UUID
	ProjectID  uuid.UUID
	ClientID   uuid.UUID
	ClientName string
	Status     booking.Status
	Details    booking.Details
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func bookingToRecord(b *booking.Booking) bookingRecord {
	return bookingRecord{
		ID:         b.ID(),
		PlotID:     b.PlotID(),
		ProjectID:  b.ProjectID(),
		ClientID:   b.ClientID(),
		ClientName: b.ClientName(),
		Status:     b.Status(),
		Details:    b.Details(),
		CreatedAt:  b.CreatedAt().Truncate(time.Microsecond),
		UpdatedAt:  b.UpdatedAt().Truncate(time.Microsecond),
	}
}

func (r bookingRecord) domain() *booking.Booking {
	return booking.Reconstruct(r.ID, r.PlotID, r.ProjectID, r.ClientID, r.ClientName, r.Status, r.Details.Clone(), r.CreatedAt, r.UpdatedAt)
}

type userRecord struct {
	ID                uuid.UUID
	Email             string
	DisplayName       string
	Role              user.Role
	NotificationToken string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func userToRecord(u *user.User) userRecord {
	return userRecord{
		ID:                u.ID(),
		Email:             u.Email(),
		DisplayName:       u.DisplayName(),
		Role:              u.Role(),
		NotificationToken: u.NotificationToken(),
		IsActive:          u.IsActive(),
		CreatedAt:         u.CreatedAt(),
		UpdatedAt:         u.UpdatedAt(),
	}
}

func (r userRecord) domain() *user.User {
	return user.ReconstructUser(r.ID, r.Email, r.DisplayName, r.Role, r.NotificationToken, r.IsActive, r.CreatedAt, r.UpdatedAt)
}

func idKey(coll string, id uuid.UUID) docKey {
	return docKey{coll: coll, id: id.String()}
}

func pairKey(coll string, parent uuid.UUID, child string) docKey {
	return docKey{coll: coll, id: parent.String() + "/" + child}
}
