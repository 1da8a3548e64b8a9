package project

import (
	"strings"
	"time"

	"estate-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxNameLength     = 200
	MaxLocationLength = 500
)

var (
	ErrEmptyName       = errs.New("project name is required")
	ErrNameTooLong     = errs.New("project name is too long")
	ErrLocationTooLong = errs.New("project location is too long")
	ErrInvalidStatus   = errs.New("invalid project status")
	ErrProjectClosed   = errs.New("project is completed")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusCompleted Status = "completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusCompleted:
		return true
	}
	return false
}

type Project struct {
	id        uuid.UUID
	name      string
	location  string
	status    Status
	counters  Counters
	createdAt time.Time
	updatedAt time.Time
}

func New(name, location string, now time.Time) (*Project, error) {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if len(location) > MaxLocationLength {
		return nil, ErrLocationTooLong
	}
	return &Project{
		id:        uuid.New(),
		name:      name,
		location:  location,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id uuid.UUID, name, location string, status Status, counters Counters, createdAt, updatedAt time.Time) *Project {
	return &Project{
		id:        id,
		name:      name,
		location:  location,
		status:    status,
		counters:  counters,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ApplyPlotEvent updates the counters for a plot mutation. Callers must persist
// the project in the same transaction as the plot write.
func (p *Project) ApplyPlotEvent(ev PlotEvent, at time.Time) error {
	next, err := p.counters.Apply(ev)
	if err != nil {
		return err
	}
	p.counters = next
	p.updatedAt = at
	return nil
}

func (p *Project) AcceptsNewPlots() error {
	if p.status == StatusCompleted {
		return ErrProjectClosed
	}
	return nil
}

func (p *Project) ID() uuid.UUID        { return p.id }
func (p *Project) Name() string         { return p.name }
func (p *Project) Location() string     { return p.location }
func (p *Project) Status() Status       { return p.status }
func (p *Project) Counters() Counters   { return p.counters }
func (p *Project) CreatedAt() time.Time { return p.createdAt }
func (p *Project) UpdatedAt() time.Time { return p.updatedAt }
