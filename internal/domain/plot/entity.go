package plot

import (
	"fmt"
	"strings"
	"time"

	"estate-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxPlotNumberLength = 32

var (
	ErrInvalidStatus      = errs.New("invalid plot status")
	ErrEmptyPlotNumber    = errs.New("plot number is required")
	ErrPlotNumberTooLong  = errs.New("plot number is too long")
	ErrNegativePrice      = errs.New("plot price must not be negative")
	ErrNonPositiveSize    = errs.New("plot size must be positive")
	ErrBookedByWorkflow   = errs.New("booked status is set only by the booking transaction")
	ErrMissingProjectID   = errs.New("plot requires a project id")
	ErrMissingBookingRefs = errs.New("booking requires client and booking ids")
)

// NotAvailableError is returned when a plot cannot be booked because of its current status.
type NotAvailableError struct {
	Status Status
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("plot is not available (status: %s)", e.Status)
}

type Plot struct {
	id         uuid.UUID
	projectID  uuid.UUID
	plotNumber string
	status     Status
	price      *decimal.Decimal
	sizeSqm    *decimal.Decimal
	ownerID    *uuid.UUID
	bookedBy   *uuid.UUID
	bookedAt   *time.Time
	bookingID  *uuid.UUID
	createdAt  time.Time
	updatedAt  time.Time
}

func New(projectID uuid.UUID, plotNumber string, price, sizeSqm *decimal.Decimal, now time.Time) (*Plot, error) {
	if projectID == uuid.Nil {
		return nil, ErrMissingProjectID
	}
	number := strings.TrimSpace(plotNumber)
	if number == "" {
		return nil, ErrEmptyPlotNumber
	}
	if len(number) > MaxPlotNumberLength {
		return nil, ErrPlotNumberTooLong
	}
	if price != nil && price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if sizeSqm != nil && !sizeSqm.IsPositive() {
		return nil, ErrNonPositiveSize
	}
	return &Plot{
		id:         uuid.New(),
		projectID:  projectID,
		plotNumber: number,
		status:     StatusAvailable,
		price:      price,
		sizeSqm:    sizeSqm,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

type Snapshot struct {
	ID         uuid.UUID
	ProjectID  uuid.UUID
	PlotNumber string
	Status     Status
	Price      *decimal.Decimal
	SizeSqm    *decimal.Decimal
	OwnerID    *uuid.UUID
	BookedBy   *uuid.UUID
	BookedAt   *time.Time
	BookingID  *uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func Reconstruct(s Snapshot) *Plot {
	return &Plot{
		id:         s.ID,
		projectID:  s.ProjectID,
		plotNumber: s.PlotNumber,
		status:     s.Status,
		price:      s.Price,
		sizeSqm:    s.SizeSqm,
		ownerID:    s.OwnerID,
		bookedBy:   s.BookedBy,
		bookedAt:   s.BookedAt,
		bookingID:  s.BookingID,
		createdAt:  s.CreatedAt,
		updatedAt:  s.UpdatedAt,
	}
}

func (p *Plot) Snapshot() Snapshot {
	return Snapshot{
		ID:         p.id,
		ProjectID:  p.projectID,
		PlotNumber: p.plotNumber,
		Status:     p.status,
		Price:      p.price,
		SizeSqm:    p.sizeSqm,
		OwnerID:    p.ownerID,
		BookedBy:   p.bookedBy,
		BookedAt:   p.bookedAt,
		BookingID:  p.bookingID,
		CreatedAt:  p.createdAt,
		UpdatedAt:  p.updatedAt,
	}
}

// Book flips an available plot to booked and records who booked it.
func (p *Plot) Book(clientID, bookingID uuid.UUID, at time.Time) error {
	if clientID == uuid.Nil || bookingID == uuid.Nil {
		return ErrMissingBookingRefs
	}
	if p.status != StatusAvailable {
		return &NotAvailableError{Status: p.status}
	}
	p.status = StatusBooked
	p.bookedBy = &clientID
	p.bookedAt = &at
	p.bookingID = &bookingID
	p.updatedAt = at
	return nil
}

// ChangeStatus applies a manager status change. When a plot goes back to
// available its booking reference is cleared and returned as released.
func (p *Plot) ChangeStatus(next Status, at time.Time) (released *uuid.UUID, err error) {
	if !next.IsValid() {
		return nil, ErrInvalidStatus
	}
	if next == StatusBooked {
		return nil, ErrBookedByWorkflow
	}
	if next == p.status {
		return nil, nil
	}
	if next == StatusAvailable {
		released = p.bookingID
		p.bookedBy = nil
		p.bookedAt = nil
		p.bookingID = nil
	}
	p.status = next
	p.updatedAt = at
	return released, nil
}

func (p *Plot) ID() uuid.UUID             { return p.id }
func (p *Plot) ProjectID() uuid.UUID      { return p.projectID }
func (p *Plot) PlotNumber() string        { return p.plotNumber }
func (p *Plot) Status() Status            { return p.status }
func (p *Plot) Price() *decimal.Decimal   { return p.price }
func (p *Plot) SizeSqm() *decimal.Decimal { return p.sizeSqm }
func (p *Plot) OwnerID() *uuid.UUID       { return p.ownerID }
func (p *Plot) BookedBy() *uuid.UUID      { return p.bookedBy }
func (p *Plot) BookedAt() *time.Time      { return p.bookedAt }
func (p *Plot) BookingID() *uuid.UUID     { return p.bookingID }
func (p *Plot) CreatedAt() time.Time      { return p.createdAt }
func (p *Plot) UpdatedAt() time.Time      { return p.updatedAt }
