package project

import (
	"time"

	"github.com/google/uuid"
)

// ManagerAssignment links a manager to a project they follow up bookings for.
type ManagerAssignment struct {
	ProjectID  uuid.UUID
	ManagerID  uuid.UUID
	AssignedAt time.Time
}
