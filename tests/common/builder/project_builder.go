//go:build unit || e2e

package builder

import (
	"time"

	"estate-booking/internal/domain/project"
	sqlc "estate-booking/internal/infra/sqlc/generated"
	"estate-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProjectBuilder struct {
	ID       uuid.UUID
	Name     string
	Location string
	Status   project.Status
	Counters project.Counters
	Now      time.Time
}

func NewProjectBuilder() *ProjectBuilder {
	return &ProjectBuilder{
		ID:       uuid.New(),
		Name:     "Palm Grove Estate",
		Location: "Lekki, Lagos",
		Status:   project.StatusActive,
		Now:      time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC),
	}
}

func (b *ProjectBuilder) WithCounters(total, available, sold, reserved int) *ProjectBuilder {
	b.Counters = project.Counters{Total: total, Available: available, Sold: sold, Reserved: reserved}
	return b
}

func (b *ProjectBuilder) WithStatus(s project.Status) *ProjectBuilder {
	b.Status = s
	return b
}

func (b *ProjectBuilder) BuildDomain() *project.Project {
	return project.Reconstruct(b.ID, b.Name, b.Location, b.Status, b.Counters, b.Now, b.Now)
}

func (b *ProjectBuilder) BuildCreateRequest() commands.CreateProjectRequest {
	return commands.CreateProjectRequest{Name: b.Name, Location: b.Location}
}

func (b *ProjectBuilder) BuildInfra() sqlc.Projects {
	// #nosec G115 -- test counters are small
	return sqlc.Projects{
		ID:             b.ID,
		Name:           b.Name,
		Location:       b.Location,
		Status:         string(b.Status),
		TotalPlots:     int32(b.Counters.Total),
		AvailablePlots: int32(b.Counters.Available),
		SoldPlots:      int32(b.Counters.Sold),
		ReservedPlots:  int32(b.Counters.Reserved),
		CreatedAt:      pgtype.Timestamptz{Time: b.Now, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: b.Now, Valid: true},
	}
}
