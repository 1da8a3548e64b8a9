package converter

import (
	"math"

	"estate-booking/internal/domain/project"
	sqlc "estate-booking/internal/infra/sqlc/generated"
	"estate-booking/internal/pkg/pgconv"
)

func ProjectFromRow(row sqlc.Projects) *project.Project {
	return project.Reconstruct(
		row.ID,
		row.Name,
		row.Location,
		project.Status(row.Status),
		project.Counters{
			Total:     int(row.TotalPlots),
			Available: int(row.AvailablePlots),
			Sold:      int(row.SoldPlots),
			Reserved:  int(row.ReservedPlots),
		},
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func ProjectToCreateParams(p *project.Project) sqlc.CreateProjectParams {
	c := p.Counters()
	return sqlc.CreateProjectParams{
		ID:             p.ID(),
		Name:           p.Name(),
		Location:       p.Location(),
		Status:         string(p.Status()),
		TotalPlots:     clampInt32(c.Total),
		AvailablePlots: clampInt32(c.Available),
		SoldPlots:      clampInt32(c.Sold),
		ReservedPlots:  clampInt32(c.Reserved),
		CreatedAt:      pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func ProjectToCounterParams(p *project.Project) sqlc.UpdateProjectCountersParams {
	c := p.Counters()
	return sqlc.UpdateProjectCountersParams{
		ID:             p.ID(),
		TotalPlots:     clampInt32(c.Total),
		AvailablePlots: clampInt32(c.Available),
		SoldPlots:      clampInt32(c.Sold),
		ReservedPlots:  clampInt32(c.Reserved),
		UpdatedAt:      pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func clampInt32(v int) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}
