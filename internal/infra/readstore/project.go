package readstore

import (
	"context"

	"estate-booking/internal/infra/repository/converter"
	sqlc "estate-booking/internal/infra/sqlc/generated"
	"estate-booking/internal/pkg/pgconv"
	"estate-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProjectReadQueries interface {
	GetProject(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Projects, error)
	ListPlotsByProject(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPlotsByProjectParams) ([]sqlc.Plots, error)
	ListActivityLogsByProject(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActivityLogsByProjectParams) ([]sqlc.ActivityLogs, error)
}

type ProjectReadStore struct {
	queries ProjectReadQueries
	db      sqlc.DBTX
}

func NewProjectReadStore(queries ProjectReadQueries, db sqlc.DBTX) *ProjectReadStore {
	return &ProjectReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProjectReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProjectView, error) {
	row, err := r.queries.GetProject(ctx, r.db, id)
	if err != nil {
		return nil, readErr("failed to find project", err)
	}
	return toProjectView(row), nil
}

func (r *ProjectReadStore) ListPlots(ctx context.Context, projectID uuid.UUID, status *string) ([]*queries.PlotView, error) {
	rows, err := r.queries.ListPlotsByProject(ctx, r.db, sqlc.ListPlotsByProjectParams{
		ProjectID: projectID,
		Status:    pgconv.StringPtrToPgtype(status),
	})
	if err != nil {
		return nil, readErr("failed to list plots", err)
	}
	views := make([]*queries.PlotView, 0, len(rows))
	for _, row := range rows {
		v, err := toPlotView(row)
		if err != nil {
			return nil, readErr("failed to decode plot", err)
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *ProjectReadStore) ListActivity(ctx context.Context, projectID uuid.UUID, limit int32) ([]*queries.ActivityView, error) {
	rows, err := r.queries.ListActivityLogsByProject(ctx, r.db, sqlc.ListActivityLogsByProjectParams{
		ProjectID: projectID,
		Limit:     limit,
	})
	if err != nil {
		return nil, readErr("failed to list activity", err)
	}
	views := make([]*queries.ActivityView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.ActivityView{
			ID:        row.ID,
			ActorID:   row.ActorID,
			Action:    row.Action,
			ProjectID: row.ProjectID,
			PlotID:    row.PlotID,
			BookingID: pgconv.UUIDPtrFromPgtype(row.BookingID),
			Message:   row.Message,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}

func toProjectView(row sqlc.Projects) *queries.ProjectView {
	return &queries.ProjectView{
		ID:             row.ID,
		Name:           row.Name,
		Location:       row.Location,
		Status:         row.Status,
		TotalPlots:     row.TotalPlots,
		AvailablePlots: row.AvailablePlots,
		SoldPlots:      row.SoldPlots,
		ReservedPlots:  row.ReservedPlots,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toPlotView(row sqlc.Plots) (*queries.PlotView, error) {
	p, err := converter.PlotFromRow(row)
	if err != nil {
		return nil, err
	}
	s := p.Snapshot()
	return &queries.PlotView{
		ID:         s.ID,
		ProjectID:  s.ProjectID,
		PlotNumber: s.PlotNumber,
		Status:     string(s.Status),
		Price:      s.Price,
		SizeSqm:    s.SizeSqm,
		OwnerID:    s.OwnerID,
		BookedBy:   s.BookedBy,
		BookedAt:   s.BookedAt,
		BookingID:  s.BookingID,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}, nil
}
