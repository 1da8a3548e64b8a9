package repository

import (
	"context"

	"estate-booking/internal/domain/plot"
	"estate-booking/internal/infra/repository/converter"
	sqlc "estate-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PlotWriteQueries interface {
	CreatePlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePlotParams) error
	GetPlotForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPlotForUpdateParams) (sqlc.Plots, error)
	UpdatePlot(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePlotParams) (int64, error)
	DeletePlot(ctx context.Context, db sqlc.DBTX, arg sqlc.DeletePlotParams) (int64, error)
}

type PlotRepository struct {
	queries PlotWriteQueries
	db      sqlc.DBTX
}

func NewPlotRepository(queries PlotWriteQueries, db sqlc.DBTX) *PlotRepository {
	return &PlotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PlotRepository) Create(ctx context.Context, p *plot.Plot) error {
	if err := r.queries.CreatePlot(ctx, r.db, converter.PlotToCreateParams(p)); err != nil {
		return repoErr("failed to create plot", err)
	}
	return nil
}

func (r *PlotRepository) GetForUpdate(ctx context.Context, projectID, plotID uuid.UUID) (*plot.Plot, error) {
	row, err := r.queries.GetPlotForUpdate(ctx, r.db, sqlc.GetPlotForUpdateParams{ID: plotID, ProjectID: projectID})
	if err != nil {
		return nil, repoErr("failed to lock plot", err)
	}
	p, err := converter.PlotFromRow(row)
	if err != nil {
		return nil, repoErr("failed to decode plot", err)
	}
	return p, nil
}

func (r *PlotRepository) Update(ctx context.Context, p *plot.Plot) error {
	rows, err := r.queries.UpdatePlot(ctx, r.db, converter.PlotToUpdateParams(p))
	return affected(rows, err, "failed to update plot")
}

func (r *PlotRepository) Delete(ctx context.Context, p *plot.Plot) error {
	rows, err := r.queries.DeletePlot(ctx, r.db, sqlc.DeletePlotParams{ID: p.ID(), ProjectID: p.ProjectID()})
	return affected(rows, err, "failed to delete plot")
}
