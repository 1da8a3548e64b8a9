package converter

import (
	"estate-booking/internal/domain/plot"
	sqlc "estate-booking/internal/infra/sqlc/generated"
	"estate-booking/internal/pkg/pgconv"
)

func PlotFromRow(row sqlc.Plots) (*plot.Plot, error) {
	price, err := pgconv.DecimalPtrFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	size, err := pgconv.DecimalPtrFromNumeric(row.SizeSqm)
	if err != nil {
		return nil, err
	}
	return plot.Reconstruct(plot.Snapshot{
		ID:         row.ID,
		ProjectID:  row.ProjectID,
		PlotNumber: row.PlotNumber,
		Status:     plot.Status(row.Status),
		Price:      price,
		SizeSqm:    size,
		OwnerID:    pgconv.UUIDPtrFromPgtype(row.OwnerID),
		BookedBy:   pgconv.UUIDPtrFromPgtype(row.BookedBy),
		BookedAt:   pgconv.TimePtrFromPgtype(row.BookedAt),
		BookingID:  pgconv.UUIDPtrFromPgtype(row.BookingID),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func PlotToCreateParams(p *plot.Plot) sqlc.CreatePlotParams {
	return sqlc.CreatePlotParams{
		ID:         p.ID(),
		ProjectID:  p.ProjectID(),
		PlotNumber: p.PlotNumber(),
		Status:     p.Status().String(),
		Price:      pgconv.DecimalPtrToNumeric(p.Price()),
		SizeSqm:    pgconv.DecimalPtrToNumeric(p.SizeSqm()),
		OwnerID:    pgconv.UUIDPtrToPgtype(p.OwnerID()),
		CreatedAt:  pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PlotToUpdateParams(p *plot.Plot) sqlc.UpdatePlotParams {
	return sqlc.UpdatePlotParams{
		ID:        p.ID(),
		Status:    p.Status().String(),
		OwnerID:   pgconv.UUIDPtrToPgtype(p.OwnerID()),
		BookedBy:  pgconv.UUIDPtrToPgtype(p.BookedBy()),
		BookedAt:  pgconv.TimePtrToPgtype(p.BookedAt()),
		BookingID: pgconv.UUIDPtrToPgtype(p.BookingID()),
		UpdatedAt: pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}
