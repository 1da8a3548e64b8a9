//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"estate-booking/internal/domain/plot"
	"estate-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlotBuilder struct {
	ProjectID  uuid.UUID
	PlotNumber string
	Price      *decimal.Decimal
	SizeSqm    *decimal.Decimal
	Now        time.Time
}

func NewPlotBuilder(projectID uuid.UUID) *PlotBuilder {
	price := decimal.RequireFromString("2500000")
	size := decimal.RequireFromString("450")
	return &PlotBuilder{
		ProjectID:  projectID,
		PlotNumber: "A-1",
		Price:      &price,
		SizeSqm:    &size,
		Now:        time.Date(2026, 1, 12, 8, 0, 0, 0, time.UTC),
	}
}

func (b *PlotBuilder) WithNumber(n string) *PlotBuilder {
	b.PlotNumber = n
	return b
}

// Numbered sets the plot number to "<prefix>-<i>".
func (b *PlotBuilder) Numbered(prefix string, i int) *PlotBuilder {
	b.PlotNumber = fmt.Sprintf("%s-%d", prefix, i)
	return b
}

func (b *PlotBuilder) BuildDomain() (*plot.Plot, error) {
	return plot.New(b.ProjectID, b.PlotNumber, b.Price, b.SizeSqm, b.Now)
}

func (b *PlotBuilder) BuildCreateRequest() commands.CreatePlotRequest {
	return commands.CreatePlotRequest{
		ProjectID:  b.ProjectID,
		PlotNumber: b.PlotNumber,
		Price:      b.Price,
		SizeSqm:    b.SizeSqm,
	}
}
