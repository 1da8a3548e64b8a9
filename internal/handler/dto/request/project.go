package request

import (
	"estate-booking/internal/domain/plot"
	"estate-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateProjectRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

func (r *CreateProjectRequest) ToCommand() commands.CreateProjectRequest {
	return commands.CreateProjectRequest{Name: r.Name, Location: r.Location}
}

type AssignManagerRequest struct {
	ManagerID uuid.UUID `json:"managerId" binding:"required"`
}

type CreatePlotRequest struct {
	PlotNumber string           `json:"plotNumber" binding:"required"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	SizeSqm    *decimal.Decimal `json:"sizeSqm,omitempty"`
}

func (r *CreatePlotRequest) ToCommand(projectID uuid.UUID) commands.CreatePlotRequest {
	return commands.CreatePlotRequest{
		ProjectID:  projectID,
		PlotNumber: r.PlotNumber,
		Price:      r.Price,
		SizeSqm:    r.SizeSqm,
	}
}

type UpdatePlotStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r *UpdatePlotStatusRequest) ToStatus() plot.Status {
	return plot.Status(r.Status)
}
