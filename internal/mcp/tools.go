package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mgolik/eufunds/internal/domain/catalog"
	"github.com/mgolik/eufunds/internal/domain/project"
	"github.com/mgolik/eufunds/internal/domain/report"
)

type handler struct {
	services Services
}

func registerTools(server *sdkmcp.Server, services Services) {
	h := &handler{services: services}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List projects with optional type/location substring filters and pagination",
	}, h.listProjects)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get a single project by identifier",
	}, h.getProject)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "regional_pivot",
		Description: "Aggregate total project value per region and category inside a date window (YYYY-MM-DD bounds, inclusive)",
	}, h.regionalPivot)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "time_series",
		Description: "Total value and EU co-financing per project, sorted by start date",
	}, h.timeSeries)
}

// ListProjectsInput defines list_projects parameters.
type ListProjectsInput struct {
	Page     int    `json:"page,omitempty" jsonschema:"1-indexed page number"`
	Limit    int    `json:"limit,omitempty" jsonschema:"page size"`
	Type     string `json:"type,omitempty" jsonschema:"case-insensitive substring filter on project type"`
	Location string `json:"location,omitempty" jsonschema:"case-insensitive substring filter on project location"`
}

func (h *handler) listProjects(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListProjectsInput) (*sdkmcp.CallToolResult, *catalog.ListResult, error) {
	result, err := h.services.Catalog.List(ctx, catalog.ListRequest{
		Page:     in.Page,
		PageSize: in.Limit,
		Type:     in.Type,
		Location: in.Location,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, result, nil
}

// GetProjectInput defines get_project parameters.
type GetProjectInput struct {
	ID string `json:"id" jsonschema:"project identifier"`
}

func (h *handler) getProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in GetProjectInput) (*sdkmcp.CallToolResult, *project.Project, error) {
	proj, err := h.services.Catalog.Get(ctx, in.ID)
	if err != nil {
		return nil, nil, err
	}
	return nil, proj, nil
}

// RegionalPivotInput defines regional_pivot parameters.
type RegionalPivotInput struct {
	StartDate string `json:"start_date" jsonschema:"window start, YYYY-MM-DD"`
	EndDate   string `json:"end_date" jsonschema:"window end, YYYY-MM-DD"`
}

// PivotOutput wraps the pivot cells for tool output.
type PivotOutput struct {
	Cells []report.Cell `json:"cells"`
}

func (h *handler) regionalPivot(ctx context.Context, _ *sdkmcp.CallToolRequest, in RegionalPivotInput) (*sdkmcp.CallToolResult, *PivotOutput, error) {
	start, err := project.ParseDate(in.StartDate)
	if err != nil {
		return nil, nil, fmt.Errorf("start_date: %w", err)
	}
	end, err := project.ParseDate(in.EndDate)
	if err != nil {
		return nil, nil, fmt.Errorf("end_date: %w", err)
	}

	cells, err := h.services.Reports.RegionalPivot(ctx, start, end)
	if err != nil {
		return nil, nil, err
	}
	return nil, &PivotOutput{Cells: cells}, nil
}

// TimeSeriesInput defines time_series parameters (none).
type TimeSeriesInput struct{}

// SeriesOutput wraps the series points for tool output.
type SeriesOutput struct {
	Points []report.Point `json:"points"`
}

func (h *handler) timeSeries(ctx context.Context, _ *sdkmcp.CallToolRequest, _ TimeSeriesInput) (*sdkmcp.CallToolResult, *SeriesOutput, error) {
	points, err := h.services.Reports.TimeSeries(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, &SeriesOutput{Points: points}, nil
}
