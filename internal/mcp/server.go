// Package mcp serves the catalog's read operations as MCP tools, a
// secondary transport sharing the HTTP surface's domain services.
package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mgolik/eufunds/internal/domain/catalog"
	"github.com/mgolik/eufunds/internal/domain/project"
	"github.com/mgolik/eufunds/internal/domain/report"
)

// CatalogService defines catalog operations needed by MCP.
type CatalogService interface {
	List(ctx context.Context, req catalog.ListRequest) (*catalog.ListResult, error)
	Get(ctx context.Context, id string) (*project.Project, error)
}

// ReportService defines report operations needed by MCP.
type ReportService interface {
	RegionalPivot(ctx context.Context, start, end project.Date) ([]report.Cell, error)
	TimeSeries(ctx context.Context) ([]report.Point, error)
}

// Services contains the domain services needed by MCP.
type Services struct {
	Catalog CatalogService
	Reports ReportService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

const serverInstructions = `Read-only catalog of EU-funded investment projects.
Use list_projects to browse with filters and pagination, get_project for a
single record, regional_pivot for region-by-category value totals inside a
date window, and time_series for the chronological value series.`

// NewServer creates and configures an MCP server with all tools.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "eufunds",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerTools(server, cfg.Services)

	return server
}
