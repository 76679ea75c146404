// Package transport exposes the catalog over a read-only HTTP surface.
package transport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mgolik/eufunds/internal/domain/catalog"
	"github.com/mgolik/eufunds/internal/domain/export"
	"github.com/mgolik/eufunds/internal/domain/project"
	"github.com/mgolik/eufunds/internal/domain/report"
)

// CatalogService lists and fetches projects.
type CatalogService interface {
	List(ctx context.Context, req catalog.ListRequest) (*catalog.ListResult, error)
	Get(ctx context.Context, id string) (*project.Project, error)
}

// ReportService produces chart aggregates.
type ReportService interface {
	RegionalPivot(ctx context.Context, start, end project.Date) ([]report.Cell, error)
	TimeSeries(ctx context.Context) ([]report.Point, error)
}

// ExportService renders bulk exports.
type ExportService interface {
	Export(ctx context.Context, format export.Format) ([]byte, error)
}

// Server wires HTTP handlers.
type Server struct {
	catalog CatalogService
	reports ReportService
	exports ExportService
	logger  *slog.Logger
}

// NewServer creates the HTTP router.
func NewServer(catalogSvc CatalogService, reportSvc ReportService, exportSvc ExportService, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}
	srv := &Server{catalog: catalogSvc, reports: reportSvc, exports: exportSvc, logger: logger}

	r := chi.NewRouter()
	r.Get("/projects", srv.handleListProjects)
	r.Get("/projects/{id}", srv.handleGetProject)
	r.Get("/chart-data", srv.handleChartData)
	r.Get("/line-chart-data", srv.handleLineChartData)
	r.Get("/export/{format}", srv.handleExport)
	r.Get("/health", srv.handleHealth)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, ok := positiveIntParam(q.Get("page"), catalog.DefaultPage)
	if !ok {
		writeMessage(w, http.StatusBadRequest, catalog.ErrInvalidRequest.Error())
		return
	}
	limit, ok := positiveIntParam(q.Get("limit"), catalog.DefaultPageSize)
	if !ok {
		writeMessage(w, http.StatusBadRequest, catalog.ErrInvalidRequest.Error())
		return
	}

	result, err := s.catalog.List(r.Context(), catalog.ListRequest{
		Page:     page,
		PageSize: limit,
		Type:     q.Get("type"),
		Location: q.Get("location"),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	proj, err := s.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, proj)
}

func (s *Server) handleChartData(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, errStart := project.ParseDate(q.Get("startDate"))
	end, errEnd := project.ParseDate(q.Get("endDate"))
	if errStart != nil || errEnd != nil {
		writeMessage(w, http.StatusBadRequest, "Start date and end date are required")
		return
	}

	cells, err := s.reports.RegionalPivot(r.Context(), start, end)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cells)
}

func (s *Server) handleLineChartData(w http.ResponseWriter, r *http.Request) {
	points, err := s.reports.TimeSeries(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := s.exports.Export(r.Context(), format)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+format.Filename()+`"`)
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

// writeError maps domain failures onto the HTTP error taxonomy. Anything
// unrecognized is a store or transform fault: logged with detail, served
// as an opaque 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrProjectNotFound):
		writeMessage(w, http.StatusNotFound, "Cannot find project")
	case errors.Is(err, catalog.ErrInvalidRequest):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, export.ErrNoData):
		http.Error(w, "No projects found", http.StatusNotFound)
	default:
		s.logger.Error("request failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
	}
}

// positiveIntParam parses a pagination query parameter. Absent means the
// default; anything that is not a positive integer is rejected.
func positiveIntParam(raw string, def int) (int, bool) {
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, false
	}
	return v, true
}
