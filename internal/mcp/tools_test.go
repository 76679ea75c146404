package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mgolik/eufunds/internal/domain/catalog"
	"github.com/mgolik/eufunds/internal/domain/project"
	"github.com/mgolik/eufunds/internal/domain/report"
)

type fakeCatalog struct {
	listResult *catalog.ListResult
	listErr    error
	lastReq    catalog.ListRequest
	getResult  *project.Project
	getErr     error
	lastID     string
}

func (f *fakeCatalog) List(_ context.Context, req catalog.ListRequest) (*catalog.ListResult, error) {
	f.lastReq = req
	return f.listResult, f.listErr
}

func (f *fakeCatalog) Get(_ context.Context, id string) (*project.Project, error) {
	f.lastID = id
	return f.getResult, f.getErr
}

type fakeReports struct {
	cells     []report.Cell
	points    []report.Point
	err       error
	lastStart project.Date
	lastEnd   project.Date
}

func (f *fakeReports) RegionalPivot(_ context.Context, start, end project.Date) ([]report.Cell, error) {
	f.lastStart, f.lastEnd = start, end
	return f.cells, f.err
}

func (f *fakeReports) TimeSeries(_ context.Context) ([]report.Point, error) {
	return f.points, f.err
}

func newTestHandler(cat *fakeCatalog, rep *fakeReports) *handler {
	if cat == nil {
		cat = &fakeCatalog{}
	}
	if rep == nil {
		rep = &fakeReports{}
	}
	return &handler{services: Services{Catalog: cat, Reports: rep}}
}

func TestListProjectsTool(t *testing.T) {
	cat := &fakeCatalog{listResult: &catalog.ListResult{
		Projects:    []project.Project{{ID: "p1"}},
		TotalPages:  3,
		CurrentPage: 2,
	}}
	h := newTestHandler(cat, nil)

	_, out, err := h.listProjects(context.Background(), nil, ListProjectsInput{
		Page: 2, Limit: 10, Type: "infra", Location: "pomorskie",
	})
	require.NoError(t, err)
	require.Equal(t, catalog.ListRequest{Page: 2, PageSize: 10, Type: "infra", Location: "pomorskie"}, cat.lastReq)
	require.Equal(t, 3, out.TotalPages)
	require.Len(t, out.Projects, 1)
}

func TestGetProjectTool(t *testing.T) {
	cat := &fakeCatalog{getResult: &project.Project{ID: "p7", ProjectName: "Obwodnica"}}
	h := newTestHandler(cat, nil)

	_, out, err := h.getProject(context.Background(), nil, GetProjectInput{ID: "p7"})
	require.NoError(t, err)
	require.Equal(t, "p7", cat.lastID)
	require.Equal(t, "Obwodnica", out.ProjectName)
}

func TestGetProjectTool_NotFound(t *testing.T) {
	cat := &fakeCatalog{getErr: catalog.ErrProjectNotFound}
	h := newTestHandler(cat, nil)

	_, out, err := h.getProject(context.Background(), nil, GetProjectInput{ID: "missing"})
	require.ErrorIs(t, err, catalog.ErrProjectNotFound)
	require.Nil(t, out)
}

func TestRegionalPivotTool(t *testing.T) {
	rep := &fakeReports{cells: []report.Cell{
		{Region: "MAZOWIECKIE", Category: "Zdrowie", Value: 150},
	}}
	h := newTestHandler(nil, rep)

	_, out, err := h.regionalPivot(context.Background(), nil, RegionalPivotInput{
		StartDate: "2020-01-01",
		EndDate:   "2030-12-31",
	})
	require.NoError(t, err)
	require.True(t, rep.lastStart.Equal(project.NewDate(2020, time.January, 1)))
	require.True(t, rep.lastEnd.Equal(project.NewDate(2030, time.December, 31)))
	require.Len(t, out.Cells, 1)
}

func TestRegionalPivotTool_BadDates(t *testing.T) {
	h := newTestHandler(nil, nil)

	_, _, err := h.regionalPivot(context.Background(), nil, RegionalPivotInput{
		StartDate: "not-a-date",
		EndDate:   "2030-12-31",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "start_date")

	_, _, err = h.regionalPivot(context.Background(), nil, RegionalPivotInput{
		StartDate: "2020-01-01",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "end_date")
}

func TestTimeSeriesTool(t *testing.T) {
	rep := &fakeReports{points: []report.Point{
		{Date: project.NewDate(2021, time.June, 1), TotalProjectValuePLN: 900, EuCoFinancingPLN: 765},
	}}
	h := newTestHandler(nil, rep)

	_, out, err := h.timeSeries(context.Background(), nil, TimeSeriesInput{})
	require.NoError(t, err)
	require.Len(t, out.Points, 1)
	require.Equal(t, 765.0, out.Points[0].EuCoFinancingPLN)
}

func TestTimeSeriesTool_StoreFault(t *testing.T) {
	rep := &fakeReports{err: errors.New("disk gone")}
	h := newTestHandler(nil, rep)

	_, out, err := h.timeSeries(context.Background(), nil, TimeSeriesInput{})
	require.Error(t, err)
	require.Nil(t, out)
}
