package export_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mgolik/eufunds/internal/domain/export"
	"github.com/mgolik/eufunds/internal/domain/project"
	"github.com/mgolik/eufunds/internal/repository/mocks"
)

func TestExportService_FullSet(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	repo.On("ListAll", ctx).Return(fixtureRecords(), nil)

	svc := export.NewService(&mocks.Store{Repo: repo}, nil)
	doc, err := svc.Export(ctx, export.FormatCSV)
	require.NoError(t, err)
	require.Contains(t, string(doc), "projectName,")
	require.Contains(t, string(doc), "Modernizacja linii kolejowej nr 8")
}

func TestExportService_EmptyStore(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	repo.On("ListAll", ctx).Return([]project.Project{}, nil)

	svc := export.NewService(&mocks.Store{Repo: repo}, nil)

	_, err := svc.Export(ctx, export.FormatCSV)
	require.ErrorIs(t, err, export.ErrNoData)
	_, err = svc.Export(ctx, export.FormatTXT)
	require.ErrorIs(t, err, export.ErrNoData)

	doc, err := svc.Export(ctx, export.FormatJSON)
	require.NoError(t, err)
	require.Equal(t, "[]\n", string(doc))
}

func TestExportService_StoreFault(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	fault := errors.New("store down")
	repo.On("ListAll", ctx).Return(nil, fault)

	svc := export.NewService(&mocks.Store{Repo: repo}, nil)
	doc, err := svc.Export(ctx, export.FormatJSON)
	require.ErrorIs(t, err, fault)
	require.Nil(t, doc, "no partial export on fault")
}
