package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mgolik/eufunds/internal/domain/project"
	"github.com/mgolik/eufunds/internal/repository"
)

// ProjectRepository is a mock for repository.ProjectRepository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context, opts repository.ListOptions) ([]project.Project, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Count(ctx context.Context, opts repository.ListOptions) (int, error) {
	args := m.Called(ctx, opts)
	return args.Int(0), args.Error(1)
}

func (m *ProjectRepository) ListAll(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) ListByStartDate(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) ListByDateWindow(ctx context.Context, start, end project.Date) ([]project.Project, error) {
	args := m.Called(ctx, start, end)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// Store is a mock repository.Store that runs the scope callback against
// the wrapped repository without any transaction.
type Store struct {
	Repo *ProjectRepository
	// Err, when set, is returned instead of running the callback,
	// simulating a failure to open the read scope.
	Err error
}

func (s *Store) View(_ context.Context, fn func(repository.ProjectRepository) error) error {
	if s.Err != nil {
		return s.Err
	}
	return fn(s.Repo)
}
