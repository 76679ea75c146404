// Package catalog implements the browse side of the investment catalog:
// paginated, filtered listing and single-record lookup.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mgolik/eufunds/internal/domain/project"
	"github.com/mgolik/eufunds/internal/repository"
)

const (
	// DefaultPage is used when the caller supplies no page number.
	DefaultPage = 1
	// DefaultPageSize is used when the caller supplies no page size.
	DefaultPageSize = 100
)

// Service handles catalog queries.
type Service struct {
	store  repository.Store
	logger *slog.Logger
}

// NewService creates a new catalog service.
func NewService(store repository.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// ListRequest defines listing inputs. Zero Page or PageSize means the
// default; negative values are rejected.
type ListRequest struct {
	Page     int
	PageSize int
	Type     string
	Location string
}

// ListResult is one page of the catalog plus pagination totals.
type ListResult struct {
	Projects    []project.Project `json:"projects"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
}

// List returns one page of projects matching the request filters. The
// count and the page fetch run inside a single read scope so both see the
// same snapshot.
func (s *Service) List(ctx context.Context, req ListRequest) (*ListResult, error) {
	if req.Page == 0 {
		req.Page = DefaultPage
	}
	if req.PageSize == 0 {
		req.PageSize = DefaultPageSize
	}
	if req.Page < 1 || req.PageSize < 1 {
		return nil, ErrInvalidRequest
	}

	opts := repository.ListOptions{
		Type:     req.Type,
		Location: req.Location,
		Limit:    req.PageSize,
		Offset:   (req.Page - 1) * req.PageSize,
	}

	var (
		projects []project.Project
		count    int
	)
	err := s.store.View(ctx, func(repo repository.ProjectRepository) error {
		var err error
		if count, err = repo.Count(ctx, opts); err != nil {
			return fmt.Errorf("counting projects: %w", err)
		}
		if projects, err = repo.List(ctx, opts); err != nil {
			return fmt.Errorf("listing projects: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if projects == nil {
		projects = []project.Project{}
	}

	return &ListResult{
		Projects:    projects,
		TotalPages:  (count + req.PageSize - 1) / req.PageSize,
		CurrentPage: req.Page,
	}, nil
}

// Get fetches a single project by identifier.
func (s *Service) Get(ctx context.Context, id string) (*project.Project, error) {
	var proj *project.Project
	err := s.store.View(ctx, func(repo repository.ProjectRepository) error {
		var err error
		proj, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}
