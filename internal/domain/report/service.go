package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mgolik/eufunds/internal/domain/project"
	"github.com/mgolik/eufunds/internal/repository"
)

// Service runs reports against the record store. Each report fetches its
// records inside one read scope and aggregates in memory after the scope
// closes; a fetch fault yields an error, never a partial report.
type Service struct {
	store      repository.Store
	categories []string
	logger     *slog.Logger
}

// NewService creates a report service. categories fixes the pivot's
// category vocabulary and iteration order; nil means the default list.
func NewService(store repository.Store, categories []string, logger *slog.Logger) *Service {
	if categories == nil {
		categories = project.DefaultCategories
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, categories: categories, logger: logger}
}

// RegionalPivot aggregates total project value per region and category
// over projects running inside the date window. An empty window is a
// valid empty report.
func (s *Service) RegionalPivot(ctx context.Context, start, end project.Date) ([]Cell, error) {
	var records []project.Project
	err := s.store.View(ctx, func(repo repository.ProjectRepository) error {
		var err error
		records, err = repo.ListByDateWindow(ctx, start, end)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fetching projects for pivot: %w", err)
	}
	s.logger.Debug("pivot fetch", "records", len(records), "start", start, "end", end)
	// Pivot applies the window itself; the fetch predicate only narrows
	// the scan and is not part of Pivot's contract.
	return Pivot(records, start, end, s.categories), nil
}

// TimeSeries returns one point per project sorted by start date.
func (s *Service) TimeSeries(ctx context.Context) ([]Point, error) {
	var records []project.Project
	err := s.store.View(ctx, func(repo repository.ProjectRepository) error {
		var err error
		records, err = repo.ListByStartDate(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fetching projects for series: %w", err)
	}
	return Series(records), nil
}
