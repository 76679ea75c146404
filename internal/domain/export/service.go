package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/mgolik/eufunds/internal/domain/project"
	"github.com/mgolik/eufunds/internal/repository"
)

// Service produces bulk exports of the full record set.
type Service struct {
	store  repository.Store
	logger *slog.Logger
}

// NewService creates an export service.
func NewService(store repository.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Export fetches every record in one read scope and renders it in the
// requested format. The result is either a complete document or an
// error; no partial export is ever returned.
func (s *Service) Export(ctx context.Context, format Format) ([]byte, error) {
	var records []project.Project
	err := s.store.View(ctx, func(repo repository.ProjectRepository) error {
		var err error
		records, err = repo.ListAll(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fetching projects for export: %w", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, records, format); err != nil {
		return nil, err
	}
	s.logger.Debug("export rendered", "format", format, "records", len(records), "bytes", buf.Len())
	return buf.Bytes(), nil
}
