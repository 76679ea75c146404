package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mgolik/eufunds/internal/domain/project"
	"github.com/mgolik/eufunds/internal/repository"
)

// Store implements repository.Store over SQLite. Every View call runs in
// its own transaction so multi-step reads (count + page, or a full fetch
// feeding several reports) see one snapshot.
type Store struct {
	db *DB
}

// NewStore creates a Store.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// View opens an atomic read scope. The scope commits when fn returns nil
// and rolls back otherwise; fn's error propagates unchanged. The scope
// issues no writes, so there is never a conflict to retry.
func (s *Store) View(ctx context.Context, fn func(repository.ProjectRepository) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin read scope: %w", err)
	}

	if err := fn(&txRepository{tx: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit read scope: %w", err)
	}
	return nil
}

// Load bulk-inserts records, assigning identifiers to records that lack
// one. It backs the seeding path and tests; the reporting engine itself
// never writes.
func (s *Store) Load(ctx context.Context, records []project.Project) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin load: %w", err)
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO projects (
			id, project_name, project_summary, contract_number, beneficiary_name,
			fund, specific_objective, program, priority, measure,
			type, type_of_intervention, total_project_value_pln,
			union_co_financing_rate, eu_co_financing_pln, euro_exchange_rate,
			project_location, project_start_date, project_end_date, category
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	for _, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		_, err := tx.ExecContext(ctx, query,
			rec.ID,
			rec.ProjectName,
			rec.ProjectSummary,
			rec.ContractNumber,
			rec.BeneficiaryName,
			rec.Fund,
			rec.SpecificObjective,
			rec.Program,
			rec.Priority,
			rec.Measure,
			rec.Type,
			rec.TypeOfIntervention,
			rec.TotalProjectValuePLN,
			rec.UnionCoFinancingRate,
			rec.EuCoFinancingPLN,
			rec.EuroExchangeRate,
			rec.ProjectLocation,
			rec.ProjectStartDate,
			rec.ProjectEndDate,
			rec.Category,
		)
		if err != nil {
			return fmt.Errorf("failed to insert project %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit load: %w", err)
	}
	return nil
}
