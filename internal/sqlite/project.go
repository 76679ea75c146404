package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mgolik/eufunds/internal/domain/project"
	"github.com/mgolik/eufunds/internal/repository"
)

const selectColumns = `
	id, project_name, project_summary, contract_number, beneficiary_name,
	fund, specific_objective, program, priority, measure,
	type, type_of_intervention, total_project_value_pln,
	union_co_financing_rate, eu_co_financing_pln, euro_exchange_rate,
	project_location, project_start_date, project_end_date, category
`

// txRepository implements repository.ProjectRepository inside one read
// scope's transaction.
type txRepository struct {
	tx *sql.Tx
}

func (r *txRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	query := `SELECT ` + selectColumns + ` FROM projects WHERE id = ?`

	row := r.tx.QueryRowContext(ctx, query, id)
	rec, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return rec, nil
}

func (r *txRepository) List(ctx context.Context, opts repository.ListOptions) ([]project.Project, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM projects
		WHERE contains_fold(type, ?) AND contains_fold(project_location, ?)
		ORDER BY rowid
		LIMIT ? OFFSET ?
	`

	rows, err := r.tx.QueryContext(ctx, query, opts.Type, opts.Location, opts.Limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return collectProjects(rows)
}

func (r *txRepository) Count(ctx context.Context, opts repository.ListOptions) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM projects
		WHERE contains_fold(type, ?) AND contains_fold(project_location, ?)
	`

	var count int
	if err := r.tx.QueryRowContext(ctx, query, opts.Type, opts.Location).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}

func (r *txRepository) ListAll(ctx context.Context) ([]project.Project, error) {
	query := `SELECT ` + selectColumns + ` FROM projects ORDER BY rowid`

	rows, err := r.tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all projects: %w", err)
	}
	return collectProjects(rows)
}

func (r *txRepository) ListByStartDate(ctx context.Context) ([]project.Project, error) {
	// rowid breaks start-date ties so the order is stable across reads.
	query := `SELECT ` + selectColumns + ` FROM projects ORDER BY project_start_date, rowid`

	rows, err := r.tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects by start date: %w", err)
	}
	return collectProjects(rows)
}

func (r *txRepository) ListByDateWindow(ctx context.Context, start, end project.Date) ([]project.Project, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM projects
		WHERE project_start_date >= ? AND project_end_date <= ?
		ORDER BY rowid
	`

	rows, err := r.tx.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects in window: %w", err)
	}
	return collectProjects(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*project.Project, error) {
	var rec project.Project
	err := row.Scan(
		&rec.ID,
		&rec.ProjectName,
		&rec.ProjectSummary,
		&rec.ContractNumber,
		&rec.BeneficiaryName,
		&rec.Fund,
		&rec.SpecificObjective,
		&rec.Program,
		&rec.Priority,
		&rec.Measure,
		&rec.Type,
		&rec.TypeOfIntervention,
		&rec.TotalProjectValuePLN,
		&rec.UnionCoFinancingRate,
		&rec.EuCoFinancingPLN,
		&rec.EuroExchangeRate,
		&rec.ProjectLocation,
		&rec.ProjectStartDate,
		&rec.ProjectEndDate,
		&rec.Category,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func collectProjects(rows *sql.Rows) ([]project.Project, error) {
	defer rows.Close()

	var records []project.Project
	for rows.Next() {
		rec, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return records, nil
}
