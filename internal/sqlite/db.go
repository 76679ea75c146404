package sqlite

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	sqlite3 "modernc.org/sqlite"

	"github.com/mgolik/eufunds/internal/domain/project"
)

func init() {
	// contains_fold backs the case-insensitive substring filters. SQLite's
	// own LIKE/lower() only fold ASCII; the registry data is Polish.
	sqlite3.MustRegisterDeterministicScalarFunction("contains_fold", 2,
		func(_ *sqlite3.FunctionContext, args []driver.Value) (driver.Value, error) {
			hay, err := textArg(args[0])
			if err != nil {
				return nil, err
			}
			needle, err := textArg(args[1])
			if err != nil {
				return nil, err
			}
			if project.ContainsFold(hay, needle) {
				return int64(1), nil
			}
			return int64(0), nil
		})
}

func textArg(v driver.Value) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("contains_fold: expected text argument, got %T", v)
	}
}

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema. Financial fields are TEXT on purpose:
// the registry publishes them as text and the engine parses on read.
// Dates are ISO YYYY-MM-DD TEXT so range predicates compare lexically.
func (db *DB) RunMigrations() error {
	migration := `
CREATE TABLE IF NOT EXISTS projects (
    id TEXT PRIMARY KEY,
    project_name TEXT NOT NULL,
    project_summary TEXT NOT NULL DEFAULT '',
    contract_number TEXT NOT NULL DEFAULT '',
    beneficiary_name TEXT NOT NULL DEFAULT '',
    fund TEXT NOT NULL DEFAULT '',
    specific_objective TEXT NOT NULL DEFAULT '',
    program TEXT NOT NULL DEFAULT '',
    priority TEXT NOT NULL DEFAULT '',
    measure TEXT NOT NULL DEFAULT '',
    type TEXT NOT NULL DEFAULT '',
    type_of_intervention TEXT NOT NULL DEFAULT '',
    total_project_value_pln TEXT NOT NULL DEFAULT '',
    union_co_financing_rate TEXT NOT NULL DEFAULT '',
    eu_co_financing_pln TEXT NOT NULL DEFAULT '',
    euro_exchange_rate TEXT NOT NULL DEFAULT '',
    project_location TEXT NOT NULL DEFAULT '',
    project_start_date TEXT NOT NULL,
    project_end_date TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_projects_type ON projects(type);
CREATE INDEX IF NOT EXISTS idx_projects_category ON projects(category);
CREATE INDEX IF NOT EXISTS idx_projects_start_date ON projects(project_start_date);
`

	if _, err := db.Exec(migration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
