package repository

import (
	"context"

	"github.com/mgolik/eufunds/internal/domain/project"
)

// ListOptions provides filtering and pagination for listing projects.
// Type and Location are case-insensitive substring patterns; an empty
// pattern matches every record.
type ListOptions struct {
	Type     string
	Location string
	Limit    int
	Offset   int
}

// ProjectRepository is the read surface of the record store. The engine
// never writes through it; record lifecycle belongs to the store.
type ProjectRepository interface {
	// Get retrieves a single project by identifier.
	Get(ctx context.Context, id string) (*project.Project, error)
	// List returns one page of projects matching opts, in natural
	// retrieval order.
	List(ctx context.Context, opts ListOptions) ([]project.Project, error)
	// Count returns the total number of projects matching the same
	// predicate List applies.
	Count(ctx context.Context, opts ListOptions) (int, error)
	// ListAll returns every project in natural retrieval order.
	ListAll(ctx context.Context) ([]project.Project, error)
	// ListByStartDate returns every project ordered by start date
	// ascending, with ties in natural retrieval order.
	ListByStartDate(ctx context.Context) ([]project.Project, error)
	// ListByDateWindow returns projects whose start date is on or after
	// start and whose end date is on or before end.
	ListByDateWindow(ctx context.Context, start, end project.Date) ([]project.Project, error)
}

// Store opens atomic read scopes against the record store. A scope sees
// one consistent snapshot across every read issued inside fn; it commits
// when fn returns nil and rolls back when fn fails.
type Store interface {
	View(ctx context.Context, fn func(ProjectRepository) error) error
}
