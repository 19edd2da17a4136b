package companies

import "context"

// Repo defines persistence operations for companies.
type Repo interface {
	Upsert(ctx context.Context, company Company) error
	GetByID(ctx context.Context, id string) (Company, error)
	List(ctx context.Context, limit, offset int) ([]Company, error)
}
