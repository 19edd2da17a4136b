package candidates

import "context"

// Repo defines persistence operations for candidates.
type Repo interface {
	Upsert(ctx context.Context, candidate Candidate) error
	GetByID(ctx context.Context, id string) (Candidate, error)
	List(ctx context.Context, limit, offset int) ([]Candidate, error)
}
