package candidates

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts or replaces a candidate row.
func (r *PGRepo) Upsert(ctx context.Context, candidate Candidate) error {
	const query = `
INSERT INTO candidates (id, name, resume_text, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET
  name = EXCLUDED.name,
  resume_text = EXCLUDED.resume_text,
  updated_at = EXCLUDED.updated_at`

	_, err := r.DB.ExecContext(ctx, query,
		candidate.ID,
		candidate.Name,
		candidate.ResumeText,
		candidate.CreatedAt,
		candidate.UpdatedAt,
	)
	return err
}

// GetByID returns a candidate by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Candidate, error) {
	const query = `
SELECT id, name, resume_text, created_at, updated_at
FROM candidates
WHERE id = $1
LIMIT 1`

	var candidate Candidate
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&candidate.ID,
		&candidate.Name,
		&candidate.ResumeText,
		&candidate.CreatedAt,
		&candidate.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Candidate{}, ErrNotFound
		}
		return Candidate{}, err
	}
	return candidate, nil
}

// List returns candidates newest first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Candidate, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, name, resume_text, created_at, updated_at
FROM candidates
ORDER BY created_at DESC, id ASC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Candidate
	for rows.Next() {
		var candidate Candidate
		if err := rows.Scan(
			&candidate.ID,
			&candidate.Name,
			&candidate.ResumeText,
			&candidate.CreatedAt,
			&candidate.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, candidate)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
