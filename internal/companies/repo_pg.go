package companies

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resume-screener/internal/analysis"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts or replaces a company row.
func (r *PGRepo) Upsert(ctx context.Context, company Company) error {
	const query = `
INSERT INTO companies (id, name, requirements, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET
  name = EXCLUDED.name,
  requirements = EXCLUDED.requirements,
  updated_at = EXCLUDED.updated_at`

	requirements, err := json.Marshal(company.Requirements)
	if err != nil {
		return fmt.Errorf("marshal requirements: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query, company.ID, company.Name, requirements, company.CreatedAt, company.UpdatedAt)
	return err
}

// GetByID returns a company by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Company, error) {
	const query = `
SELECT id, name, requirements, created_at, updated_at
FROM companies
WHERE id = $1
LIMIT 1`

	var company Company
	var requirements []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&company.ID,
		&company.Name,
		&requirements,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Company{}, ErrNotFound
		}
		return Company{}, err
	}
	if err := unmarshalRequirements(requirements, &company.Requirements); err != nil {
		return Company{}, err
	}
	return company, nil
}

// List returns companies newest first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Company, error) {
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
SELECT id, name, requirements, created_at, updated_at
FROM companies
ORDER BY created_at DESC, id ASC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Company
	for rows.Next() {
		var company Company
		var requirements []byte
		if err := rows.Scan(
			&company.ID,
			&company.Name,
			&requirements,
			&company.CreatedAt,
			&company.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := unmarshalRequirements(requirements, &company.Requirements); err != nil {
			return nil, err
		}
		out = append(out, company)
	}
	return out, rows.Err()
}

func unmarshalRequirements(raw []byte, p *analysis.Profile) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, p); err != nil {
		return fmt.Errorf("unmarshal requirements: %w", err)
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
