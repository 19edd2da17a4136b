package companies

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-screener/internal/analysis"
)

// Service contains business logic for companies.
type Service struct {
	Repo Repo
}

// Upsert validates and stores a company, minting an ID when none is given.
func (s *Service) Upsert(ctx context.Context, company Company) (Company, error) {
	if err := validateRequirements(company.Requirements); err != nil {
		return Company{}, err
	}

	company.Name = strings.TrimSpace(company.Name)
	if strings.TrimSpace(company.ID) == "" {
		company.ID = uuid.NewString()
	}

	now := time.Now().UTC()
	company.CreatedAt = now
	company.UpdatedAt = now

	if err := s.Repo.Upsert(ctx, company); err != nil {
		return Company{}, err
	}
	return company, nil
}

// Get returns a company by ID.
func (s *Service) Get(ctx context.Context, id string) (Company, error) {
	if strings.TrimSpace(id) == "" {
		return Company{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns companies newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Company, error) {
	return s.Repo.List(ctx, limit, offset)
}

// validateRequirements rejects profiles without a usable skill set. A
// company exists to screen candidates, so it must require something.
func validateRequirements(p analysis.Profile) error {
	if len(p.Skills) == 0 {
		return fmt.Errorf("%w: at least one required skill", ErrInvalidProfile)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidProfile, err)
	}
	return nil
}
