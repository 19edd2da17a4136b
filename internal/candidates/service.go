package candidates

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for candidates.
type Service struct {
	Repo Repo
}

// Upsert validates and stores a candidate, minting an ID when none is given.
func (s *Service) Upsert(ctx context.Context, candidate Candidate) (Candidate, error) {
	if strings.TrimSpace(candidate.ResumeText) == "" {
		return Candidate{}, fmt.Errorf("%w: resume text is required", ErrInvalidCandidate)
	}

	candidate.Name = strings.TrimSpace(candidate.Name)
	if strings.TrimSpace(candidate.ID) == "" {
		candidate.ID = uuid.NewString()
	}

	now := time.Now().UTC()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	if err := s.Repo.Upsert(ctx, candidate); err != nil {
		return Candidate{}, err
	}
	return candidate, nil
}

// Get returns a candidate by ID.
func (s *Service) Get(ctx context.Context, id string) (Candidate, error) {
	if strings.TrimSpace(id) == "" {
		return Candidate{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns candidates newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Candidate, error) {
	return s.Repo.List(ctx, limit, offset)
}
