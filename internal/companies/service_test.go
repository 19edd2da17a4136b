package companies

import (
	"context"
	"errors"
	"testing"

	"resume-screener/internal/analysis"
)

func TestServiceUpsertMintsID(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	company, err := svc.Upsert(context.Background(), Company{
		Name:         "  Acme  ",
		Requirements: analysis.Profile{Skills: []string{"python"}},
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if company.ID == "" {
		t.Fatal("expected minted ID")
	}
	if company.Name != "Acme" {
		t.Fatalf("name not trimmed: %q", company.Name)
	}
	if company.CreatedAt.IsZero() || company.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}

	stored, err := svc.Get(context.Background(), company.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.ID != company.ID {
		t.Fatalf("stored ID mismatch: %q vs %q", stored.ID, company.ID)
	}
}

func TestServiceUpsertRejectsBadProfiles(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	tests := []struct {
		name    string
		profile analysis.Profile
	}{
		{name: "no skills", profile: analysis.Profile{}},
		{name: "blank skill", profile: analysis.Profile{Skills: []string{" "}}},
		{name: "negative years", profile: analysis.Profile{Skills: []string{"go"}, ExperienceYears: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upsert(context.Background(), Company{Requirements: tt.profile})
			if !errors.Is(err, ErrInvalidProfile) {
				t.Fatalf("expected ErrInvalidProfile, got %v", err)
			}
		})
	}
}

func TestServiceGetBlankID(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	if _, err := svc.Get(context.Background(), "  "); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
