package candidates

import (
	"context"
	"errors"
	"testing"
)

func TestServiceUpsertRequiresResumeText(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	if _, err := svc.Upsert(context.Background(), Candidate{Name: "Jane"}); !errors.Is(err, ErrInvalidCandidate) {
		t.Fatalf("expected ErrInvalidCandidate, got %v", err)
	}
	if _, err := svc.Upsert(context.Background(), Candidate{ResumeText: "   "}); !errors.Is(err, ErrInvalidCandidate) {
		t.Fatalf("expected ErrInvalidCandidate for blank text, got %v", err)
	}
}

func TestServiceUpsertAndGetRoundTrip(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	created, err := svc.Upsert(context.Background(), Candidate{
		Name:       "Jane",
		ResumeText: "Built Go services.",
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected minted ID")
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ResumeText != "Built Go services." {
		t.Fatalf("unexpected resume text %q", got.ResumeText)
	}

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceUpsertKeepsCallerID(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	created, err := svc.Upsert(context.Background(), Candidate{
		ID:         "candidate-7",
		ResumeText: "Python developer.",
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if created.ID != "candidate-7" {
		t.Fatalf("caller ID replaced: %q", created.ID)
	}
}
