package companies

import (
	"context"
	"errors"
	"testing"
	"time"

	"resume-screener/internal/analysis"
)

func TestMemoryRepoUpsertAndGet(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	company := Company{
		ID:   "company-1",
		Name: "Acme",
		Requirements: analysis.Profile{
			Skills:          []string{"python", "react"},
			ExperienceYears: 3,
			Education:       []string{"computer science"},
		},
		CreatedAt: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := repo.Upsert(ctx, company); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := repo.GetByID(ctx, "company-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Acme" || len(got.Requirements.Skills) != 2 {
		t.Fatalf("unexpected company: %+v", got)
	}

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepoUpsertPreservesCreatedAt(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	first := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	if err := repo.Upsert(ctx, Company{ID: "c1", Name: "Old", CreatedAt: first, UpdatedAt: first}); err != nil {
		t.Fatalf("first Upsert: %v", err)
	}
	if err := repo.Upsert(ctx, Company{ID: "c1", Name: "New", CreatedAt: second, UpdatedAt: second}); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	got, err := repo.GetByID(ctx, "c1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "New" {
		t.Fatalf("expected updated name, got %q", got.Name)
	}
	if !got.CreatedAt.Equal(first) {
		t.Fatalf("CreatedAt changed on update: %s", got.CreatedAt)
	}
	if !got.UpdatedAt.Equal(second) {
		t.Fatalf("UpdatedAt not advanced: %s", got.UpdatedAt)
	}
}

func TestMemoryRepoListNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		company := Company{ID: id, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		if err := repo.Upsert(ctx, company); err != nil {
			t.Fatalf("Upsert %s: %v", id, err)
		}
	}

	list, err := repo.List(ctx, 2, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != "c" || list[1].ID != "b" {
		t.Fatalf("unexpected list order: %+v", list)
	}

	rest, err := repo.List(ctx, 2, 2)
	if err != nil {
		t.Fatalf("List offset: %v", err)
	}
	if len(rest) != 1 || rest[0].ID != "a" {
		t.Fatalf("unexpected offset page: %+v", rest)
	}

	empty, err := repo.List(ctx, 10, 99)
	if err != nil {
		t.Fatalf("List past end: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty page, got %+v", empty)
	}
}

func TestMemoryRepoHonorsContextCancel(t *testing.T) {
	repo := NewMemoryRepo()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := repo.Upsert(ctx, Company{ID: "c1"}); err == nil {
		t.Fatal("expected context error on Upsert")
	}
	if _, err := repo.GetByID(ctx, "c1"); err == nil {
		t.Fatal("expected context error on GetByID")
	}
}
