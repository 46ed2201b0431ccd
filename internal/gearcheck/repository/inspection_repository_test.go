package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Acearia/gearcheck/internal/gearcheck/entity"
	"github.com/Acearia/gearcheck/internal/gearcheck/store"
	"go.uber.org/zap"
)

func newInspectionRepo() *InspectionRepository {
	return NewInspectionRepository(store.NewMemoryStore(), zap.NewNop())
}

func record(id string, submitted time.Time) *entity.InspectionRecord {
	return &entity.InspectionRecord{
		ID:             id,
		Operator:       entity.Operator{ID: "1", Name: "JOSÉ CARLOS DA SILVA"},
		Equipment:      entity.Equipment{ID: "2", Name: "Ponte Rolante 02 - Produção", Sector: "Produção"},
		Checklist:      entity.DefaultChecklist(),
		SubmissionDate: submitted,
	}
}

func TestInspectionPrependKeepsNewestFirst(t *testing.T) {
	repo := newInspectionRepo()
	ctx := context.Background()

	now := time.Now()
	repo.Prepend(ctx, record("a", now.Add(-2*time.Hour)))
	repo.Prepend(ctx, record("b", now.Add(-time.Hour)))
	repo.Prepend(ctx, record("c", now))

	records := repo.List(ctx)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].ID != "c" || records[2].ID != "a" {
		t.Errorf("newest record must be first: got %s..%s", records[0].ID, records[2].ID)
	}
}

func TestInspectionFindByIDSearchesArchive(t *testing.T) {
	repo := newInspectionRepo()
	ctx := context.Background()

	old := record("old", time.Now().Add(-60*24*time.Hour))
	repo.Prepend(ctx, old)
	repo.Prepend(ctx, record("fresh", time.Now()))

	moved, err := repo.ArchiveOlderThan(ctx, time.Now().Add(-30*24*time.Hour))
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if moved != 1 {
		t.Fatalf("expected 1 archived record, got %d", moved)
	}

	if len(repo.List(ctx)) != 1 {
		t.Error("archived record must leave the active list")
	}
	if len(repo.Archived(ctx)) != 1 {
		t.Error("archived record must appear in the archive")
	}

	found, err := repo.FindByID(ctx, "old")
	if err != nil {
		t.Fatalf("find archived record: %v", err)
	}
	if found.ID != "old" {
		t.Errorf("expected record old, got %s", found.ID)
	}

	if _, err := repo.FindByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestInspectionArchiveNothingToMove(t *testing.T) {
	repo := newInspectionRepo()
	ctx := context.Background()

	repo.Prepend(ctx, record("fresh", time.Now()))
	moved, err := repo.ArchiveOlderThan(ctx, time.Now().Add(-30*24*time.Hour))
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if moved != 0 {
		t.Errorf("expected nothing archived, got %d", moved)
	}
	if len(repo.List(ctx)) != 1 {
		t.Error("active list must be untouched")
	}
}
