package repository

import (
	"context"
	"testing"

	"github.com/Acearia/gearcheck/internal/gearcheck/entity"
	"github.com/Acearia/gearcheck/internal/gearcheck/store"
	"go.uber.org/zap"
)

func newDraftRepo() (*DraftRepository, *store.MemoryStore) {
	kv := store.NewMemoryStore()
	return NewDraftRepository(kv, zap.NewNop()), kv
}

func TestDraftGetDefault(t *testing.T) {
	repo, _ := newDraftRepo()
	draft := repo.Get(context.Background())

	if draft.Operator != nil || draft.Equipment != nil {
		t.Error("default draft must not carry operator or equipment")
	}
	if draft.Checklist == nil || draft.Photos == nil {
		t.Error("default draft sequences must be non-nil")
	}
	if draft.InspectionDate == "" {
		t.Error("default draft must carry today's inspection date")
	}
}

func TestDraftGetCorruptedValue(t *testing.T) {
	repo, kv := newDraftRepo()
	ctx := context.Background()
	kv.Set(ctx, KeyDraft, "not json")

	draft := repo.Get(ctx)
	if draft == nil {
		t.Fatal("corrupted draft must fall back to default, not fail")
	}
	if draft.Operator != nil {
		t.Error("corrupted draft must reset to default")
	}
}

func TestDraftSaveMergesPatch(t *testing.T) {
	repo, _ := newDraftRepo()
	ctx := context.Background()

	operator := &entity.Operator{ID: "1", Name: "JOSÉ CARLOS DA SILVA", Setor: "Aciaria"}
	if _, err := repo.Save(ctx, DraftPatch{Operator: operator}); err != nil {
		t.Fatalf("save operator: %v", err)
	}

	comments := "freio com ruído"
	if _, err := repo.Save(ctx, DraftPatch{Comments: &comments}); err != nil {
		t.Fatalf("save comments: %v", err)
	}

	draft := repo.Get(ctx)
	if draft.Operator == nil || draft.Operator.ID != "1" {
		t.Error("operator must survive a later patch that does not touch it")
	}
	if draft.Comments != comments {
		t.Errorf("expected comments %q, got %q", comments, draft.Comments)
	}
}

func TestDraftReplaceChecklist(t *testing.T) {
	repo, _ := newDraftRepo()
	ctx := context.Background()

	items := entity.DefaultChecklist()
	items[0].Answer = entity.AnswerYes
	if _, err := repo.ReplaceChecklist(ctx, items); err != nil {
		t.Fatalf("replace checklist: %v", err)
	}

	draft := repo.Get(ctx)
	if len(draft.Checklist) != entity.ChecklistItemCount {
		t.Fatalf("expected %d items, got %d", entity.ChecklistItemCount, len(draft.Checklist))
	}
	if draft.Checklist[0].Answer != entity.AnswerYes {
		t.Error("answer lost after replace")
	}
}

func TestDraftClear(t *testing.T) {
	repo, _ := newDraftRepo()
	ctx := context.Background()

	operator := &entity.Operator{ID: "1", Name: "JOSÉ CARLOS DA SILVA"}
	if _, err := repo.Save(ctx, DraftPatch{Operator: operator}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	draft := repo.Get(ctx)
	if draft.Operator != nil {
		t.Error("cleared draft must return to default")
	}
}
