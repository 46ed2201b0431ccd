package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Acearia/gearcheck/internal/gearcheck/entity"
	"github.com/Acearia/gearcheck/internal/gearcheck/seed"
	"github.com/Acearia/gearcheck/internal/gearcheck/store"
	"go.uber.org/zap"
)

func TestOperatorCatalogSeedsOnEmptyStore(t *testing.T) {
	kv := store.NewMemoryStore()
	repo := NewOperatorCatalogRepository(kv, zap.NewNop())
	ctx := context.Background()

	operators := repo.List(ctx)
	if len(operators) != len(seed.DefaultOperators()) {
		t.Fatalf("expected %d seeded operators, got %d", len(seed.DefaultOperators()), len(operators))
	}

	// seed must be persisted so later reads see the same catalog
	if _, err := kv.Get(ctx, KeyOperators); err != nil {
		t.Error("seeded catalog was not persisted")
	}
}

func TestOperatorCatalogCorruptedValueReseeds(t *testing.T) {
	kv := store.NewMemoryStore()
	repo := NewOperatorCatalogRepository(kv, zap.NewNop())
	ctx := context.Background()

	kv.Set(ctx, KeyOperators, "{{corrupted")
	operators := repo.List(ctx)
	if len(operators) == 0 {
		t.Fatal("corrupted catalog must fall back to defaults, not fail")
	}
}

func TestOperatorCatalogFindByID(t *testing.T) {
	kv := store.NewMemoryStore()
	repo := NewOperatorCatalogRepository(kv, zap.NewNop())
	ctx := context.Background()

	operator, err := repo.FindByID(ctx, "1")
	if err != nil {
		t.Fatalf("find seeded operator: %v", err)
	}
	if operator.Name == "" {
		t.Error("operator name missing")
	}

	if _, err := repo.FindByID(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestOperatorCatalogReplaceIsWholesale(t *testing.T) {
	kv := store.NewMemoryStore()
	repo := NewOperatorCatalogRepository(kv, zap.NewNop())
	ctx := context.Background()

	repo.List(ctx) // seed
	replacement := []entity.Operator{{ID: "9001", Name: "CARLOS SOUZA", Cargo: "Operador", Setor: "Manutenção"}}
	if err := repo.Replace(ctx, replacement); err != nil {
		t.Fatalf("replace: %v", err)
	}

	operators := repo.List(ctx)
	if len(operators) != 1 || operators[0].ID != "9001" {
		t.Fatalf("replace must overwrite the whole catalog, got %d entries", len(operators))
	}
}

func TestEquipmentCatalogSeedsOnEmptyStore(t *testing.T) {
	kv := store.NewMemoryStore()
	repo := NewEquipmentCatalogRepository(kv, zap.NewNop())
	ctx := context.Background()

	equipment := repo.List(ctx)
	if len(equipment) != len(seed.DefaultEquipment()) {
		t.Fatalf("expected %d seeded equipment, got %d", len(seed.DefaultEquipment()), len(equipment))
	}

	item, err := repo.FindByID(ctx, "2")
	if err != nil {
		t.Fatalf("find equipment 2: %v", err)
	}
	if item.KP != "5678" || item.Sector != "Produção" {
		t.Errorf("unexpected seeded equipment: kp=%s sector=%s", item.KP, item.Sector)
	}
}

func TestLeaderCatalogFindBySector(t *testing.T) {
	kv := store.NewMemoryStore()
	repo := NewLeaderRepository(kv, zap.NewNop())
	ctx := context.Background()

	leaders := repo.FindBySector(ctx, "Produção")
	if len(leaders) == 0 {
		t.Fatal("expected at least one leader for Produção")
	}
	for _, leader := range leaders {
		if leader.Setor != "Produção" {
			t.Errorf("leader %s belongs to %s", leader.Name, leader.Setor)
		}
	}

	if got := repo.FindBySector(ctx, "Inexistente"); len(got) != 0 {
		t.Errorf("expected no leaders for unknown sector, got %d", len(got))
	}
}
