package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Acearia/gearcheck/internal/gearcheck/repository"
	"github.com/Acearia/gearcheck/internal/gearcheck/store"
	"go.uber.org/zap"
)

func newCatalog(t *testing.T) *CatalogService {
	t.Helper()
	repos := repository.NewRepositories(store.NewMemoryStore(), zap.NewNop())
	return NewCatalogService(repos.Operators, repos.Equipment)
}

func TestCreateOperatorAssignsNextID(t *testing.T) {
	svc := newCatalog(t)
	ctx := context.Background()

	before := svc.ListOperators(ctx)
	operator, err := svc.CreateOperator(ctx, &CreateOperatorRequest{Name: "joão batista", Cargo: "Operador", Setor: "Aciaria"})
	if err != nil {
		t.Fatalf("create operator: %v", err)
	}
	if operator.Name != "JOÃO BATISTA" {
		t.Errorf("name must be uppercased, got %q", operator.Name)
	}
	if operator.ID != "9" { // seed catalog goes up to 8
		t.Errorf("expected id 9, got %s", operator.ID)
	}
	if got := len(svc.ListOperators(ctx)); got != len(before)+1 {
		t.Errorf("expected %d operators, got %d", len(before)+1, got)
	}
}

func TestCreateOperatorRequiresName(t *testing.T) {
	svc := newCatalog(t)
	_, err := svc.CreateOperator(context.Background(), &CreateOperatorRequest{Name: "   "})
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBulkImportOperators(t *testing.T) {
	svc := newCatalog(t)
	ctx := context.Background()

	text := "9001\tCarlos Souza\tOperador\tManutenção\n9002\tAna Lima\t\t\n\n\tsem id\n"
	operators, err := svc.BulkImportOperators(ctx, text)
	if err != nil {
		t.Fatalf("bulk import: %v", err)
	}
	if len(operators) != 2 {
		t.Fatalf("expected 2 imported operators, got %d", len(operators))
	}
	if operators[0].Name != "CARLOS SOUZA" || operators[0].Setor != "Manutenção" {
		t.Errorf("unexpected first operator: %+v", operators[0])
	}
	if operators[1].Name != "ANA LIMA" || operators[1].Cargo != "" {
		t.Errorf("unexpected second operator: %+v", operators[1])
	}

	// import replaces the catalog wholesale
	if got := len(svc.ListOperators(ctx)); got != 2 {
		t.Errorf("expected catalog replaced with 2 operators, got %d", got)
	}
}

func TestBulkImportRejectsEmptyInput(t *testing.T) {
	svc := newCatalog(t)
	_, err := svc.BulkImportOperators(context.Background(), "\n\t\n")
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateOperatorNotFound(t *testing.T) {
	svc := newCatalog(t)
	_, err := svc.UpdateOperator(context.Background(), "999", &CreateOperatorRequest{Name: "X"})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteOperator(t *testing.T) {
	svc := newCatalog(t)
	ctx := context.Background()

	if err := svc.DeleteOperator(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	for _, op := range svc.ListOperators(ctx) {
		if op.ID == "1" {
			t.Fatal("operator 1 still present after delete")
		}
	}
	if err := svc.DeleteOperator(ctx, "1"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestCreateEquipmentValidatesType(t *testing.T) {
	svc := newCatalog(t)
	ctx := context.Background()

	_, err := svc.CreateEquipment(ctx, &CreateEquipmentRequest{Name: "Ponte Nova", Type: 7})
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	item, err := svc.CreateEquipment(ctx, &CreateEquipmentRequest{Name: "Ponte Nova", KP: "9999", Type: 1, Sector: "Aciaria"})
	if err != nil {
		t.Fatalf("create equipment: %v", err)
	}
	if item.ID != "7" { // seed catalog goes up to 6
		t.Errorf("expected id 7, got %s", item.ID)
	}
}

func TestReinitializeOperators(t *testing.T) {
	svc := newCatalog(t)
	ctx := context.Background()

	if _, err := svc.BulkImportOperators(ctx, "1\tSó Um"); err != nil {
		t.Fatalf("import: %v", err)
	}
	operators, err := svc.ReinitializeOperators(ctx)
	if err != nil {
		t.Fatalf("reinitialize: %v", err)
	}
	if len(operators) != 8 {
		t.Errorf("expected default catalog restored, got %d operators", len(operators))
	}
}
