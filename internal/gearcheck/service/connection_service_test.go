package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Acearia/gearcheck/internal/gearcheck/entity"
	"github.com/Acearia/gearcheck/internal/gearcheck/repository"
	"github.com/Acearia/gearcheck/internal/gearcheck/store"
	"go.uber.org/zap"
)

func newConnection(t *testing.T) *ConnectionService {
	t.Helper()
	repos := repository.NewRepositories(store.NewMemoryStore(), zap.NewNop())
	return NewConnectionService(repos.Connection)
}

func TestConnectionStatusUnconfigured(t *testing.T) {
	svc := newConnection(t)
	if got := svc.Status(context.Background()); got != ConnectionNotConfigured {
		t.Errorf("expected %s, got %s", ConnectionNotConfigured, got)
	}
}

func TestConnectionSaveValidatesRequiredFields(t *testing.T) {
	svc := newConnection(t)
	ctx := context.Background()

	err := svc.Save(ctx, &entity.ConnectionConfig{Host: "db.local", Port: "5432"})
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error for missing fields, got %v", err)
	}

	err = svc.Save(ctx, &entity.ConnectionConfig{
		Host: "db.local", Port: "5432", Database: "gearcheck", User: "app", SimulateLatencyMS: -1,
	})
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error for negative latency, got %v", err)
	}
}

func TestConnectionSaveAndGetBlanksPassword(t *testing.T) {
	svc := newConnection(t)
	ctx := context.Background()

	err := svc.Save(ctx, &entity.ConnectionConfig{
		Host: "db.local", Port: "5432", Database: "gearcheck", User: "app", Password: "segredo",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := svc.Status(ctx); got != ConnectionConfigured {
		t.Errorf("expected %s, got %s", ConnectionConfigured, got)
	}

	cfg, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cfg.Password != "" {
		t.Error("password must never be returned")
	}
	if cfg.Host != "db.local" {
		t.Errorf("unexpected host %q", cfg.Host)
	}
}
