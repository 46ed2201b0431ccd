package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Acearia/gearcheck/internal/gearcheck/entity"
	"github.com/Acearia/gearcheck/internal/gearcheck/repository"
	"github.com/Acearia/gearcheck/internal/gearcheck/sse"
	"github.com/Acearia/gearcheck/internal/gearcheck/store"
	"go.uber.org/zap"
)

func newSubmitEnv(t *testing.T) (*SubmitService, *WizardService, *repository.Repositories) {
	t.Helper()
	repos := repository.NewRepositories(store.NewMemoryStore(), zap.NewNop())
	wizard := NewWizardService(repos.Draft, repos.Operators, repos.Equipment)
	submit := NewSubmitService(repos, wizard, sse.NewHub(), nil, zap.NewNop())
	return submit, wizard, repos
}

func fillDraft(t *testing.T, wizard *WizardService, operatorID string) {
	t.Helper()
	ctx := context.Background()
	if _, err := wizard.Advance(ctx, StepOperator, &StepPayload{OperatorID: operatorID}); err != nil {
		t.Fatalf("operator step: %v", err)
	}
	if _, err := wizard.Advance(ctx, StepEquipment, &StepPayload{EquipmentID: "2"}); err != nil {
		t.Fatalf("equipment step: %v", err)
	}
	if _, err := wizard.Advance(ctx, StepItems, &StepPayload{Checklist: answeredChecklist(entity.AnswerYes)}); err != nil {
		t.Fatalf("items step: %v", err)
	}
}

func TestSubmitRequiresCompleteDraft(t *testing.T) {
	submit, _, repos := newSubmitEnv(t)
	ctx := context.Background()

	_, err := submit.Submit(ctx, "data:image/png;base64,x")
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error on empty draft, got %v", err)
	}
	if len(repos.Inspections.List(ctx)) != 0 {
		t.Error("failed submit must not create a record")
	}
}

func TestSubmitRequiresSignature(t *testing.T) {
	submit, wizard, repos := newSubmitEnv(t)
	ctx := context.Background()
	fillDraft(t, wizard, "1")

	_, err := submit.Submit(ctx, "")
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error without signature, got %v", err)
	}
	if len(repos.Inspections.List(ctx)) != 0 {
		t.Error("unsigned submit must not create a record")
	}

	// draft must survive the failed submit
	draft := repos.Draft.Get(ctx)
	if draft.Operator == nil || draft.Equipment == nil {
		t.Error("draft must be kept after a failed submit")
	}
}

func TestSubmitSuccess(t *testing.T) {
	submit, wizard, repos := newSubmitEnv(t)
	ctx := context.Background()
	fillDraft(t, wizard, "3") // PAULO HENRIQUE SOUZA, Setor Produção

	result, err := submit.Submit(ctx, "data:image/png;base64,assinatura")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Record == nil || result.Record.ID == "" {
		t.Fatal("submit must return the created record")
	}
	if result.Record.Equipment.Sector != "Produção" {
		t.Errorf("unexpected sector %q", result.Record.Equipment.Sector)
	}
	if result.RedirectTo != "/leader" {
		t.Errorf("operator with a sector must redirect to /leader, got %q", result.RedirectTo)
	}
	if len(result.NotifiedLeaders) == 0 {
		t.Error("expected leaders notified for sector Produção")
	}

	// record is at the head of the log and the draft is gone
	records := repos.Inspections.List(ctx)
	if len(records) != 1 || records[0].ID != result.Record.ID {
		t.Fatalf("record must be at the head of the log, got %d records", len(records))
	}
	if repos.Draft.Get(ctx).Operator != nil {
		t.Error("draft must be cleared after a successful submit")
	}
}

func TestSubmitRedirectsHomeWithoutSector(t *testing.T) {
	submit, wizard, repos := newSubmitEnv(t)
	ctx := context.Background()

	operators := repos.Operators.List(ctx)
	operators = append(operators, entity.Operator{ID: "99", Name: "VISITANTE SEM SETOR"})
	if err := repos.Operators.Replace(ctx, operators); err != nil {
		t.Fatalf("replace operators: %v", err)
	}
	fillDraft(t, wizard, "99")

	result, err := submit.Submit(ctx, "data:image/png;base64,x")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.RedirectTo != "/" {
		t.Errorf("operator without a sector must redirect home, got %q", result.RedirectTo)
	}
}

func TestSubmitRejectedLeavesDraftUntouched(t *testing.T) {
	submit, _, repos := newSubmitEnv(t)
	ctx := context.Background()

	_, err := submit.Submit(ctx, "data:image/png;base64,x")
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error on empty draft, got %v", err)
	}
	if repos.Draft.Get(ctx).Signature != "" {
		t.Error("rejected submit must not persist the signature")
	}
}

// failingStore 指定键写入失败，其余委托内存存储
type failingStore struct {
	*store.MemoryStore
	failKey string
}

func (f *failingStore) Set(ctx context.Context, key, value string) error {
	if key == f.failKey {
		return errors.New("storage unavailable")
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func TestSubmitKeepsDraftWhenLogWriteFails(t *testing.T) {
	kv := &failingStore{MemoryStore: store.NewMemoryStore(), failKey: repository.KeyInspections}
	repos := repository.NewRepositories(kv, zap.NewNop())
	wizard := NewWizardService(repos.Draft, repos.Operators, repos.Equipment)
	submit := NewSubmitService(repos, wizard, sse.NewHub(), nil, zap.NewNop())
	ctx := context.Background()
	fillDraft(t, wizard, "1")

	_, err := submit.Submit(ctx, "data:image/png;base64,x")
	if err == nil {
		t.Fatal("expected an error when the inspection log write fails")
	}
	var validation *ValidationError
	if errors.As(err, &validation) {
		t.Fatalf("expected a storage error, got validation: %v", err)
	}

	// 日志写入失败后草稿必须完整保留，用户可以重试
	draft := repos.Draft.Get(ctx)
	if draft.Operator == nil || draft.Equipment == nil || draft.Signature == "" {
		t.Error("draft must survive a failed log write")
	}
	if len(repos.Inspections.List(ctx)) != 0 {
		t.Error("no record may exist after a failed log write")
	}
}

func TestSubmitSavesSignatureFromPayload(t *testing.T) {
	submit, wizard, repos := newSubmitEnv(t)
	ctx := context.Background()
	fillDraft(t, wizard, "1")

	sig := "data:image/png;base64,última"
	result, err := submit.Submit(ctx, sig)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Record.Signature != sig {
		t.Errorf("record must carry the submitted signature, got %q", result.Record.Signature)
	}
	if len(repos.Inspections.List(ctx)) != 1 {
		t.Error("expected exactly one record")
	}
}
