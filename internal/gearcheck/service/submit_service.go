package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Acearia/gearcheck/internal/gearcheck/entity"
	"github.com/Acearia/gearcheck/internal/gearcheck/repository"
	"github.com/Acearia/gearcheck/internal/gearcheck/sse"
	"github.com/Acearia/gearcheck/internal/notify"
	"go.uber.org/zap"
)

// SubmitResult 提交结果
type SubmitResult struct {
	Record          *entity.InspectionRecord `json:"record"`
	NotifiedLeaders []string                 `json:"notified_leaders"`
	RedirectTo      string                   `json:"redirect_to"`
}

// SubmitService 提交终结器：组装检查记录、写入检查日志、清除草稿
type SubmitService struct {
	drafts      *repository.DraftRepository
	inspections *repository.InspectionRepository
	leaders     *repository.LeaderRepository
	connection  *repository.ConnectionRepository
	wizard      *WizardService
	hub         *sse.Hub
	notifier    *notify.WebhookNotifier
	logger      *zap.Logger
}

func NewSubmitService(
	repos *repository.Repositories,
	wizard *WizardService,
	hub *sse.Hub,
	notifier *notify.WebhookNotifier,
	logger *zap.Logger,
) *SubmitService {
	return &SubmitService{
		drafts:      repos.Draft,
		inspections: repos.Inspections,
		leaders:     repos.Leaders,
		connection:  repos.Connection,
		wizard:      wizard,
		hub:         hub,
		notifier:    notifier,
		logger:      logger,
	}
}

// Submit 终结当前草稿。
// 任何持久化失败都会原样保留草稿，用户可以重试提交。
func (s *SubmitService) Submit(ctx context.Context, signature string) (*SubmitResult, error) {
	draft := s.drafts.Get(ctx)
	if redirect, blocked := FirstIncomplete(draft, StepSubmit); blocked {
		return nil, validationErr("Etapa \"" + string(redirect) + "\" incompleta, revise o checklist antes de enviar")
	}
	if signature == "" {
		signature = draft.Signature
	}
	if signature == "" {
		return nil, validationErr("Assinatura obrigatória para enviar o checklist")
	}
	// 校验全部通过后才落盘签名，失败的提交不改动草稿
	if signature != draft.Signature {
		if err := s.wizard.SaveSignature(ctx, signature); err != nil {
			return nil, err
		}
		draft.Signature = signature
	}

	// 原应用的"模拟网络延迟"演示行为，有配置才生效
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	now := time.Now()
	record := &entity.InspectionRecord{
		ID:             strconv.FormatInt(now.UnixMilli(), 10),
		Operator:       *draft.Operator,
		Equipment:      *draft.Equipment,
		Checklist:      draft.Checklist,
		Photos:         draft.Photos,
		Comments:       draft.Comments,
		Signature:      draft.Signature,
		InspectionDate: draft.InspectionDate,
		SubmissionDate: now,
	}

	if err := s.inspections.Prepend(ctx, record); err != nil {
		return nil, fmt.Errorf("persist inspection record: %w", err)
	}

	notified := s.notifyLeaders(ctx, record)

	if err := s.drafts.Clear(ctx); err != nil {
		// 记录已写入但草稿还在；报错让用户知晓，重试提交会生成重复记录前先人工处理
		return nil, fmt.Errorf("clear draft after submit: %w", err)
	}

	if s.hub != nil {
		s.hub.PublishInspectionSubmitted(record.ID, record.Equipment.Name, record.Equipment.Sector)
	}

	redirectTo := "/"
	if draft.Operator.Setor != "" {
		redirectTo = "/leader"
	}

	return &SubmitResult{
		Record:          record,
		NotifiedLeaders: notified,
		RedirectTo:      redirectTo,
	}, nil
}

// notifyLeaders 查找设备区域的负责人；webhook可选且尽力而为，失败不阻断提交
func (s *SubmitService) notifyLeaders(ctx context.Context, record *entity.InspectionRecord) []string {
	leaders := s.leaders.FindBySector(ctx, record.Equipment.Sector)
	if len(leaders) == 0 {
		return []string{}
	}

	names := make([]string, len(leaders))
	for i, leader := range leaders {
		names[i] = leader.Name
	}

	if s.notifier != nil {
		err := s.notifier.NotifyLeaders(ctx, notify.LeaderNotification{
			InspectionID:  record.ID,
			OperatorName:  record.Operator.Name,
			EquipmentName: record.Equipment.Name,
			Sector:        record.Equipment.Sector,
			Leaders:       names,
			SubmittedAt:   record.SubmissionDate,
		})
		if err != nil {
			s.logger.Warn("Leader webhook notification failed", zap.Error(err))
		}
	}
	return names
}

func (s *SubmitService) simulateLatency(ctx context.Context) error {
	cfg, err := s.connection.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return nil // 配置读取失败不影响提交
	}
	if cfg.SimulateLatencyMS <= 0 {
		return nil
	}
	select {
	case <-time.After(time.Duration(cfg.SimulateLatencyMS) * time.Millisecond):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
