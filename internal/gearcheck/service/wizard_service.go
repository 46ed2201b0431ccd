package service

import (
	"context"
	"fmt"

	"github.com/Acearia/gearcheck/internal/gearcheck/entity"
	"github.com/Acearia/gearcheck/internal/gearcheck/repository"
	"github.com/google/uuid"
)

// Step 向导步骤
type Step string

// 五个步骤，严格线性，不可跳跃
const (
	StepOperator  Step = "operator"
	StepEquipment Step = "equipment"
	StepItems     Step = "items"
	StepMedia     Step = "media"
	StepSubmit    Step = "submit"
)

// stepOrder 步骤顺序表：进入任一步骤前，按表序重新校验所有前置步骤
var stepOrder = []Step{StepOperator, StepEquipment, StepItems, StepMedia, StepSubmit}

// ParseStep 解析步骤名
func ParseStep(name string) (Step, bool) {
	for _, step := range stepOrder {
		if string(step) == name {
			return step, true
		}
	}
	return "", false
}

// StepComplete 步骤完备性判定（纯函数，每次调用从草稿重新推导，无缓存）
func StepComplete(draft *entity.ChecklistDraft, step Step) bool {
	switch step {
	case StepOperator:
		return draft.Operator != nil
	case StepEquipment:
		return draft.Equipment != nil
	case StepItems:
		if len(draft.Checklist) == 0 {
			return false
		}
		for _, item := range draft.Checklist {
			if item.Answer == entity.AnswerUnselected {
				return false
			}
		}
		return true
	case StepMedia:
		// 照片和备注都是可选的
		return true
	case StepSubmit:
		return draft.Signature != ""
	}
	return false
}

// FirstIncomplete 返回step之前第一个未完成的前置步骤
func FirstIncomplete(draft *entity.ChecklistDraft, step Step) (Step, bool) {
	for _, predecessor := range stepOrder {
		if predecessor == step {
			return "", false
		}
		if !StepComplete(draft, predecessor) {
			return predecessor, true
		}
	}
	return "", false
}

// StepPayload 步骤提交载荷（Next和Back共用）
type StepPayload struct {
	OperatorID     string                 `json:"operator_id"`
	EquipmentID    string                 `json:"equipment_id"`
	Checklist      []entity.ChecklistItem `json:"checklist"`
	Photos         []entity.Photo         `json:"photos"`
	Comments       *string                `json:"comments"`
	InspectionDate *string                `json:"inspection_date"`
}

// EquipmentDetails 设备步骤展示的派生只读字段
type EquipmentDetails struct {
	KP        string `json:"kp"`
	TypeLabel string `json:"type_label"`
	Sector    string `json:"sector"`
	Capacity  string `json:"capacity"`
}

// SubmitSummary 提交步骤的只读摘要
type SubmitSummary struct {
	OperatorName   string             `json:"operator_name"`
	EquipmentName  string             `json:"equipment_name"`
	InspectionDate string             `json:"inspection_date"`
	Tally          entity.AnswerTally `json:"tally"`
	PhotoCount     int                `json:"photo_count"`
	CommentExcerpt string             `json:"comment_excerpt"`
	HasSignature   bool               `json:"has_signature"`
}

// StepView 步骤视图；RedirectTo非空表示前置未完成，需回退
type StepView struct {
	Step             Step                   `json:"step"`
	RedirectTo       Step                   `json:"redirect_to,omitempty"`
	Draft            *entity.ChecklistDraft `json:"draft,omitempty"`
	Operators        []entity.Operator      `json:"operators,omitempty"`
	Equipment        []entity.Equipment     `json:"equipment,omitempty"`
	EquipmentDetails *EquipmentDetails      `json:"equipment_details,omitempty"`
	Checklist        []entity.ChecklistItem `json:"checklist,omitempty"`
	Summary          *SubmitSummary         `json:"summary,omitempty"`
}

// WizardService 检查向导：步骤门禁、步骤保存与导航
type WizardService struct {
	drafts    *repository.DraftRepository
	operators *repository.OperatorCatalogRepository
	equipment *repository.EquipmentCatalogRepository
}

func NewWizardService(
	drafts *repository.DraftRepository,
	operators *repository.OperatorCatalogRepository,
	equipment *repository.EquipmentCatalogRepository,
) *WizardService {
	return &WizardService{drafts: drafts, operators: operators, equipment: equipment}
}

// View 进入步骤：先过门禁，未通过时返回需回退的第一个未完成步骤
func (s *WizardService) View(ctx context.Context, step Step) *StepView {
	draft := s.drafts.Get(ctx)

	if redirect, blocked := FirstIncomplete(draft, step); blocked {
		return &StepView{Step: step, RedirectTo: redirect}
	}

	view := &StepView{Step: step, Draft: draft}
	switch step {
	case StepOperator:
		view.Operators = s.operators.List(ctx)
	case StepEquipment:
		view.Equipment = s.equipment.List(ctx)
		if draft.Equipment != nil {
			view.EquipmentDetails = &EquipmentDetails{
				KP:        draft.Equipment.KP,
				TypeLabel: draft.Equipment.TypeLabel(),
				Sector:    draft.Equipment.Sector,
				Capacity:  draft.Equipment.Capacity,
			}
		}
	case StepItems:
		// 模板合并：已答项套到标准模板的顺序上
		view.Checklist = entity.MergeChecklist(draft.Checklist)
	case StepSubmit:
		view.Summary = buildSummary(draft)
	}
	return view
}

// Advance 步骤"下一步"：校验本步骤，通过则保存贡献并返回后继步骤。
// 校验失败返回ValidationError，不保存任何数据。
func (s *WizardService) Advance(ctx context.Context, step Step, payload *StepPayload) (Step, error) {
	next, ok := successor(step)
	if !ok {
		return "", validationErr("A última etapa é concluída pelo envio do checklist")
	}

	switch step {
	case StepOperator:
		if payload.OperatorID == "" {
			return "", validationErr("Selecione um operador antes de continuar")
		}
		operator, err := s.operators.FindByID(ctx, payload.OperatorID)
		if err != nil {
			return "", validationErr("Operador não encontrado na lista")
		}
		if _, err := s.drafts.Save(ctx, repository.DraftPatch{
			Operator:       operator,
			InspectionDate: payload.InspectionDate,
		}); err != nil {
			return "", fmt.Errorf("save operator step: %w", err)
		}

	case StepEquipment:
		if payload.EquipmentID == "" {
			return "", validationErr("Selecione um equipamento antes de continuar")
		}
		equipment, err := s.equipment.FindByID(ctx, payload.EquipmentID)
		if err != nil {
			return "", validationErr("Equipamento não encontrado na lista")
		}
		if _, err := s.drafts.Save(ctx, repository.DraftPatch{Equipment: equipment}); err != nil {
			return "", fmt.Errorf("save equipment step: %w", err)
		}

	case StepItems:
		items, err := normalizeChecklist(payload.Checklist)
		if err != nil {
			return "", err
		}
		for _, item := range items {
			if item.Answer == entity.AnswerUnselected {
				return "", validationErr("Responda todos os itens do checklist antes de continuar")
			}
		}
		if _, err := s.drafts.ReplaceChecklist(ctx, items); err != nil {
			return "", fmt.Errorf("save checklist step: %w", err)
		}

	case StepMedia:
		if err := s.saveMedia(ctx, payload); err != nil {
			return "", err
		}
	}

	return next, nil
}

// Retreat 步骤"返回"：不校验，保存当前进度后返回前驱步骤
func (s *WizardService) Retreat(ctx context.Context, step Step, payload *StepPayload) (Step, error) {
	previous, ok := predecessor(step)
	if !ok {
		return "", validationErr("A etapa de operador é a primeira do checklist")
	}

	switch step {
	case StepEquipment:
		if payload.EquipmentID != "" {
			if equipment, err := s.equipment.FindByID(ctx, payload.EquipmentID); err == nil {
				if _, err := s.drafts.Save(ctx, repository.DraftPatch{Equipment: equipment}); err != nil {
					return "", fmt.Errorf("save equipment progress: %w", err)
				}
			}
		}
	case StepItems:
		if payload.Checklist != nil {
			items, err := normalizeChecklist(payload.Checklist)
			if err != nil {
				return "", err
			}
			if _, err := s.drafts.ReplaceChecklist(ctx, items); err != nil {
				return "", fmt.Errorf("save checklist progress: %w", err)
			}
		}
	case StepMedia:
		if err := s.saveMedia(ctx, payload); err != nil {
			return "", err
		}
	case StepSubmit:
		if payload.Comments != nil {
			if _, err := s.drafts.Save(ctx, repository.DraftPatch{Comments: payload.Comments}); err != nil {
				return "", fmt.Errorf("save submit progress: %w", err)
			}
		}
	}

	return previous, nil
}

// SaveSignature 记录签名（提交步骤的签名板回调）
func (s *WizardService) SaveSignature(ctx context.Context, signature string) error {
	if _, err := s.drafts.Save(ctx, repository.DraftPatch{Signature: &signature}); err != nil {
		return fmt.Errorf("save signature: %w", err)
	}
	return nil
}

func (s *WizardService) saveMedia(ctx context.Context, payload *StepPayload) error {
	if payload.Photos != nil {
		photos := make([]entity.Photo, 0, len(payload.Photos))
		for _, photo := range payload.Photos {
			if photo.ImageData == "" {
				continue
			}
			if photo.ID == "" {
				photo.ID = uuid.New().String()
			}
			photos = append(photos, photo)
		}
		if _, err := s.drafts.ReplacePhotos(ctx, photos); err != nil {
			return fmt.Errorf("save photos: %w", err)
		}
	}
	if payload.Comments != nil {
		if _, err := s.drafts.Save(ctx, repository.DraftPatch{Comments: payload.Comments}); err != nil {
			return fmt.Errorf("save comments: %w", err)
		}
	}
	return nil
}

// normalizeChecklist 把提交的答案套到标准模板上并拒绝未知答案值
func normalizeChecklist(answers []entity.ChecklistItem) ([]entity.ChecklistItem, error) {
	for _, item := range answers {
		switch item.Answer {
		case entity.AnswerYes, entity.AnswerNo, entity.AnswerNA, entity.AnswerUnselected:
		default:
			return nil, validationErr(fmt.Sprintf("Resposta inválida para o item %d", item.ItemID))
		}
	}
	return entity.MergeChecklist(answers), nil
}

func buildSummary(draft *entity.ChecklistDraft) *SubmitSummary {
	summary := &SubmitSummary{
		InspectionDate: draft.InspectionDate,
		Tally:          entity.Tally(draft.Checklist),
		PhotoCount:     len(draft.Photos),
		CommentExcerpt: excerpt(draft.Comments, 120),
		HasSignature:   draft.Signature != "",
	}
	if draft.Operator != nil {
		summary.OperatorName = draft.Operator.Name
	}
	if draft.Equipment != nil {
		summary.EquipmentName = draft.Equipment.Name
	}
	return summary
}

func excerpt(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "…"
}

func successor(step Step) (Step, bool) {
	for i, s := range stepOrder {
		if s == step && i+1 < len(stepOrder) {
			return stepOrder[i+1], true
		}
	}
	return "", false
}

func predecessor(step Step) (Step, bool) {
	for i, s := range stepOrder {
		if s == step && i > 0 {
			return stepOrder[i-1], true
		}
	}
	return "", false
}
