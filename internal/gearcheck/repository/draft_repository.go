package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Acearia/gearcheck/internal/gearcheck/entity"
	"github.com/Acearia/gearcheck/internal/gearcheck/store"
	"go.uber.org/zap"
)

// DraftRepository 检查草稿仓库（单例草稿，固定键）
type DraftRepository struct {
	kv     store.Store
	logger *zap.Logger
}

func NewDraftRepository(kv store.Store, logger *zap.Logger) *DraftRepository {
	return &DraftRepository{kv: kv, logger: logger}
}

// DraftPatch 草稿标量字段的浅合并补丁。
// 序列字段（checklist、photos）必须通过ReplaceChecklist/ReplacePhotos整体替换。
type DraftPatch struct {
	Operator       *entity.Operator
	Equipment      *entity.Equipment
	Comments       *string
	Signature      *string
	InspectionDate *string
}

// Get 读取当前草稿；键缺失或内容损坏时返回全新默认草稿，从不失败
func (r *DraftRepository) Get(ctx context.Context) *entity.ChecklistDraft {
	raw, err := r.kv.Get(ctx, KeyDraft)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			r.logger.Warn("Failed to read draft, using default", zap.Error(err))
		}
		return defaultDraft()
	}

	var draft entity.ChecklistDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		r.logger.Warn("Draft value corrupted, using default", zap.Error(err))
		return defaultDraft()
	}
	if draft.Checklist == nil {
		draft.Checklist = []entity.ChecklistItem{}
	}
	if draft.Photos == nil {
		draft.Photos = []entity.Photo{}
	}
	if draft.InspectionDate == "" {
		draft.InspectionDate = time.Now().Format("2006-01-02")
	}
	return &draft
}

// Save 浅合并补丁并写回，返回合并后的草稿；补丁外的字段保持不变
func (r *DraftRepository) Save(ctx context.Context, patch DraftPatch) (*entity.ChecklistDraft, error) {
	draft := r.Get(ctx)

	if patch.Operator != nil {
		draft.Operator = patch.Operator
	}
	if patch.Equipment != nil {
		draft.Equipment = patch.Equipment
	}
	if patch.Comments != nil {
		draft.Comments = *patch.Comments
	}
	if patch.Signature != nil {
		draft.Signature = *patch.Signature
	}
	if patch.InspectionDate != nil {
		draft.InspectionDate = *patch.InspectionDate
	}

	if err := r.persist(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// ReplaceChecklist 整体替换答案序列（调用方必须传完整序列，不允许增量）
func (r *DraftRepository) ReplaceChecklist(ctx context.Context, items []entity.ChecklistItem) (*entity.ChecklistDraft, error) {
	draft := r.Get(ctx)
	if items == nil {
		items = []entity.ChecklistItem{}
	}
	draft.Checklist = items
	if err := r.persist(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// ReplacePhotos 整体替换照片序列
func (r *DraftRepository) ReplacePhotos(ctx context.Context, photos []entity.Photo) (*entity.ChecklistDraft, error) {
	draft := r.Get(ctx)
	if photos == nil {
		photos = []entity.Photo{}
	}
	draft.Photos = photos
	if err := r.persist(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Clear 删除草稿；之后Get返回默认草稿
func (r *DraftRepository) Clear(ctx context.Context) error {
	return r.kv.Remove(ctx, KeyDraft)
}

func (r *DraftRepository) persist(ctx context.Context, draft *entity.ChecklistDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, KeyDraft, string(data))
}

func defaultDraft() *entity.ChecklistDraft {
	return &entity.ChecklistDraft{
		Checklist:      []entity.ChecklistItem{},
		Photos:         []entity.Photo{},
		InspectionDate: time.Now().Format("2006-01-02"),
	}
}
