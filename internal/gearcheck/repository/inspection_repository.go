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

// InspectionRepository 检查记录仓库。
// 列表只追加，最新记录写入时插到头部（约定排序，读取不再排序）。
type InspectionRepository struct {
	kv     store.Store
	logger *zap.Logger
}

func NewInspectionRepository(kv store.Store, logger *zap.Logger) *InspectionRepository {
	return &InspectionRepository{kv: kv, logger: logger}
}

// List 读取全部记录；缺失或损坏返回空列表
func (r *InspectionRepository) List(ctx context.Context) []entity.InspectionRecord {
	return r.load(ctx, KeyInspections)
}

// Archived 读取归档记录
func (r *InspectionRepository) Archived(ctx context.Context) []entity.InspectionRecord {
	return r.load(ctx, KeyInspectionArchive)
}

// FindByID 按ID查找记录（含归档）
func (r *InspectionRepository) FindByID(ctx context.Context, id string) (*entity.InspectionRecord, error) {
	for _, key := range []string{KeyInspections, KeyInspectionArchive} {
		for _, record := range r.load(ctx, key) {
			if record.ID == id {
				found := record
				return &found, nil
			}
		}
	}
	return nil, ErrNotFound
}

// Prepend 把新记录插入列表头部
func (r *InspectionRepository) Prepend(ctx context.Context, record *entity.InspectionRecord) error {
	records := r.load(ctx, KeyInspections)
	records = append([]entity.InspectionRecord{*record}, records...)
	return r.persist(ctx, KeyInspections, records)
}

// ArchiveOlderThan 把提交时间早于cutoff的记录移到归档键，返回移动数量。
// 手工维护操作，不自动触发。
func (r *InspectionRepository) ArchiveOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	records := r.load(ctx, KeyInspections)

	var keep, moved []entity.InspectionRecord
	for _, record := range records {
		if record.SubmissionDate.Before(cutoff) {
			moved = append(moved, record)
		} else {
			keep = append(keep, record)
		}
	}
	if len(moved) == 0 {
		return 0, nil
	}

	archived := append(r.load(ctx, KeyInspectionArchive), moved...)
	if err := r.persist(ctx, KeyInspectionArchive, archived); err != nil {
		return 0, err
	}
	if err := r.persist(ctx, KeyInspections, keep); err != nil {
		return 0, err
	}
	return len(moved), nil
}

func (r *InspectionRepository) load(ctx context.Context, key string) []entity.InspectionRecord {
	raw, err := r.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			r.logger.Warn("Failed to read inspection log", zap.String("key", key), zap.Error(err))
		}
		return []entity.InspectionRecord{}
	}
	var records []entity.InspectionRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		r.logger.Warn("Inspection log corrupted, treating as empty", zap.String("key", key), zap.Error(err))
		return []entity.InspectionRecord{}
	}
	return records
}

func (r *InspectionRepository) persist(ctx context.Context, key string, records []entity.InspectionRecord) error {
	if records == nil {
		records = []entity.InspectionRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, key, string(data))
}
