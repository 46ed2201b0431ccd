package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Acearia/gearcheck/internal/gearcheck/entity"
	"github.com/Acearia/gearcheck/internal/gearcheck/seed"
	"github.com/Acearia/gearcheck/internal/gearcheck/store"
	"go.uber.org/zap"
)

// OperatorCatalogRepository 操作工目录仓库。
// 目录缺失或损坏时用内置默认目录重建并持久化，保证后续读取一致。
type OperatorCatalogRepository struct {
	kv     store.Store
	logger *zap.Logger
}

func NewOperatorCatalogRepository(kv store.Store, logger *zap.Logger) *OperatorCatalogRepository {
	return &OperatorCatalogRepository{kv: kv, logger: logger}
}

// List 读取目录；缺失、空或损坏时播种默认目录
func (r *OperatorCatalogRepository) List(ctx context.Context) []entity.Operator {
	raw, err := r.kv.Get(ctx, KeyOperators)
	if err == nil {
		var operators []entity.Operator
		if parseErr := json.Unmarshal([]byte(raw), &operators); parseErr == nil {
			if len(operators) > 0 {
				return operators
			}
			r.logger.Warn("Operator catalog empty, reseeding defaults")
		} else {
			r.logger.Warn("Operator catalog corrupted, reseeding defaults", zap.Error(parseErr))
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		r.logger.Warn("Failed to read operator catalog, using defaults", zap.Error(err))
		return seed.DefaultOperators()
	}

	operators := seed.DefaultOperators()
	if err := r.Replace(ctx, operators); err != nil {
		r.logger.Warn("Failed to persist seeded operator catalog", zap.Error(err))
	}
	return operators
}

// FindByID 按ID查找操作工
func (r *OperatorCatalogRepository) FindByID(ctx context.Context, id string) (*entity.Operator, error) {
	for _, op := range r.List(ctx) {
		if op.ID == id {
			found := op
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// Replace 整体替换目录（批量导入用，不做合并）
func (r *OperatorCatalogRepository) Replace(ctx context.Context, operators []entity.Operator) error {
	data, err := json.Marshal(operators)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, KeyOperators, string(data))
}

// Reinitialize 无条件用默认目录覆盖（恢复/调试用）
func (r *OperatorCatalogRepository) Reinitialize(ctx context.Context) ([]entity.Operator, error) {
	operators := seed.DefaultOperators()
	if err := r.Replace(ctx, operators); err != nil {
		return nil, err
	}
	return operators, nil
}

// EquipmentCatalogRepository 设备目录仓库，行为同操作工目录
type EquipmentCatalogRepository struct {
	kv     store.Store
	logger *zap.Logger
}

func NewEquipmentCatalogRepository(kv store.Store, logger *zap.Logger) *EquipmentCatalogRepository {
	return &EquipmentCatalogRepository{kv: kv, logger: logger}
}

func (r *EquipmentCatalogRepository) List(ctx context.Context) []entity.Equipment {
	raw, err := r.kv.Get(ctx, KeyEquipment)
	if err == nil {
		var equipment []entity.Equipment
		if parseErr := json.Unmarshal([]byte(raw), &equipment); parseErr == nil {
			if len(equipment) > 0 {
				return equipment
			}
			r.logger.Warn("Equipment catalog empty, reseeding defaults")
		} else {
			r.logger.Warn("Equipment catalog corrupted, reseeding defaults", zap.Error(parseErr))
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		r.logger.Warn("Failed to read equipment catalog, using defaults", zap.Error(err))
		return seed.DefaultEquipment()
	}

	equipment := seed.DefaultEquipment()
	if err := r.Replace(ctx, equipment); err != nil {
		r.logger.Warn("Failed to persist seeded equipment catalog", zap.Error(err))
	}
	return equipment
}

func (r *EquipmentCatalogRepository) FindByID(ctx context.Context, id string) (*entity.Equipment, error) {
	for _, eq := range r.List(ctx) {
		if eq.ID == id {
			found := eq
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *EquipmentCatalogRepository) Replace(ctx context.Context, equipment []entity.Equipment) error {
	data, err := json.Marshal(equipment)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, KeyEquipment, string(data))
}

func (r *EquipmentCatalogRepository) Reinitialize(ctx context.Context) ([]entity.Equipment, error) {
	equipment := seed.DefaultEquipment()
	if err := r.Replace(ctx, equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}
