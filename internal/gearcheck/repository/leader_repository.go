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

// LeaderRepository 区域负责人目录（检查流程只读，管理在别处）
type LeaderRepository struct {
	kv     store.Store
	logger *zap.Logger
}

func NewLeaderRepository(kv store.Store, logger *zap.Logger) *LeaderRepository {
	return &LeaderRepository{kv: kv, logger: logger}
}

// List 读取负责人目录；缺失或损坏时播种默认目录
func (r *LeaderRepository) List(ctx context.Context) []entity.Leader {
	raw, err := r.kv.Get(ctx, KeyLeaders)
	if err == nil {
		var leaders []entity.Leader
		if parseErr := json.Unmarshal([]byte(raw), &leaders); parseErr == nil && len(leaders) > 0 {
			return leaders
		}
		r.logger.Warn("Leader catalog empty or corrupted, reseeding defaults")
	} else if !errors.Is(err, store.ErrNotFound) {
		r.logger.Warn("Failed to read leader catalog, using defaults", zap.Error(err))
		return seed.DefaultLeaders()
	}

	leaders := seed.DefaultLeaders()
	if data, err := json.Marshal(leaders); err == nil {
		if err := r.kv.Set(ctx, KeyLeaders, string(data)); err != nil {
			r.logger.Warn("Failed to persist seeded leader catalog", zap.Error(err))
		}
	}
	return leaders
}

// FindBySector 按区域查找负责人
func (r *LeaderRepository) FindBySector(ctx context.Context, sector string) []entity.Leader {
	var matched []entity.Leader
	for _, leader := range r.List(ctx) {
		if leader.Setor != "" && leader.Setor == sector {
			matched = append(matched, leader)
		}
	}
	return matched
}
