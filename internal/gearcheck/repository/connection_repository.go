package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Acearia/gearcheck/internal/gearcheck/entity"
	"github.com/Acearia/gearcheck/internal/gearcheck/store"
)

// ConnectionRepository 模拟数据库连接配置仓库
type ConnectionRepository struct {
	kv store.Store
}

func NewConnectionRepository(kv store.Store) *ConnectionRepository {
	return &ConnectionRepository{kv: kv}
}

// Get 读取连接配置；未配置返回ErrNotFound
func (r *ConnectionRepository) Get(ctx context.Context) (*entity.ConnectionConfig, error) {
	raw, err := r.kv.Get(ctx, KeyConnection)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var cfg entity.ConnectionConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, ErrNotFound
	}
	return &cfg, nil
}

// Save 保存连接配置
func (r *ConnectionRepository) Save(ctx context.Context, cfg *entity.ConnectionConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, KeyConnection, string(data))
}
