package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Acearia/gearcheck/internal/gearcheck/entity"
	"github.com/Acearia/gearcheck/internal/gearcheck/repository"
)

// 连接状态
const (
	ConnectionConfigured    = "configured"
	ConnectionNotConfigured = "not_configured"
)

// ConnectionService 模拟数据库连接配置。
// 原应用只做演示：必填字段非空即认为"连接成功"，这里保留同样的语义，
// 不做任何真实连通性检查。
type ConnectionService struct {
	repo *repository.ConnectionRepository
}

func NewConnectionService(repo *repository.ConnectionRepository) *ConnectionService {
	return &ConnectionService{repo: repo}
}

// Get 读取配置；密码不回传
func (s *ConnectionService) Get(ctx context.Context) (*entity.ConnectionConfig, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	cfg.Password = ""
	return cfg, nil
}

// Save 保存配置，必填字段非空才接受
func (s *ConnectionService) Save(ctx context.Context, cfg *entity.ConnectionConfig) error {
	for _, field := range []string{cfg.Host, cfg.Port, cfg.Database, cfg.User} {
		if strings.TrimSpace(field) == "" {
			return validationErr("Preencha todos os campos obrigatórios da conexão")
		}
	}
	if cfg.SimulateLatencyMS < 0 {
		return validationErr("Latência simulada não pode ser negativa")
	}
	if err := s.repo.Save(ctx, cfg); err != nil {
		return fmt.Errorf("persist connection config: %w", err)
	}
	return nil
}

// Status 配置状态：configured / not_configured
func (s *ConnectionService) Status(ctx context.Context) string {
	if _, err := s.repo.Get(ctx); err != nil {
		return ConnectionNotConfigured
	}
	return ConnectionConfigured
}
