package handler

import (
	"github.com/Acearia/gearcheck/internal/gearcheck/entity"
	"github.com/Acearia/gearcheck/internal/gearcheck/service"
	"github.com/gin-gonic/gin"
)

// ConnectionHandler 数据库连接配置处理器
type ConnectionHandler struct {
	svc *service.ConnectionService
}

func NewConnectionHandler(svc *service.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{svc: svc}
}

// GetConnection 读取连接配置（密码不回传）
// GET /api/v1/connection
func (h *ConnectionHandler) GetConnection(c *gin.Context) {
	cfg, err := h.svc.Get(c.Request.Context())
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, cfg)
}

// SaveConnection 保存连接配置
// PUT /api/v1/connection
func (h *ConnectionHandler) SaveConnection(c *gin.Context) {
	var cfg entity.ConnectionConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		BadRequest(c, "Configuração de conexão inválida: "+err.Error())
		return
	}
	if err := h.svc.Save(c.Request.Context(), &cfg); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{"status": h.svc.Status(c.Request.Context())})
}

// ConnectionStatus 配置状态
// GET /api/v1/connection/status
func (h *ConnectionHandler) ConnectionStatus(c *gin.Context) {
	Success(c, gin.H{"status": h.svc.Status(c.Request.Context())})
}
