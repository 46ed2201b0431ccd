package handler

import (
	"github.com/Acearia/gearcheck/internal/gearcheck/repository"
	"github.com/gin-gonic/gin"
)

// LeaderHandler 班组长目录处理器（只读）
type LeaderHandler struct {
	repo *repository.LeaderRepository
}

func NewLeaderHandler(repo *repository.LeaderRepository) *LeaderHandler {
	return &LeaderHandler{repo: repo}
}

// ListLeaders 班组长列表
// GET /api/v1/leaders?sector=
func (h *LeaderHandler) ListLeaders(c *gin.Context) {
	if sector := c.Query("sector"); sector != "" {
		Success(c, h.repo.FindBySector(c.Request.Context(), sector))
		return
	}
	Success(c, h.repo.List(c.Request.Context()))
}
