package handler

import (
	"github.com/Acearia/gearcheck/internal/gearcheck/service"
	"github.com/gin-gonic/gin"
)

// InspectionHandler 点检记录处理器
type InspectionHandler struct {
	svc *service.InspectionService
}

func NewInspectionHandler(svc *service.InspectionService) *InspectionHandler {
	return &InspectionHandler{svc: svc}
}

// ListInspections 点检记录列表，支持分页和过滤
// GET /api/v1/inspections?page=&page_size=&operator_id=&equipment_id=&sector=&from=&to=
func (h *InspectionHandler) ListInspections(c *gin.Context) {
	page, pageSize := GetPagination(c)

	filters := map[string]string{}
	for _, key := range []string{"operator_id", "equipment_id", "sector", "from", "to"} {
		if v := c.Query(key); v != "" {
			filters[key] = v
		}
	}

	records, total := h.svc.ListInspections(c.Request.Context(), page, pageSize, filters)

	totalPages := 0
	if total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	Success(c, ListResponse{
		Items: records,
		Pagination: &Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// GetInspection 点检记录详情
// GET /api/v1/inspections/:id
func (h *InspectionHandler) GetInspection(c *gin.Context) {
	record, err := h.svc.GetInspection(c.Request.Context(), c.Param("id"))
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, record)
}

// ListArchived 已归档记录列表
// GET /api/v1/inspections/archived
func (h *InspectionHandler) ListArchived(c *gin.Context) {
	Success(c, h.svc.ListArchived(c.Request.Context()))
}

// ArchiveOld 归档超过保留期的记录
// POST /api/v1/inspections/archive
func (h *InspectionHandler) ArchiveOld(c *gin.Context) {
	moved, err := h.svc.ArchiveOldInspections(c.Request.Context())
	if err != nil {
		InternalError(c, "Falha ao arquivar inspeções: "+err.Error())
		return
	}
	Success(c, gin.H{"archived": moved})
}
