package handler

import (
	"github.com/Acearia/gearcheck/internal/gearcheck/service"
	"github.com/gin-gonic/gin"
)

// CatalogHandler 目录管理处理器
type CatalogHandler struct {
	svc *service.CatalogService
}

func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListOperators 操作工列表
// GET /api/v1/operators
func (h *CatalogHandler) ListOperators(c *gin.Context) {
	Success(c, h.svc.ListOperators(c.Request.Context()))
}

// CreateOperator 新建操作工
// POST /api/v1/operators
func (h *CatalogHandler) CreateOperator(c *gin.Context) {
	var req service.CreateOperatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dados do operador inválidos: "+err.Error())
		return
	}
	operator, err := h.svc.CreateOperator(c.Request.Context(), &req)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Created(c, operator)
}

// UpdateOperator 更新操作工
// PUT /api/v1/operators/:id
func (h *CatalogHandler) UpdateOperator(c *gin.Context) {
	var req service.CreateOperatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dados do operador inválidos: "+err.Error())
		return
	}
	operator, err := h.svc.UpdateOperator(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, operator)
}

// DeleteOperator 删除操作工
// DELETE /api/v1/operators/:id
func (h *CatalogHandler) DeleteOperator(c *gin.Context) {
	if err := h.svc.DeleteOperator(c.Request.Context(), c.Param("id")); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, nil)
}

// BulkImportRequest 批量导入请求（制表符分隔文本）
type BulkImportRequest struct {
	Text string `json:"text" binding:"required"`
}

// BulkImportOperators 批量导入操作工，整体替换目录
// POST /api/v1/operators/import
func (h *CatalogHandler) BulkImportOperators(c *gin.Context) {
	var req BulkImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Texto de importação ausente: "+err.Error())
		return
	}
	operators, err := h.svc.BulkImportOperators(c.Request.Context(), req.Text)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, operators)
}

// ImportOperatorsXLSX 从planilha导入操作工
// POST /api/v1/operators/import-xlsx (multipart, campo "file")
func (h *CatalogHandler) ImportOperatorsXLSX(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "Arquivo de planilha ausente")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		BadRequest(c, "Não foi possível ler o arquivo enviado")
		return
	}
	defer file.Close()

	operators, err := h.svc.ImportOperatorsXLSX(c.Request.Context(), file)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, operators)
}

// ReinitializeOperators 恢复默认操作工目录
// POST /api/v1/operators/reinitialize
func (h *CatalogHandler) ReinitializeOperators(c *gin.Context) {
	operators, err := h.svc.ReinitializeOperators(c.Request.Context())
	if err != nil {
		InternalError(c, "Falha ao restaurar a lista de operadores: "+err.Error())
		return
	}
	Success(c, operators)
}

// ListEquipment 设备列表
// GET /api/v1/equipment
func (h *CatalogHandler) ListEquipment(c *gin.Context) {
	Success(c, h.svc.ListEquipment(c.Request.Context()))
}

// CreateEquipment 新建设备
// POST /api/v1/equipment
func (h *CatalogHandler) CreateEquipment(c *gin.Context) {
	var req service.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dados do equipamento inválidos: "+err.Error())
		return
	}
	equipment, err := h.svc.CreateEquipment(c.Request.Context(), &req)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Created(c, equipment)
}

// UpdateEquipment 更新设备
// PUT /api/v1/equipment/:id
func (h *CatalogHandler) UpdateEquipment(c *gin.Context) {
	var req service.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dados do equipamento inválidos: "+err.Error())
		return
	}
	equipment, err := h.svc.UpdateEquipment(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, equipment)
}

// DeleteEquipment 删除设备
// DELETE /api/v1/equipment/:id
func (h *CatalogHandler) DeleteEquipment(c *gin.Context) {
	if err := h.svc.DeleteEquipment(c.Request.Context(), c.Param("id")); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, nil)
}

// ReinitializeEquipment 恢复默认设备目录
// POST /api/v1/equipment/reinitialize
func (h *CatalogHandler) ReinitializeEquipment(c *gin.Context) {
	equipment, err := h.svc.ReinitializeEquipment(c.Request.Context())
	if err != nil {
		InternalError(c, "Falha ao restaurar a lista de equipamentos: "+err.Error())
		return
	}
	Success(c, equipment)
}
