package handler

import (
	"errors"
	"strconv"

	"github.com/Acearia/gearcheck/internal/gearcheck/repository"
	"github.com/Acearia/gearcheck/internal/gearcheck/service"
	"github.com/Acearia/gearcheck/internal/gearcheck/sse"
	"github.com/gin-gonic/gin"
)

// Handlers 处理器集合
type Handlers struct {
	Wizard     *WizardHandler
	Catalog    *CatalogHandler
	Inspection *InspectionHandler
	Leader     *LeaderHandler
	Connection *ConnectionHandler
	SSE        *SSEHandler
}

// NewHandlers 创建处理器集合
func NewHandlers(svc *service.Services, repos *repository.Repositories, hub *sse.Hub) *Handlers {
	return &Handlers{
		Wizard:     NewWizardHandler(svc.Wizard, svc.Submit),
		Catalog:    NewCatalogHandler(svc.Catalog),
		Inspection: NewInspectionHandler(svc.Inspection),
		Leader:     NewLeaderHandler(repos.Leaders),
		Connection: NewConnectionHandler(svc.Connection),
		SSE:        NewSSEHandler(hub),
	}
}

// Response 通用响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse 列表响应结构
type ListResponse struct {
	Items      interface{} `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

// Pagination 分页信息
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// ServiceError 按错误类型分发：校验错误是用户输入问题，其余是服务端问题
func ServiceError(c *gin.Context, err error) {
	var validation *service.ValidationError
	if errors.As(err, &validation) {
		BadRequest(c, validation.Message)
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		NotFound(c, "Registro não encontrado")
		return
	}
	InternalError(c, err.Error())
}

// GetPagination 读取分页参数
func GetPagination(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 20

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v
		}
	}

	return page, pageSize
}
