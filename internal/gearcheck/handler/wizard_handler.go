package handler

import (
	"github.com/Acearia/gearcheck/internal/gearcheck/service"
	"github.com/gin-gonic/gin"
)

// WizardHandler 检查向导处理器
type WizardHandler struct {
	wizard *service.WizardService
	submit *service.SubmitService
}

func NewWizardHandler(wizard *service.WizardService, submit *service.SubmitService) *WizardHandler {
	return &WizardHandler{wizard: wizard, submit: submit}
}

// GetStep 进入步骤
// GET /api/v1/wizard/steps/:step
// 前置步骤未完成时返回redirect_to（第一个未完成步骤），不返回步骤数据
func (h *WizardHandler) GetStep(c *gin.Context) {
	step, ok := service.ParseStep(c.Param("step"))
	if !ok {
		NotFound(c, "Etapa inválida")
		return
	}
	Success(c, h.wizard.View(c.Request.Context(), step))
}

// NextStep 下一步
// POST /api/v1/wizard/steps/:step/next
func (h *WizardHandler) NextStep(c *gin.Context) {
	step, ok := service.ParseStep(c.Param("step"))
	if !ok {
		NotFound(c, "Etapa inválida")
		return
	}

	var payload service.StepPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		BadRequest(c, "Dados da etapa inválidos: "+err.Error())
		return
	}

	next, err := h.wizard.Advance(c.Request.Context(), step, &payload)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{"next": next})
}

// BackStep 返回上一步（保存进度，不校验）
// POST /api/v1/wizard/steps/:step/back
func (h *WizardHandler) BackStep(c *gin.Context) {
	step, ok := service.ParseStep(c.Param("step"))
	if !ok {
		NotFound(c, "Etapa inválida")
		return
	}

	var payload service.StepPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		BadRequest(c, "Dados da etapa inválidos: "+err.Error())
		return
	}

	previous, err := h.wizard.Retreat(c.Request.Context(), step, &payload)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{"previous": previous})
}

// SubmitRequest 提交请求
type SubmitRequest struct {
	Signature string `json:"signature"`
}

// Submit 提交检查
// POST /api/v1/wizard/submit
func (h *WizardHandler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dados de envio inválidos: "+err.Error())
		return
	}

	result, err := h.submit.Submit(c.Request.Context(), req.Signature)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Created(c, result)
}
