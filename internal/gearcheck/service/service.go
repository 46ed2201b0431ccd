package service

import (
	"github.com/Acearia/gearcheck/internal/gearcheck/repository"
	"github.com/Acearia/gearcheck/internal/gearcheck/sse"
	"github.com/Acearia/gearcheck/internal/notify"
	"go.uber.org/zap"
)

// ValidationError 校验失败：向导停在当前步骤，消息直接展示给用户
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(message string) error {
	return &ValidationError{Message: message}
}

// Services 服务集合
type Services struct {
	Wizard     *WizardService
	Catalog    *CatalogService
	Submit     *SubmitService
	Inspection *InspectionService
	Connection *ConnectionService
}

// NewServices 创建服务集合
func NewServices(repos *repository.Repositories, hub *sse.Hub, notifier *notify.WebhookNotifier, logger *zap.Logger) *Services {
	wizard := NewWizardService(repos.Draft, repos.Operators, repos.Equipment)
	return &Services{
		Wizard:     wizard,
		Catalog:    NewCatalogService(repos.Operators, repos.Equipment),
		Submit:     NewSubmitService(repos, wizard, hub, notifier, logger),
		Inspection: NewInspectionService(repos.Inspections),
		Connection: NewConnectionService(repos.Connection),
	}
}
