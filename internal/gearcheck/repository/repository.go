package repository

import (
	"errors"

	"github.com/Acearia/gearcheck/internal/gearcheck/store"
	"go.uber.org/zap"
)

// 错误定义
var (
	ErrNotFound = errors.New("record not found")
)

// 存储键（与原应用的localStorage键一一对应）
const (
	KeyDraft             = "gearcheck:draft"
	KeyOperators         = "gearcheck:operators"
	KeyEquipment         = "gearcheck:equipment"
	KeyLeaders           = "gearcheck:leaders"
	KeyInspections       = "gearcheck:inspections"
	KeyInspectionArchive = "gearcheck:inspections:archive"
	KeyConnection        = "gearcheck:connection"
)

// Repositories 仓库集合
type Repositories struct {
	Draft       *DraftRepository
	Operators   *OperatorCatalogRepository
	Equipment   *EquipmentCatalogRepository
	Leaders     *LeaderRepository
	Inspections *InspectionRepository
	Connection  *ConnectionRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(kv store.Store, logger *zap.Logger) *Repositories {
	return &Repositories{
		Draft:       NewDraftRepository(kv, logger),
		Operators:   NewOperatorCatalogRepository(kv, logger),
		Equipment:   NewEquipmentCatalogRepository(kv, logger),
		Leaders:     NewLeaderRepository(kv, logger),
		Inspections: NewInspectionRepository(kv, logger),
		Connection:  NewConnectionRepository(kv),
	}
}
