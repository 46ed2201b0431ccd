package service

import (
	"context"
	"time"

	"github.com/Acearia/gearcheck/internal/gearcheck/entity"
	"github.com/Acearia/gearcheck/internal/gearcheck/repository"
)

// archiveAfter 归档阈值：提交超过30天的记录可被手工归档
const archiveAfter = 30 * 24 * time.Hour

// InspectionService 检查记录查询与归档
type InspectionService struct {
	repo *repository.InspectionRepository
}

func NewInspectionService(repo *repository.InspectionRepository) *InspectionService {
	return &InspectionService{repo: repo}
}

// ListInspections 分页过滤检查记录；列表本身已是最新在前
func (s *InspectionService) ListInspections(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.InspectionRecord, int) {
	var matched []entity.InspectionRecord
	for _, record := range s.repo.List(ctx) {
		if !matchesFilters(record, filters) {
			continue
		}
		matched = append(matched, record)
	}

	total := len(matched)
	start := (page - 1) * pageSize
	if start >= total {
		return []entity.InspectionRecord{}, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return matched[start:end], total
}

// GetInspection 检查记录详情
func (s *InspectionService) GetInspection(ctx context.Context, id string) (*entity.InspectionRecord, error) {
	return s.repo.FindByID(ctx, id)
}

// ListArchived 归档记录
func (s *InspectionService) ListArchived(ctx context.Context) []entity.InspectionRecord {
	return s.repo.Archived(ctx)
}

// ArchiveOldInspections 手工归档超过30天的记录，返回移动数量
func (s *InspectionService) ArchiveOldInspections(ctx context.Context) (int, error) {
	return s.repo.ArchiveOlderThan(ctx, time.Now().Add(-archiveAfter))
}

func matchesFilters(record entity.InspectionRecord, filters map[string]string) bool {
	if operatorID := filters["operator_id"]; operatorID != "" && record.Operator.ID != operatorID {
		return false
	}
	if equipmentID := filters["equipment_id"]; equipmentID != "" && record.Equipment.ID != equipmentID {
		return false
	}
	if sector := filters["sector"]; sector != "" && record.Equipment.Sector != sector {
		return false
	}
	// 日期为YYYY-MM-DD，字符串比较即按时间排序
	if from := filters["from"]; from != "" && record.InspectionDate < from {
		return false
	}
	if to := filters["to"]; to != "" && record.InspectionDate > to {
		return false
	}
	return true
}
