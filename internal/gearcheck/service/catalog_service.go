package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Acearia/gearcheck/internal/gearcheck/entity"
	"github.com/Acearia/gearcheck/internal/gearcheck/repository"
	"github.com/xuri/excelize/v2"
)

// CatalogService 操作工与设备目录的管理操作
type CatalogService struct {
	operators *repository.OperatorCatalogRepository
	equipment *repository.EquipmentCatalogRepository
}

func NewCatalogService(
	operators *repository.OperatorCatalogRepository,
	equipment *repository.EquipmentCatalogRepository,
) *CatalogService {
	return &CatalogService{operators: operators, equipment: equipment}
}

// ListOperators 操作工目录
func (s *CatalogService) ListOperators(ctx context.Context) []entity.Operator {
	return s.operators.List(ctx)
}

// CreateOperatorRequest 新建操作工请求
type CreateOperatorRequest struct {
	Name  string `json:"name" binding:"required"`
	Cargo string `json:"cargo"`
	Setor string `json:"setor"`
}

// CreateOperator 新建操作工：id = 已有最大数字id + 1，姓名大写
func (s *CatalogService) CreateOperator(ctx context.Context, req *CreateOperatorRequest) (*entity.Operator, error) {
	name := strings.ToUpper(strings.TrimSpace(req.Name))
	if name == "" {
		return nil, validationErr("Informe o nome do operador")
	}

	operators := s.operators.List(ctx)
	operator := entity.Operator{
		ID:    nextID(operatorIDs(operators)),
		Name:  name,
		Cargo: strings.TrimSpace(req.Cargo),
		Setor: strings.TrimSpace(req.Setor),
	}
	if err := s.operators.Replace(ctx, append(operators, operator)); err != nil {
		return nil, fmt.Errorf("persist operator catalog: %w", err)
	}
	return &operator, nil
}

// UpdateOperator 更新操作工
func (s *CatalogService) UpdateOperator(ctx context.Context, id string, req *CreateOperatorRequest) (*entity.Operator, error) {
	operators := s.operators.List(ctx)
	for i := range operators {
		if operators[i].ID == id {
			operators[i].Name = strings.ToUpper(strings.TrimSpace(req.Name))
			operators[i].Cargo = strings.TrimSpace(req.Cargo)
			operators[i].Setor = strings.TrimSpace(req.Setor)
			if err := s.operators.Replace(ctx, operators); err != nil {
				return nil, fmt.Errorf("persist operator catalog: %w", err)
			}
			return &operators[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

// DeleteOperator 删除操作工
func (s *CatalogService) DeleteOperator(ctx context.Context, id string) error {
	operators := s.operators.List(ctx)
	kept := operators[:0]
	found := false
	for _, op := range operators {
		if op.ID == id {
			found = true
			continue
		}
		kept = append(kept, op)
	}
	if !found {
		return repository.ErrNotFound
	}
	return s.operators.Replace(ctx, kept)
}

// BulkImportOperators 批量导入制表符分隔文本（表格粘贴），整体替换目录。
// 每行 [id, name, cargo?, setor?]，姓名大写，畸形行丢弃。
func (s *CatalogService) BulkImportOperators(ctx context.Context, text string) ([]entity.Operator, error) {
	var operators []entity.Operator
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		operator, ok := operatorFromFields(fields)
		if !ok {
			continue
		}
		operators = append(operators, operator)
	}
	if len(operators) == 0 {
		return nil, validationErr("Nenhuma linha válida encontrada para importação")
	}
	if err := s.operators.Replace(ctx, operators); err != nil {
		return nil, fmt.Errorf("persist operator catalog: %w", err)
	}
	return operators, nil
}

// ImportOperatorsXLSX 从电子表格文件导入操作工目录，列约定同批量文本导入
func (s *CatalogService) ImportOperatorsXLSX(ctx context.Context, file io.Reader) ([]entity.Operator, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, validationErr("Arquivo de planilha inválido")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, validationErr("A planilha não possui abas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet rows: %w", err)
	}

	var operators []entity.Operator
	for i, row := range rows {
		// 跳过表头
		if i == 0 && len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "id") {
			continue
		}
		operator, ok := operatorFromFields(row)
		if !ok {
			continue
		}
		operators = append(operators, operator)
	}
	if len(operators) == 0 {
		return nil, validationErr("Nenhuma linha válida encontrada na planilha")
	}
	if err := s.operators.Replace(ctx, operators); err != nil {
		return nil, fmt.Errorf("persist operator catalog: %w", err)
	}
	return operators, nil
}

// ReinitializeOperators 用内置默认目录覆盖
func (s *CatalogService) ReinitializeOperators(ctx context.Context) ([]entity.Operator, error) {
	return s.operators.Reinitialize(ctx)
}

// ListEquipment 设备目录
func (s *CatalogService) ListEquipment(ctx context.Context) []entity.Equipment {
	return s.equipment.List(ctx)
}

// CreateEquipmentRequest 新建设备请求
type CreateEquipmentRequest struct {
	Name     string `json:"name" binding:"required"`
	KP       string `json:"kp"`
	Type     int    `json:"type"`
	Sector   string `json:"sector"`
	Capacity string `json:"capacity"`
}

// CreateEquipment 新建设备：id分配同操作工
func (s *CatalogService) CreateEquipment(ctx context.Context, req *CreateEquipmentRequest) (*entity.Equipment, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, validationErr("Informe o nome do equipamento")
	}
	if req.Type < entity.EquipmentTypeBridgeCrane || req.Type > entity.EquipmentTypeOther {
		return nil, validationErr("Tipo de equipamento inválido")
	}

	equipment := s.equipment.List(ctx)
	item := entity.Equipment{
		ID:       nextID(equipmentIDs(equipment)),
		Name:     strings.TrimSpace(req.Name),
		KP:       strings.TrimSpace(req.KP),
		Type:     req.Type,
		Sector:   strings.TrimSpace(req.Sector),
		Capacity: strings.TrimSpace(req.Capacity),
	}
	if err := s.equipment.Replace(ctx, append(equipment, item)); err != nil {
		return nil, fmt.Errorf("persist equipment catalog: %w", err)
	}
	return &item, nil
}

// UpdateEquipment 更新设备
func (s *CatalogService) UpdateEquipment(ctx context.Context, id string, req *CreateEquipmentRequest) (*entity.Equipment, error) {
	if req.Type < entity.EquipmentTypeBridgeCrane || req.Type > entity.EquipmentTypeOther {
		return nil, validationErr("Tipo de equipamento inválido")
	}
	equipment := s.equipment.List(ctx)
	for i := range equipment {
		if equipment[i].ID == id {
			equipment[i].Name = strings.TrimSpace(req.Name)
			equipment[i].KP = strings.TrimSpace(req.KP)
			equipment[i].Type = req.Type
			equipment[i].Sector = strings.TrimSpace(req.Sector)
			equipment[i].Capacity = strings.TrimSpace(req.Capacity)
			if err := s.equipment.Replace(ctx, equipment); err != nil {
				return nil, fmt.Errorf("persist equipment catalog: %w", err)
			}
			return &equipment[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

// DeleteEquipment 删除设备
func (s *CatalogService) DeleteEquipment(ctx context.Context, id string) error {
	equipment := s.equipment.List(ctx)
	kept := equipment[:0]
	found := false
	for _, eq := range equipment {
		if eq.ID == id {
			found = true
			continue
		}
		kept = append(kept, eq)
	}
	if !found {
		return repository.ErrNotFound
	}
	return s.equipment.Replace(ctx, kept)
}

// ReinitializeEquipment 用内置默认目录覆盖
func (s *CatalogService) ReinitializeEquipment(ctx context.Context) ([]entity.Equipment, error) {
	return s.equipment.Reinitialize(ctx)
}

// operatorFromFields 一行导入数据转操作工；id和name缺失则整行丢弃
func operatorFromFields(fields []string) (entity.Operator, bool) {
	get := func(i int) string {
		if i < len(fields) {
			return strings.TrimSpace(fields[i])
		}
		return ""
	}
	id, name := get(0), get(1)
	if id == "" || name == "" {
		return entity.Operator{}, false
	}
	return entity.Operator{
		ID:    id,
		Name:  strings.ToUpper(name),
		Cargo: get(2),
		Setor: get(3),
	}, true
}

// nextID 下一个id = 已有最大数字id + 1（非数字id忽略）
func nextID(ids []string) string {
	max := 0
	for _, id := range ids {
		if n, err := strconv.Atoi(id); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

func operatorIDs(operators []entity.Operator) []string {
	ids := make([]string, len(operators))
	for i, op := range operators {
		ids[i] = op.ID
	}
	return ids
}

func equipmentIDs(equipment []entity.Equipment) []string {
	ids := make([]string, len(equipment))
	for i, eq := range equipment {
		ids[i] = eq.ID
	}
	return ids
}
