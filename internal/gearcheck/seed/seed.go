// Package seed holds the bundled default catalogs used to initialize an empty
// store and to recover from corrupted catalog values.
package seed

import "github.com/Acearia/gearcheck/internal/gearcheck/entity"

// DefaultOperators 默认操作工目录
func DefaultOperators() []entity.Operator {
	return []entity.Operator{
		{ID: "1", Name: "JOSÉ CARLOS DA SILVA", Cargo: "Operador de Ponte", Setor: "Aciaria"},
		{ID: "2", Name: "MARCOS ANTÔNIO PEREIRA", Cargo: "Operador de Ponte", Setor: "Laminação"},
		{ID: "3", Name: "PAULO HENRIQUE SOUZA", Cargo: "Operador de Talha", Setor: "Produção"},
		{ID: "4", Name: "ANDERSON LUIZ FERREIRA", Cargo: "Operador de Ponte", Setor: "Pátio de Sucata"},
		{ID: "5", Name: "RODRIGO ALVES MARTINS", Cargo: "Operador de Pórtico", Setor: "Expedição"},
		{ID: "6", Name: "CLEITON BARBOSA LIMA", Cargo: "Operador de Ponte", Setor: "Aciaria"},
		{ID: "7", Name: "FABIANO GOMES RIBEIRO", Cargo: "Operador de Talha", Setor: "Manutenção"},
		{ID: "8", Name: "WELLINGTON COSTA SANTOS", Cargo: "Operador de Ponte", Setor: "Laminação"},
	}
}

// DefaultEquipment 默认设备目录
func DefaultEquipment() []entity.Equipment {
	return []entity.Equipment{
		{ID: "1", Name: "Ponte Rolante 01 - Aciaria", KP: "1234", Type: entity.EquipmentTypeBridgeCrane, Sector: "Aciaria", Capacity: "32/5 t"},
		{ID: "2", Name: "Ponte Rolante 02 - Produção", KP: "5678", Type: entity.EquipmentTypeBridgeCrane, Sector: "Produção", Capacity: "20 t"},
		{ID: "3", Name: "Talha Elétrica 01 - Manutenção", KP: "2201", Type: entity.EquipmentTypeHoist, Sector: "Manutenção", Capacity: "5 t"},
		{ID: "4", Name: "Pórtico 01 - Pátio de Sucata", KP: "3305", Type: entity.EquipmentTypeGantry, Sector: "Pátio de Sucata", Capacity: "12,5 t"},
		{ID: "5", Name: "Ponte Rolante 03 - Laminação", KP: "5810", Type: entity.EquipmentTypeBridgeCrane, Sector: "Laminação", Capacity: "25 t"},
		{ID: "6", Name: "Talha Manual - Expedição", KP: "4102", Type: entity.EquipmentTypeHoist, Sector: "Expedição", Capacity: "2 t"},
	}
}

// DefaultLeaders 默认区域负责人目录
func DefaultLeaders() []entity.Leader {
	return []entity.Leader{
		{ID: "1", Name: "Ricardo Mendes", Email: "ricardo.mendes@acearia.com.br", Setor: "Aciaria"},
		{ID: "2", Name: "Luciana Prado", Email: "luciana.prado@acearia.com.br", Setor: "Produção"},
		{ID: "3", Name: "Eduardo Tavares", Email: "eduardo.tavares@acearia.com.br", Setor: "Laminação"},
		{ID: "4", Name: "Sérgio Nakamura", Email: "sergio.nakamura@acearia.com.br", Setor: "Manutenção"},
	}
}
