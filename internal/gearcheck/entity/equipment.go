package entity

// 设备类型编码
const (
	EquipmentTypeBridgeCrane = 1 // Ponte Rolante
	EquipmentTypeHoist       = 2 // Talha
	EquipmentTypeGantry      = 3 // Pórtico
	EquipmentTypeOther       = 4 // Outro
)

// Equipment 设备目录条目
type Equipment struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	KP       string `json:"kp"`
	Type     int    `json:"type"` // 1-4
	Sector   string `json:"sector"`
	Capacity string `json:"capacity"`
}

// TypeLabel 设备类型显示名
func (e Equipment) TypeLabel() string {
	switch e.Type {
	case EquipmentTypeBridgeCrane:
		return "Ponte Rolante"
	case EquipmentTypeHoist:
		return "Talha"
	case EquipmentTypeGantry:
		return "Pórtico"
	default:
		return "Outro"
	}
}
