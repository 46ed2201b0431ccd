package entity

// Operator 操作工目录条目（Name统一大写存储）
type Operator struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Cargo string `json:"cargo,omitempty"`
	Setor string `json:"setor,omitempty"`
}

// Leader 区域负责人（目录对检查流程只读）
type Leader struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Setor string `json:"setor"`
}
