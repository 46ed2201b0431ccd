package entity

// Answer 检查项答案
type Answer string

// 答案取值（空串为"未选择"哨兵值）
const (
	AnswerYes        Answer = "Sim"
	AnswerNo         Answer = "Não"
	AnswerNA         Answer = "N/A"
	AnswerUnselected Answer = ""
)

// ChecklistItem 检查项
type ChecklistItem struct {
	ItemID   int    `json:"item_id"`
	Question string `json:"question"`
	Answer   Answer `json:"answer"`
}

// Photo 随检照片（data URI内联编码）
type Photo struct {
	ID        string `json:"id"`
	ImageData string `json:"image_data"`
}

// ChecklistDraft 进行中的检查草稿（单例，按固定键持久化）
type ChecklistDraft struct {
	Operator       *Operator       `json:"operator,omitempty"`
	Equipment      *Equipment      `json:"equipment,omitempty"`
	Checklist      []ChecklistItem `json:"checklist"`
	Photos         []Photo         `json:"photos"`
	Comments       string          `json:"comments"`
	Signature      string          `json:"signature,omitempty"`
	InspectionDate string          `json:"inspection_date"` // YYYY-MM-DD
}

// AnswerTally 三态答案统计
type AnswerTally struct {
	Sim int `json:"sim"`
	Nao int `json:"nao"`
	NA  int `json:"na"`
}

// Tally 统计答案分布，未选择项不计入
func Tally(items []ChecklistItem) AnswerTally {
	var t AnswerTally
	for _, item := range items {
		switch item.Answer {
		case AnswerYes:
			t.Sim++
		case AnswerNo:
			t.Nao++
		case AnswerNA:
			t.NA++
		}
	}
	return t
}
