package entity

import "time"

// InspectionRecord 已提交的检查记录（仅追加，最新在前）
type InspectionRecord struct {
	ID             string          `json:"id"` // 提交时刻的毫秒时间戳
	Operator       Operator        `json:"operator"`
	Equipment      Equipment       `json:"equipment"`
	Checklist      []ChecklistItem `json:"checklist"`
	Photos         []Photo         `json:"photos"`
	Comments       string          `json:"comments"`
	Signature      string          `json:"signature"`
	InspectionDate string          `json:"inspection_date"`
	SubmissionDate time.Time       `json:"submission_date"`
}

// ConnectionConfig 模拟数据库连接配置（原应用的演示功能，提交时只用于模拟延迟）
type ConnectionConfig struct {
	Host              string `json:"host"`
	Port              string `json:"port"`
	Database          string `json:"database"`
	User              string `json:"user"`
	Password          string `json:"password"`
	SimulateLatencyMS int    `json:"simulate_latency_ms"`
}
