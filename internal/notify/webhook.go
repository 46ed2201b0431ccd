// Package notify delivers leader notifications to an optional external
// webhook. When no webhook URL is configured the submit flow only returns the
// acknowledgment list and nothing leaves the process.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// LeaderNotification 提交完成后推送给区域负责人webhook的载荷
type LeaderNotification struct {
	InspectionID  string    `json:"inspection_id"`
	OperatorName  string    `json:"operator_name"`
	EquipmentName string    `json:"equipment_name"`
	Sector        string    `json:"sector"`
	Leaders       []string  `json:"leaders"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// WebhookNotifier webhook通知客户端
type WebhookNotifier struct {
	url        string
	httpClient *http.Client
}

// NewWebhookNotifier 创建webhook通知客户端
func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NotifyLeaders 推送通知；失败只返回错误，调用方记日志不阻断提交
func (n *WebhookNotifier) NotifyLeaders(ctx context.Context, notification LeaderNotification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
