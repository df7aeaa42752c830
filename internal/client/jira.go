// Jira REST API 클라이언트
//
// Basic auth(email:apiToken)로 https://{domain}/rest/api/2/issue에
// 이슈 생성 요청을 1회 전송한다. 재시도 없음.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alert-relay/backend/internal/config"
)

// JiraClient 구조체 정의
type JiraClient struct {
	httpClient *http.Client
}

// JiraClient 객체 생성
func NewJiraClient() *JiraClient {
	return &JiraClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// CreateIssue - 이슈 생성 요청 전송
//
// 2xx 외의 응답은 상태 코드와 본문을 담은 *DeliveryError로 반환
func (c *JiraClient) CreateIssue(ctx context.Context, cfg config.JiraConfig, issue any) (*DeliveryReceipt, error) {
	payload, err := json.Marshal(issue)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal issue: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, issueURL(cfg.Domain), bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(cfg.Email, cfg.APIToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &DeliveryError{Sink: "jira", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &DeliveryError{Sink: "jira", Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &DeliveryError{Sink: "jira", StatusCode: resp.StatusCode, Body: string(body)}
	}

	return NewDeliveryReceipt("jira", resp.StatusCode, ""), nil
}

// issueURL - 스킴/끝 슬래시를 정리한 이슈 생성 엔드포인트 URL
func issueURL(domain string) string {
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimSuffix(domain, "/")
	return fmt.Sprintf("https://%s/rest/api/2/issue", domain)
}
