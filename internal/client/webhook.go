// 외부 채팅 webhook(Teams, Google Chat)으로 JSON을 전송하는 클라이언트
//
// 재시도/백오프 없음: 전송은 1회 시도이고 실패 처리는 호출자(service) 몫.
// 모든 아웃바운드 호출에 10초 타임아웃을 걸어 최악의 블로킹을 제한한다.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// WebhookClient 구조체 정의
type WebhookClient struct {
	httpClient *http.Client
}

// WebhookClient 객체 생성
func NewWebhookClient() *WebhookClient {
	return &WebhookClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Post - 단일 JSON POST 전송
//
// 2xx 응답이면 receipt 반환, 그 외에는 상태 코드와 응답 본문을 담은
// *DeliveryError 반환
func (c *WebhookClient) Post(ctx context.Context, sink, url string, payload any) (*DeliveryReceipt, error) {
	// JSON 직렬화
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	// HTTP 요청 생성
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// 요청 전송
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &DeliveryError{Sink: sink, Err: err}
	}
	defer resp.Body.Close()

	// 응답 읽기
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &DeliveryError{Sink: sink, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	// 2xx 외에는 전송 실패로 처리
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &DeliveryError{Sink: sink, StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return NewDeliveryReceipt(sink, resp.StatusCode, ""), nil
}
