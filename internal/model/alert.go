// PagerDuty 스타일 인바운드 알림 페이로드 및 정규화된 AlertRecord 정의
// handler, service, format 레이어에서 공통으로 사용하기 때문에 model 레이어에 별도로 정의

package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// 필수 필드가 비어있을 때 사용하는 기본값
const FallbackValue = "N/A"

// EventAction 정규화 결과값
const (
	ActionTrigger     = "trigger"
	ActionAcknowledge = "acknowledge"
	ActionResolve     = "resolve"
	ActionUnknown     = "unknown"
)

// Severity 정규화 결과값
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
	SeverityOther    = "other"
)

// WebhookPayload - 인바운드 웹훅 페이로드 (PagerDuty Events API v2 형태)
type WebhookPayload struct {
	EventAction string        `json:"event_action"`
	Payload     *AlertPayload `json:"payload"`
	Links       []Link        `json:"links"`
	Images      []Image       `json:"images"`
	Client      string        `json:"client"`
	ClientURL   string        `json:"client_url"`
	DedupKey    string        `json:"dedup_key"`
	RoutingKey  string        `json:"routing_key"`
}

// AlertPayload - 페이로드 내부의 알림 본문
// CustomDetails는 입력 순서를 보존하기 위해 RawMessage로 받는다
type AlertPayload struct {
	Summary       string          `json:"summary"`
	Severity      string          `json:"severity"`
	Source        string          `json:"source"`
	Component     string          `json:"component"`
	Group         string          `json:"group"`
	Class         string          `json:"class"`
	Description   string          `json:"description"`
	IncidentURL   string          `json:"incident_url"`
	Timestamp     string          `json:"timestamp"`
	CustomDetails json.RawMessage `json:"custom_details"`
}

// Link - 알림에 첨부된 링크
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Image - 알림에 첨부된 이미지
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Detail - custom_details의 키-값 한 쌍 (문자열화된 값)
type Detail struct {
	Key   string
	Value string
}

// AlertRecord - 정규화된 알림 레코드
//
// 파싱 시점에 한 번 생성되는 불변 값으로, 요청 처리가 끝나면 버려진다.
// 모든 옵션 필드는 FallbackValue로 채워져 있어 formatter가 nil 가드 없이 접근 가능.
type AlertRecord struct {
	EventAction string // trigger | acknowledge | resolve | unknown

	Summary     string
	Severity    string // critical | warning | info | other
	RawSeverity string // 표시용 원본 값 (없으면 FallbackValue)
	Source      string
	Component   string
	Group       string
	Class       string
	Description string
	IncidentURL string
	Timestamp   string

	Details []Detail
	Links   []Link
	Images  []Image

	ClientName string
	ClientURL  string

	DedupKey   string
	RoutingKey string
}

// ValidationError - 인바운드 페이로드 구조 검증 실패
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid alert payload: " + e.Reason
}

// ParseAlert - 인바운드 JSON을 AlertRecord로 파싱
//
// payload 필드 또는 payload.summary가 없으면 *ValidationError 반환.
// event_action과 severity는 정의된 enum 값으로 정규화하고,
// 나머지 옵션 필드는 FallbackValue로 기본값 처리한다.
func ParseAlert(raw []byte) (*AlertRecord, error) {
	var in WebhookPayload
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}
	if in.Payload == nil {
		return nil, &ValidationError{Reason: "missing payload field"}
	}
	if in.Payload.Summary == "" {
		return nil, &ValidationError{Reason: "missing payload.summary"}
	}

	details, err := parseCustomDetails(in.Payload.CustomDetails)
	if err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("invalid custom_details: %v", err)}
	}

	rawSeverity := in.Payload.Severity
	if rawSeverity == "" {
		rawSeverity = FallbackValue
	}

	return &AlertRecord{
		EventAction: normalizeAction(in.EventAction),
		Summary:     in.Payload.Summary,
		Severity:    normalizeSeverity(in.Payload.Severity),
		RawSeverity: rawSeverity,
		Source:      fallback(in.Payload.Source),
		Component:   fallback(in.Payload.Component),
		Group:       fallback(in.Payload.Group),
		Class:       fallback(in.Payload.Class),
		Description: in.Payload.Description,
		IncidentURL: in.Payload.IncidentURL,
		Timestamp:   in.Payload.Timestamp,
		Details:     details,
		Links:       in.Links,
		Images:      in.Images,
		ClientName:  in.Client,
		ClientURL:   in.ClientURL,
		DedupKey:    fallback(in.DedupKey),
		RoutingKey:  fallback(in.RoutingKey),
	}, nil
}

func normalizeAction(action string) string {
	switch action {
	case ActionTrigger, ActionAcknowledge, ActionResolve:
		return action
	default:
		return ActionUnknown
	}
}

func normalizeSeverity(severity string) string {
	switch severity {
	case SeverityCritical, SeverityWarning, SeverityInfo:
		return severity
	default:
		return SeverityOther
	}
}

func fallback(val string) string {
	if val == "" {
		return FallbackValue
	}
	return val
}

// parseCustomDetails - custom_details 오브젝트를 입력 순서 그대로 Detail 리스트로 변환
//
// encoding/json의 map은 키 순서를 보존하지 않으므로 토큰 단위로 디코딩한다.
// 값 문자열화 규칙 (결정적):
//   - 문자열: 그대로
//   - 숫자/불리언/null: 리터럴 텍스트
//   - 오브젝트/배열: 컴팩트 JSON 텍스트
func parseCustomDetails(raw json.RawMessage) ([]Detail, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("custom_details must be an object")
	}

	var details []Detail
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", keyTok)
		}

		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return nil, err
		}
		details = append(details, Detail{Key: key, Value: stringifyValue(val)})
	}
	return details, nil
}

func stringifyValue(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return ""
	}

	// 문자열 값은 따옴표를 벗긴다
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}

	// 오브젝트/배열은 컴팩트 JSON으로
	if trimmed[0] == '{' || trimmed[0] == '[' {
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err == nil {
			return buf.String()
		}
	}

	// 숫자, 불리언, null은 리터럴 그대로
	return trimmed
}
