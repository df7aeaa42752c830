// 이메일 본문 포맷터 (고정 플레인텍스트 템플릿)

package format

import (
	"fmt"
	"strings"

	"github.com/alert-relay/backend/internal/model"
)

const emailSubject = "Alert Notification"

// EmailMessage - 전송할 이메일 제목/본문
// 수신자 목록은 설정에서 오기 때문에 포맷터는 관여하지 않는다
type EmailMessage struct {
	Subject string
	Body    string
}

// Email - AlertRecord를 플레인텍스트 이메일로 변환 (순수 함수)
func Email(rec *model.AlertRecord) EmailMessage {
	description := rec.Description
	if description == "" {
		description = "No description provided"
	}

	incidentURL := rec.IncidentURL
	if incidentURL == "" {
		incidentURL = "Not provided"
	}

	body := fmt.Sprintf(`Alert Details:
=============

Summary: %s
Severity: %s
Source: %s

Description:
%s

Additional Details:
%s

Incident URL: %s
`, rec.Summary, rec.RawSeverity, rec.Source, description, detailLines(rec.Details), incidentURL)

	return EmailMessage{Subject: emailSubject, Body: body}
}

// detailLines - custom details를 "key: value" 한 줄씩으로 (입력 순서 유지)
func detailLines(details []model.Detail) string {
	if len(details) == 0 {
		return "No additional details provided"
	}
	lines := make([]string, 0, len(details))
	for _, d := range details {
		lines = append(lines, fmt.Sprintf("%s: %s", d.Key, d.Value))
	}
	return strings.Join(lines, "\n")
}
