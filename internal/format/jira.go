// Jira 이슈 생성 페이로드 포맷터
//
// 다른 포맷터와 달리 출력이 AlertRecord와 sink 설정 둘 다에 의존한다.
// 테스트 가능성을 위해 설정은 항상 명시적 인자로 전달 (전역 상태 접근 없음)

package format

import (
	"fmt"
	"strings"

	"github.com/alert-relay/backend/internal/config"
	"github.com/alert-relay/backend/internal/model"
)

// JiraIssue - Jira REST API v2 이슈 생성 페이로드
type JiraIssue struct {
	Fields JiraFields `json:"fields"`
}

type JiraFields struct {
	Project     JiraProject   `json:"project"`
	Summary     string        `json:"summary"`
	Description string        `json:"description"`
	IssueType   JiraIssueType `json:"issuetype"`
	Assignee    *JiraAssignee `json:"assignee,omitempty"`
}

type JiraProject struct {
	Key string `json:"key"`
}

type JiraIssueType struct {
	Name string `json:"name"`
}

type JiraAssignee struct {
	AccountID string `json:"accountId"`
}

// Jira - AlertRecord를 Jira 이슈 생성 페이로드로 변환 (순수 함수)
//
// 이슈 타입은 "Task" 고정, assignee는 설정에 있을 때만 포함
func Jira(rec *model.AlertRecord, cfg config.JiraConfig) JiraIssue {
	description := fmt.Sprintf("Source: %s\nSeverity: %s\n\nAdditional Details:\n%s",
		rec.Source, rec.RawSeverity, jiraDetailLines(rec.Details))

	fields := JiraFields{
		Project:     JiraProject{Key: cfg.ProjectKey},
		Summary:     rec.Summary,
		Description: description,
		IssueType:   JiraIssueType{Name: "Task"},
	}
	if cfg.AssigneeID != "" {
		fields.Assignee = &JiraAssignee{AccountID: cfg.AssigneeID}
	}

	return JiraIssue{Fields: fields}
}

func jiraDetailLines(details []model.Detail) string {
	lines := make([]string, 0, len(details))
	for _, d := range details {
		lines = append(lines, fmt.Sprintf("%s: %s", d.Key, d.Value))
	}
	return strings.Join(lines, "\n")
}
