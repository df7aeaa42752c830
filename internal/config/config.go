// 환경변수 기반 설정 로딩 유틸
//
// 환경변수:
//   - PORT: 서버 포트 (default: 3000)
//   - SINK_KIND: /webhook 엔드포인트가 사용할 sink (teams|chat|email|jira)
//   - TEAMS_WEBHOOK_URL, GOOGLE_CHAT_WEBHOOK_URL
//   - SMTP_*, RECIPIENT_EMAILS (콤마 구분)
//   - JIRA_DOMAIN, JIRA_EMAIL, JIRA_API_TOKEN, JIRA_PROJECT_KEY, JIRA_ASSIGNEE_ID
//   - ADMIN_USERNAME, ADMIN_PASSWORD, JWT_SECRET, JWT_ACCESS_TTL
//   - AUDIT_LOG_DIR: 감사 로그 디렉토리 (빈 값이면 비활성화)

package config

import (
	"os"
	"strings"
)

type Config struct {
	Server ServerConfig
	Sink   SinkConfig
	Teams  TeamsConfig
	Chat   ChatConfig
	Email  EmailConfig
	Jira   JiraConfig
	Admin  AdminConfig
	Audit  AuditConfig
}

type ServerConfig struct {
	Port string
}

// SinkConfig - /webhook 단일 엔드포인트가 전달할 sink 종류
// teams, chat, email, jira 중 하나
type SinkConfig struct {
	Kind string
}

type TeamsConfig struct {
	WebhookURL string
}

type ChatConfig struct {
	WebhookURL string
}

type EmailConfig struct {
	SMTPHost   string
	SMTPPort   string
	Username   string
	Password   string
	From       string
	FromName   string
	Recipients []string
}

type JiraConfig struct {
	Domain     string
	Email      string
	APIToken   string
	ProjectKey string
	AssigneeID string
}

type AdminConfig struct {
	Username     string
	Password     string
	JWTSecret    string
	JWTAccessTTL string
}

type AuditConfig struct {
	Dir string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port: getenv("PORT", "3000"),
		},
		Sink: SinkConfig{
			Kind: getenv("SINK_KIND", "teams"),
		},
		Teams: TeamsConfig{
			WebhookURL: os.Getenv("TEAMS_WEBHOOK_URL"),
		},
		Chat: ChatConfig{
			WebhookURL: os.Getenv("GOOGLE_CHAT_WEBHOOK_URL"),
		},
		Email: EmailConfig{
			SMTPHost:   os.Getenv("SMTP_SERVER"),
			SMTPPort:   getenv("SMTP_PORT", "587"),
			Username:   os.Getenv("SMTP_USERNAME"),
			Password:   os.Getenv("SMTP_PASSWORD"),
			From:       os.Getenv("SMTP_FROM"),
			FromName:   os.Getenv("SMTP_FROM_NAME"),
			Recipients: splitList(os.Getenv("RECIPIENT_EMAILS")),
		},
		Jira: JiraConfig{
			Domain:     os.Getenv("JIRA_DOMAIN"),
			Email:      os.Getenv("JIRA_EMAIL"),
			APIToken:   os.Getenv("JIRA_API_TOKEN"),
			ProjectKey: os.Getenv("JIRA_PROJECT_KEY"),
			AssigneeID: os.Getenv("JIRA_ASSIGNEE_ID"),
		},
		Admin: AdminConfig{
			Username:     getenv("ADMIN_USERNAME", "admin"),
			Password:     os.Getenv("ADMIN_PASSWORD"),
			JWTSecret:    os.Getenv("JWT_SECRET"),
			JWTAccessTTL: getenv("JWT_ACCESS_TTL", "15m"),
		},
		Audit: AuditConfig{
			Dir: os.Getenv("AUDIT_LOG_DIR"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// splitList - 콤마 구분 리스트 파싱 (빈 항목 제거, 공백 트림)
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
