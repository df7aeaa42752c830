// 단일 sink 릴레이 비즈니스 로직
// handler에서 받은 원본 페이로드를 파싱하고 설정된 sink 포맷으로 변환해 전송
//
// 처리 흐름:
//  1. 감사 로그에 원본 페이로드 기록 (best-effort)
//  2. AlertRecord로 파싱 (실패 시 ValidationError로 즉시 반환, 전송 시도 없음)
//  3. sink 종류에 따라 포맷터 선택
//  4. 해당 delivery adapter로 1회 전송 (재시도 없음)

package service

import (
	"context"
	"fmt"
	"log"

	"github.com/alert-relay/backend/internal/audit"
	"github.com/alert-relay/backend/internal/client"
	"github.com/alert-relay/backend/internal/config"
	"github.com/alert-relay/backend/internal/format"
	"github.com/alert-relay/backend/internal/model"
)

// sink 종류
const (
	SinkTeams = "teams"
	SinkChat  = "chat"
	SinkEmail = "email"
	SinkJira  = "jira"
)

// ConfigurationError - 필수 설정 누락
// 서버 에러로 응답하되 프로세스를 죽이지 않는다
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// webhookPoster - HTTP webhook 전송 인터페이스 (테스트용 주입 지점)
type webhookPoster interface {
	Post(ctx context.Context, sink, url string, payload any) (*client.DeliveryReceipt, error)
}

// mailDeliverer - SMTP 전송 인터페이스
type mailDeliverer interface {
	Send(cfg config.EmailConfig, subject, body string) (*client.DeliveryReceipt, error)
}

// issueCreator - Jira 이슈 생성 인터페이스
type issueCreator interface {
	CreateIssue(ctx context.Context, cfg config.JiraConfig, issue any) (*client.DeliveryReceipt, error)
}

// RelayService 구조체 정의
type RelayService struct {
	cfg      config.Config
	webhook  webhookPoster
	mail     mailDeliverer
	jira     issueCreator
	auditLog *audit.Logger
}

// RelayService 객체 생성
func NewRelayService(cfg config.Config, webhook webhookPoster, mail mailDeliverer, jira issueCreator, auditLog *audit.Logger) *RelayService {
	return &RelayService{
		cfg:      cfg,
		webhook:  webhook,
		mail:     mail,
		jira:     jira,
		auditLog: auditLog,
	}
}

// Relay - 원본 페이로드를 파싱해 설정된 sink로 전송
func (s *RelayService) Relay(ctx context.Context, raw []byte) (*client.DeliveryReceipt, error) {
	// 감사 로그는 포맷팅 전에 기록, 실패해도 계속 진행
	s.auditLog.Log("Incoming Webhook Payload", raw)

	rec, err := model.ParseAlert(raw)
	if err != nil {
		return nil, err
	}

	receipt, err := s.deliver(ctx, rec)
	if err != nil {
		return nil, err
	}

	log.Printf("[Relay] Delivered alert (sink=%s, action=%s, receipt=%s)", receipt.Sink, rec.EventAction, receipt.ID)
	return receipt, nil
}

// deliver - sink 종류별 포맷 및 전송
func (s *RelayService) deliver(ctx context.Context, rec *model.AlertRecord) (*client.DeliveryReceipt, error) {
	switch s.cfg.Sink.Kind {
	case SinkTeams:
		if s.cfg.Teams.WebhookURL == "" {
			return nil, &ConfigurationError{Reason: "TEAMS_WEBHOOK_URL is not set"}
		}
		return s.webhook.Post(ctx, SinkTeams, s.cfg.Teams.WebhookURL, format.Teams(rec))

	case SinkChat:
		if s.cfg.Chat.WebhookURL == "" {
			return nil, &ConfigurationError{Reason: "GOOGLE_CHAT_WEBHOOK_URL is not set"}
		}
		return s.webhook.Post(ctx, SinkChat, s.cfg.Chat.WebhookURL, format.Chat(rec))

	case SinkEmail:
		if s.cfg.Email.SMTPHost == "" {
			return nil, &ConfigurationError{Reason: "SMTP_SERVER is not set"}
		}
		if len(s.cfg.Email.Recipients) == 0 {
			return nil, &ConfigurationError{Reason: "RECIPIENT_EMAILS is empty"}
		}
		msg := format.Email(rec)
		return s.mail.Send(s.cfg.Email, msg.Subject, msg.Body)

	case SinkJira:
		if s.cfg.Jira.Domain == "" || s.cfg.Jira.Email == "" || s.cfg.Jira.APIToken == "" {
			return nil, &ConfigurationError{Reason: "JIRA_DOMAIN/JIRA_EMAIL/JIRA_API_TOKEN are required"}
		}
		if s.cfg.Jira.ProjectKey == "" {
			return nil, &ConfigurationError{Reason: "JIRA_PROJECT_KEY is not set"}
		}
		return s.jira.CreateIssue(ctx, s.cfg.Jira, format.Jira(rec, s.cfg.Jira))

	default:
		return nil, &ConfigurationError{Reason: fmt.Sprintf("unknown sink kind %q", s.cfg.Sink.Kind)}
	}
}
