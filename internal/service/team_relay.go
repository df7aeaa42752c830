// 멀티테넌트 Teams 릴레이 비즈니스 로직
//
// 팀별 webhook URL은 요청마다 레지스트리에서 조회한다.
// (팀 등록 시 라우트를 동적으로 추가하는 대신 단일 파라미터 라우트 사용)

package service

import (
	"context"
	"log"

	"github.com/alert-relay/backend/internal/audit"
	"github.com/alert-relay/backend/internal/client"
	"github.com/alert-relay/backend/internal/format"
	"github.com/alert-relay/backend/internal/model"
	"github.com/alert-relay/backend/internal/store"
)

// TeamRelayService 구조체 정의
type TeamRelayService struct {
	teams    store.TeamStore
	webhook  webhookPoster
	auditLog *audit.Logger
}

// TeamRelayService 객체 생성
func NewTeamRelayService(teams store.TeamStore, webhook webhookPoster, auditLog *audit.Logger) *TeamRelayService {
	return &TeamRelayService{
		teams:    teams,
		webhook:  webhook,
		auditLog: auditLog,
	}
}

// RelayToTeam - 등록된 팀의 webhook URL로 Teams 카드 전송
//
// 미등록 팀이면 store.ErrTeamNotFound 반환 (404로 매핑됨)
func (s *TeamRelayService) RelayToTeam(ctx context.Context, teamID string, raw []byte) (*client.DeliveryReceipt, error) {
	team, err := s.teams.Lookup(teamID)
	if err != nil {
		return nil, err
	}

	s.auditLog.Log("Processing Alert for Team "+teamID, raw)

	rec, err := model.ParseAlert(raw)
	if err != nil {
		return nil, err
	}

	receipt, err := s.webhook.Post(ctx, SinkTeams, team.WebhookURL, format.Teams(rec))
	if err != nil {
		return nil, err
	}

	log.Printf("[TeamRelay] Delivered alert (team=%s, action=%s, receipt=%s)", teamID, rec.EventAction, receipt.ID)
	return receipt, nil
}
