package main

import (
	"log"

	"github.com/alert-relay/backend/internal/audit"
	"github.com/alert-relay/backend/internal/client"
	"github.com/alert-relay/backend/internal/config"
	"github.com/alert-relay/backend/internal/handler"
	"github.com/alert-relay/backend/internal/service"
	"github.com/alert-relay/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env 파일 로딩 (없으면 환경변수만 사용)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	cfg := config.Load()

	// 감사 로그 (AUDIT_LOG_DIR 미설정 시 비활성화)
	auditLog := audit.NewLogger(cfg.Audit.Dir)
	defer auditLog.Close()

	authSvc, err := service.NewAuthService(cfg.Admin)
	if err != nil {
		log.Fatalf("Failed to init auth service: %v", err)
	}

	// 팀 레지스트리는 메모리 전용 (재시작 시 소실)
	teams := store.NewMemoryTeamStore()

	webhookClient := client.NewWebhookClient()
	relaySvc := service.NewRelayService(cfg, webhookClient, client.NewMailClient(), client.NewJiraClient(), auditLog)
	teamSvc := service.NewTeamRelayService(teams, webhookClient, auditLog)

	// Gin의 기본 라우터 생성
	router := gin.Default()

	// 헬스체크 및 루트 엔드포인트
	router.GET("/", handler.Root)
	router.GET("/health", handler.Health)

	// 단일 sink 릴레이 엔드포인트
	router.POST("/webhook", handler.NewRelayHandler(relaySvc).Receive)

	// 관리자 토큰 발급
	router.POST("/auth/login", handler.NewAuthHandler(authSvc).Login)

	// 멀티테넌트 Teams 표면
	// 팀 등록 시 라우트를 늘리지 않고 단일 파라미터 라우트로 처리
	teamHandler := handler.NewTeamHandler(teamSvc, teams)
	admin := router.Group("/", handler.AdminAuth(authSvc))
	admin.POST("/register", teamHandler.Register)
	admin.GET("/teams", teamHandler.ListTeams)
	router.POST("/:teamId", handler.TeamAuth(teams), teamHandler.Notify)

	log.Printf("Webhook server listening on port %s (sink=%s)", cfg.Server.Port, cfg.Sink.Kind)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
