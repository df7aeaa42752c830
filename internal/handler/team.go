package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/alert-relay/backend/internal/client"
	"github.com/alert-relay/backend/internal/model"
	"github.com/alert-relay/backend/internal/store"
	"github.com/gin-gonic/gin"
)

// teamRelayService - 서비스 인터페이스
type teamRelayService interface {
	RelayToTeam(ctx context.Context, teamID string, raw []byte) (*client.DeliveryReceipt, error)
}

// TeamHandler - 멀티테넌트 Teams 릴레이 핸들러
type TeamHandler struct {
	svc   teamRelayService
	teams store.TeamStore
}

func NewTeamHandler(svc teamRelayService, teams store.TeamStore) *TeamHandler {
	return &TeamHandler{svc: svc, teams: teams}
}

// registerRequest - 팀 등록 요청 바디
// 팀 자격 증명은 X-Username / X-Password 헤더로 전달된다
type registerRequest struct {
	TeamID     string `json:"teamId"`
	WebhookURL string `json:"webhookUrl"`
}

// Register godoc
// @Summary Register a team webhook (admin only)
// @Tags teams
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param request body registerRequest true "Team registration"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /register [post]
func (h *TeamHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	username := c.GetHeader("X-Username")
	password := c.GetHeader("X-Password")

	// 누락 필드는 한 번에 전부 알려준다
	if req.TeamID == "" || req.WebhookURL == "" || username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required fields",
			"details": gin.H{
				"teamId":     requiredOrProvided(req.TeamID, "required"),
				"webhookUrl": requiredOrProvided(req.WebhookURL, "required"),
				"username":   requiredOrProvided(username, "required in X-Username header"),
				"password":   requiredOrProvided(password, "required in X-Password header"),
			},
		})
		return
	}

	if err := h.teams.Register(req.TeamID, req.WebhookURL, username, password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Printf("[Team] Registered team %s (webhook=%s)", req.TeamID, req.WebhookURL)
	c.JSON(http.StatusOK, model.RegisterResponse{
		Success: true,
		Message: fmt.Sprintf("Team %s registered successfully", req.TeamID),
	})
}

// ListTeams godoc
// @Summary List registered team IDs (admin only)
// @Tags teams
// @Produce json
// @Security BasicAuth
// @Success 200 {object} model.TeamListResponse
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	c.JSON(http.StatusOK, model.TeamListResponse{Teams: h.teams.List()})
}

// Notify godoc
// @Summary Relay an alert to a registered team's Teams webhook
// @Tags teams
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param teamId path string true "Team ID"
// @Success 200 {object} model.RegisterResponse
// @Failure 400,404,500 {object} model.ErrorResponse
// @Router /{teamId} [post]
func (h *TeamHandler) Notify(c *gin.Context) {
	teamID := c.Param("teamId")

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	if _, err := h.svc.RelayToTeam(c.Request.Context(), teamID, raw); err != nil {
		if errors.Is(err, store.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team webhook not found"})
			return
		}
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		log.Printf("[Team] Failed to send notification to team %s: %v", teamID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send notification"})
		return
	}

	c.JSON(http.StatusOK, model.RegisterResponse{Success: true, Message: "Notification sent successfully"})
}

func requiredOrProvided(val, hint string) string {
	if val == "" {
		return hint
	}
	return "provided"
}
