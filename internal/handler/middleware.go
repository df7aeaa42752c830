package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/alert-relay/backend/internal/service"
	"github.com/alert-relay/backend/internal/store"
	"github.com/gin-gonic/gin"
)

// AdminAuth - 관리자 표면 보호 미들웨어
//
// basic auth(환경변수 자격 증명) 또는 /auth/login으로 발급된 Bearer 토큰 허용
func AdminAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. basic auth 시도
		if username, password, ok := c.Request.BasicAuth(); ok {
			if err := authService.VerifyCredentials(username, password); err == nil {
				c.Next()
				return
			}
		}

		// 2. Bearer 토큰 시도
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if _, err := authService.ParseAccessToken(token); err == nil {
				c.Next()
				return
			}
		}

		c.Header("WWW-Authenticate", `Basic realm="Admin Area"`)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		c.Abort()
	}
}

// TeamAuth - 팀별 basic auth 미들웨어
//
// 등록 시 저장된 팀 자격 증명으로 검증하며, 미등록 팀은 404
func TeamAuth(teams store.TeamStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		teamID := c.Param("teamId")

		username, password, ok := c.Request.BasicAuth()
		if !ok {
			challengeTeam(c, teamID)
			return
		}

		if err := teams.Authenticate(teamID, username, password); err != nil {
			if errors.Is(err, store.ErrTeamNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
				c.Abort()
				return
			}
			challengeTeam(c, teamID)
			return
		}

		c.Next()
	}
}

func challengeTeam(c *gin.Context, teamID string) {
	c.Header("WWW-Authenticate", fmt.Sprintf(`Basic realm="Team %s Area"`, teamID))
	c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	c.Abort()
}
