package handler

import (
	"errors"
	"net/http"

	"github.com/alert-relay/backend/internal/model"
	"github.com/alert-relay/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler - 관리자 토큰 발급 핸들러
type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Issue an admin access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "Admin credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 400,401,503 {object} model.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	token, err := h.svc.IssueAccessToken(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrMisconfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "token auth is not configured"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(h.svc.AccessTTL().Seconds()),
	})
}
