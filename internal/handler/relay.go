package handler

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/alert-relay/backend/internal/client"
	"github.com/alert-relay/backend/internal/model"
	"github.com/alert-relay/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// relayService - 서비스 인터페이스
type relayService interface {
	Relay(ctx context.Context, raw []byte) (*client.DeliveryReceipt, error)
}

// RelayHandler - 단일 sink 웹훅 릴레이 핸들러
type RelayHandler struct {
	svc relayService
}

func NewRelayHandler(svc relayService) *RelayHandler {
	return &RelayHandler{svc: svc}
}

// Receive godoc
// @Summary Receive an alert webhook and relay it to the configured sink
// @Tags webhook
// @Accept json
// @Produce json
// @Success 200 {object} model.RelayResponse
// @Failure 400,500 {object} model.RelayResponse
// @Router /webhook [post]
func (h *RelayHandler) Receive(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "failed to read request body"})
		return
	}

	if _, err := h.svc.Relay(c.Request.Context(), raw); err != nil {
		status, message := relayErrorResponse(err)
		c.JSON(status, gin.H{"status": "error", "message": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Alert processed successfully"})
}

// relayErrorResponse - 에러 분류별 응답 상태/메시지 매핑
//
// 검증 실패는 클라이언트 에러, 전송/설정 실패는 서버 에러.
// 어떤 에러도 프로세스를 종료시키지 않는다.
func relayErrorResponse(err error) (int, string) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, verr.Error()
	}

	var derr *client.DeliveryError
	if errors.As(err, &derr) {
		log.Printf("[Relay] Delivery failed: %v", derr)
		return http.StatusInternalServerError, derr.Error()
	}

	var cerr *service.ConfigurationError
	if errors.As(err, &cerr) {
		log.Printf("[Relay] %v", cerr)
		return http.StatusInternalServerError, cerr.Error()
	}

	log.Printf("[Relay] Unexpected error: %v", err)
	return http.StatusInternalServerError, err.Error()
}
