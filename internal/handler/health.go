package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 헬스체크 엔드포인트
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "up"})
}

// 루트 엔드포인트
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Alert relay server is running",
	})
}
