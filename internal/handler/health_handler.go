package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"community-board-api/internal/database"
)

type HealthHandler struct {
	redisClient *redis.Client
}

func NewHealthHandler(redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		redisClient: redisClient,
	}
}

// Health godoc
// @Summary      헬스 체크
// @Description  프로세스 생존 여부를 반환합니다
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string "정상"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready godoc
// @Summary      준비 상태 체크
// @Description  데이터베이스와 redis 연결 상태를 확인합니다
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]interface{} "준비됨"
// @Failure      503 {object} map[string]interface{} "준비되지 않음"
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := gin.H{}
	ready := true

	if database.IsConnected() {
		checks["database"] = "ok"
	} else {
		checks["database"] = "down"
		ready = false
	}

	if h.redisClient != nil {
		if err := h.redisClient.Ping(c.Request.Context()).Err(); err != nil {
			checks["redis"] = "down"
			ready = false
		} else {
			checks["redis"] = "ok"
		}
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"ready": ready, "checks": checks})
}
