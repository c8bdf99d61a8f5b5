package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"desktop-assistant/internal/model"
	"desktop-assistant/pkg/response"
)

// Health response constants.
const (
	HealthVersion = "1.0.0"
	ServiceName   = "desktop-assistant"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready unless the session is ending.
// @Summary Readiness Check
// @Description Check if the assistant accepts utterances
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Assistant is exiting"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	status := srv.assistant.Status()
	if status == model.StatusExiting {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: response.ErrorCodeUnavailable,
			Message:   "assistant is exiting",
		})
		return
	}
	response.OK(c, gin.H{
		"status":    "ready",
		"assistant": status,
		"service":   ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
