package http

import (
	"github.com/gin-gonic/gin"

	"desktop-assistant/internal/middleware"
)

// RegisterRoutes maps the assistant endpoints. Submissions are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/utterances", mw.RateLimit(), h.Submit)
	rg.GET("/transcript", h.Transcript)
	rg.GET("/status", h.Status)
}
