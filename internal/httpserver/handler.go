package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "desktop-assistant/internal/assistant/delivery/http"
	"desktop-assistant/internal/middleware"
)

const environmentProduction = "production"

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if srv.mode != gin.ReleaseMode {
		srv.gin.Use(gin.Logger())
	}

	ctx := context.Background()
	if srv.environment == environmentProduction {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers /api/v1/{utterances,transcript,status}.
func (srv HTTPServer) registerDomainRoutes() {
	mw := middleware.New(srv.l, srv.rateLimit)
	h := assistantHTTP.New(srv.l, srv.assistant)
	assistantHTTP.RegisterRoutes(srv.gin.Group("/api/v1"), h, mw)

	srv.l.Infof(context.Background(), "Assistant routes registered under /api/v1")
}
