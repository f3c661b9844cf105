package api

import (
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/Nightmare-De9/Omegle-Lite/internal/api/handlers"
	"github.com/Nightmare-De9/Omegle-Lite/internal/api/middleware"
	"github.com/Nightmare-De9/Omegle-Lite/internal/config"
	"github.com/Nightmare-De9/Omegle-Lite/internal/service"
	"github.com/Nightmare-De9/Omegle-Lite/internal/websocket"
)

// SetupRouter API 라우터 설정
func SetupRouter(cfg *config.Config, matchmaker *service.Matchmaker, hub *websocket.Hub) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 전역 미들웨어
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Handler 초기화
	wsHandler := handlers.NewWebSocketHandler(hub)
	statsHandler := handlers.NewStatsHandler(matchmaker)

	// Health check
	router.GET("/health", handlers.HealthCheck)

	// 엔진 통계
	router.GET("/stats", middleware.GeneralAPIRateLimit(), statsHandler.GetStats)

	// WebSocket endpoint
	router.GET("/ws", wsHandler.HandleWebSocket)

	// 정적 클라이언트 자산
	router.StaticFile("/", filepath.Join(cfg.StaticDir, "index.html"))
	router.Static("/public", cfg.StaticDir)

	return router
}
