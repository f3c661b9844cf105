package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nightmare-De9/Omegle-Lite/internal/api"
	"github.com/Nightmare-De9/Omegle-Lite/internal/config"
	"github.com/Nightmare-De9/Omegle-Lite/internal/repository"
	"github.com/Nightmare-De9/Omegle-Lite/internal/service"
	"github.com/Nightmare-De9/Omegle-Lite/internal/websocket"
	"github.com/Nightmare-De9/Omegle-Lite/pkg/logger"
)

func main() {
	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 로거 초기화
	logger.Init(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	logger.Info("Starting Omegle-Lite",
		"port", cfg.Port,
		"env", cfg.Env,
	)

	// 인메모리 저장소 초기화 (프로세스 수명 한정, 재시작 시 초기화)
	clients := repository.NewClientRepository()
	queue := repository.NewWaitQueue()
	cooldown := repository.NewCooldownCache()

	// 매칭 엔진 초기화 및 시작
	matchmaker := service.NewMatchmaker(clients, queue, cooldown, nil, cfg)

	// WebSocket Hub 초기화 및 시작
	hub := websocket.NewHub(matchmaker, cfg.WSRateCapacity, cfg.WSRateRefill)
	matchmaker.SetNotifier(hub)
	go hub.Run()

	matchmaker.Start()
	defer matchmaker.Stop()

	// 라우터 설정
	router := api.SetupRouter(cfg, matchmaker, hub)

	// 서버 설정
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 서버 시작 (고루틴)
	go func() {
		logger.Info("Server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown 대기
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// 10초 타임아웃으로 종료
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}
