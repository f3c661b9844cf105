package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port     string
	Env      string
	LogLevel string

	// 정적 클라이언트 자산 경로
	StaticDir string

	// CORS
	CORSAllowedOrigins []string

	// Matchmaking
	MatchDelay     time.Duration // enqueue 후 페어링 시도까지의 지연
	AffinityWindow time.Duration // 관심사 일치를 요구하는 초기 대기 구간
	PairCooldown   time.Duration // 동일 쌍 재매칭 금지 구간
	SweepInterval  time.Duration // 쿨다운 캐시 정리 주기
	EstWaitMS      int           // queued 이벤트에 실어 보내는 예상 대기 시간

	// Relay
	MaxTextLen int // 채팅 본문 최대 길이 (문자 수)

	// WebSocket rate limit (초당 명령 수)
	WSRateCapacity int64
	WSRateRefill   int64
}

func Load() (*Config, error) {
	// .env 파일 로드 (있는 경우)
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		StaticDir:          getEnv("STATIC_DIR", "./public"),
		CORSAllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		MatchDelay:         parseDuration(getEnv("MATCH_DELAY", "50ms")),
		AffinityWindow:     parseDuration(getEnv("AFFINITY_WINDOW", "5s")),
		PairCooldown:       parseDuration(getEnv("PAIR_COOLDOWN", "15s")),
		SweepInterval:      parseDuration(getEnv("SWEEP_INTERVAL", "1m")),
		EstWaitMS:          parseInt(getEnv("EST_WAIT_MS", "1200")),
		MaxTextLen:         parseInt(getEnv("MAX_TEXT_LEN", "2000")),
		WSRateCapacity:     int64(parseInt(getEnv("WS_RATE_CAPACITY", "20"))),
		WSRateRefill:       int64(parseInt(getEnv("WS_RATE_REFILL", "10"))),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func parseInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
