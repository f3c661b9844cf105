package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nightmare-De9/Omegle-Lite/internal/service"
)

// StatsHandler 매칭 엔진 통계 조회
type StatsHandler struct {
	matchmaker *service.Matchmaker
}

// NewStatsHandler StatsHandler 생성
func NewStatsHandler(matchmaker *service.Matchmaker) *StatsHandler {
	return &StatsHandler{
		matchmaker: matchmaker,
	}
}

// GetStats 현재 대기/룸/연결 수 스냅샷
func (h *StatsHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.matchmaker.GetStats())
}
