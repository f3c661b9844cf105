package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nightmare-De9/Omegle-Lite/internal/api"
	"github.com/Nightmare-De9/Omegle-Lite/internal/config"
	"github.com/Nightmare-De9/Omegle-Lite/internal/repository"
	"github.com/Nightmare-De9/Omegle-Lite/internal/service"
	"github.com/Nightmare-De9/Omegle-Lite/internal/websocket"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env:            "test",
		StaticDir:      t.TempDir(),
		MatchDelay:     10 * time.Millisecond,
		AffinityWindow: 5 * time.Second,
		PairCooldown:   15 * time.Second,
		SweepInterval:  time.Minute,
		EstWaitMS:      1200,
		MaxTextLen:     2000,
	}

	matchmaker := service.NewMatchmaker(
		repository.NewClientRepository(),
		repository.NewWaitQueue(),
		repository.NewCooldownCache(),
		nil,
		cfg,
	)
	hub := websocket.NewHub(matchmaker, 0, 0)
	matchmaker.SetNotifier(hub)
	go hub.Run()

	return api.SetupRouter(cfg, matchmaker, hub)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "omegle-lite", body["service"])
}

func TestStatsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var stats service.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Zero(t, stats.Clients)
	assert.Zero(t, stats.OpenRooms)
}
