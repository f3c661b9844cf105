package websocket

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Nightmare-De9/Omegle-Lite/internal/models"
	"github.com/Nightmare-De9/Omegle-Lite/pkg/ratelimit"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer (SDP offers can run several KB)
	maxMessageSize = 16 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: 프로덕션에서는 특정 origin만 허용
		return true
	},
}

// Client WebSocket 연결 하나
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan models.Event
	id      string
	limiter *ratelimit.TokenBucket
	logger  *zap.Logger
}

// NewClient 클라이언트 생성
func NewClient(hub *Hub, conn *websocket.Conn, id string) *Client {
	var limiter *ratelimit.TokenBucket
	if hub.rateCapacity > 0 {
		limiter = ratelimit.NewTokenBucket(hub.rateCapacity, hub.rateRefill)
	}

	return &Client{
		hub:     hub,
		conn:    conn,
		send:    make(chan models.Event, 256),
		id:      id,
		limiter: limiter,
		logger:  hub.logger,
	}
}

// readPump 인바운드 명령 수신 (핑/퐁 유지)
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket read error",
					zap.String("clientId", c.id),
					zap.Error(err))
			}
			break
		}

		// 과도한 명령은 버린다 (연결은 유지)
		if c.limiter != nil && !c.limiter.Allow() {
			c.logger.Warn("Command rate limit exceeded, dropping",
				zap.String("clientId", c.id))
			continue
		}

		c.hub.handler.HandleCommand(c.id, data)
	}
}

// writePump 이벤트를 JSON으로 직렬화해 전송
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub가 채널을 닫음
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			data, err := json.Marshal(event)
			if err != nil {
				c.logger.Error("Failed to marshal event",
					zap.String("clientId", c.id),
					zap.Error(err))
				continue
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ServeWs WebSocket 연결 업그레이드 및 클라이언트 시작
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.logger.Error("Failed to upgrade WebSocket connection", zap.Error(err))
		return
	}

	id := hub.handler.Connect()
	client := NewClient(hub, conn, id)
	client.hub.register <- client

	// 고루틴 시작
	go client.writePump()
	go client.readPump()
}
