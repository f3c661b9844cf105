package websocket

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Nightmare-De9/Omegle-Lite/internal/models"
)

// ConnectionHandler 인바운드 연결 이벤트/명령을 처리하는 프로토콜 쪽 핸들러
type ConnectionHandler interface {
	Connect() string
	HandleCommand(id string, raw []byte)
	Disconnect(id string)
}

// Hub WebSocket 연결 관리 및 이벤트 전달
type Hub struct {
	// 연결 ID별 클라이언트 저장
	clients map[string]*Client
	mu      sync.RWMutex

	// 등록/해제 채널
	register   chan *Client
	unregister chan *Client

	handler ConnectionHandler
	logger  *zap.Logger

	// 연결당 인바운드 명령 rate limit
	rateCapacity int64
	rateRefill   int64
}

// NewHub Hub 생성
func NewHub(handler ConnectionHandler, rateCapacity, rateRefill int64) *Hub {
	logger, _ := zap.NewProduction()
	return &Hub{
		clients:      make(map[string]*Client),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		handler:      handler,
		logger:       logger,
		rateCapacity: rateCapacity,
		rateRefill:   rateRefill,
	}
}

// Run Hub 실행
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)
		}
	}
}

// registerClient 클라이언트 등록 후 hello 이벤트 전송
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	h.clients[client.id] = client
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("WebSocket client registered",
		zap.String("clientId", client.id),
		zap.Int("totalClients", total))

	// 접속 직후 한 번 전송되는 식별자 통지
	h.Send(client.id, models.HelloEvent(client.id))
}

// unregisterClient 클라이언트 해제 및 연결 종료 전파
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	current, exists := h.clients[client.id]
	if exists && current == client {
		delete(h.clients, client.id)
		close(client.send)
	}
	total := len(h.clients)
	h.mu.Unlock()

	if !exists {
		return
	}

	h.logger.Info("WebSocket client unregistered",
		zap.String("clientId", client.id),
		zap.Int("totalClients", total))

	h.handler.Disconnect(client.id)
}

// Send 특정 클라이언트에게 이벤트 전송.
// 수신자가 없거나 송신 버퍼가 가득 차면 버려진다 (fire-and-forget)
func (h *Hub) Send(clientID string, event models.Event) {
	h.mu.RLock()
	client, exists := h.clients[clientID]
	h.mu.RUnlock()

	if !exists {
		return
	}

	select {
	case client.send <- event:
	default:
		h.logger.Warn("Client send channel full, dropping event",
			zap.String("clientId", clientID),
			zap.String("event", event.Event))
	}
}
