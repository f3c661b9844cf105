package service

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Nightmare-De9/Omegle-Lite/internal/models"
)

// Connect 새 연결 등록. 반환된 ID는 연결 수명 동안 유지되며 재사용되지 않는다
func (m *Matchmaker) Connect() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	client := m.clients.Register()

	m.logger.Info("Client connected",
		zap.String("clientId", client.ID),
		zap.Int("totalClients", m.clients.Count()))

	return client.ID
}

// Disconnect 연결 종료 처리. 룸을 해체하고 대기열에서 빼고 등록을 해제한다.
// leave와 달리 재입큐하지 않는다
func (m *Matchmaker) Disconnect(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	client, ok := m.clients.Get(id)
	if !ok {
		return
	}

	m.leaveRoom(client, "disconnect")
	m.queue.Dequeue(id)
	m.clients.Unregister(id)

	m.logger.Info("Client disconnected",
		zap.String("clientId", id),
		zap.Int("totalClients", m.clients.Count()))
}

// HandleCommand 인바운드 명령 한 건 처리.
// 파싱 불가, 미지의 명령, 현재 상태에 맞지 않는 명령은 모두 조용히 무시된다
func (m *Matchmaker) HandleCommand(id string, raw []byte) {
	var cmd models.Command
	if err := json.Unmarshal(raw, &cmd); err != nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	client, ok := m.clients.Get(id)
	if !ok {
		return
	}

	switch cmd.Cmd {
	case models.CmdMatch:
		m.handleMatch(client, cmd)
	case models.CmdCancel:
		m.handleCancel(client)
	case models.CmdLeave:
		m.handleLeave(client, cmd.Reason)
	case models.CmdText:
		m.relayText(client, cmd.Body)
	case models.CmdSignal:
		m.relaySignal(client, cmd.Data)
	}
}

// handleMatch 모드/관심사를 갱신하고 재입큐한 뒤 페어링을 예약한다.
// 룸에 있었다면 먼저 떠난다
func (m *Matchmaker) handleMatch(client *models.Client, cmd models.Command) {
	m.leaveRoom(client, "left")

	client.Mode = models.ParseMode(cmd.Mode)
	client.Interests = models.NormalizeInterests(cmd.Interests)

	m.queue.Dequeue(client.ID)
	m.queue.Enqueue(client, m.now())

	m.send(client.ID, models.QueuedEvent(m.estWaitMS))
	m.scheduleMatch(client.Mode)
}

// handleCancel 대기 취소. 대기 중이 아니면 no-op
func (m *Matchmaker) handleCancel(client *models.Client) {
	if !m.queue.IsWaiting(client.ID) {
		return
	}

	m.queue.Dequeue(client.ID)
	m.send(client.ID, models.UnqueuedEvent())
}

// handleLeave "next": 룸을 떠나고 같은 모드로 자동 재입큐한다.
// 연결 종료 경로(Disconnect)와는 의도적으로 분리되어 있다
func (m *Matchmaker) handleLeave(client *models.Client, reason string) {
	if !client.InRoom() {
		return
	}

	if reason == "" {
		reason = "left"
	}
	m.leaveRoom(client, reason)

	m.queue.Enqueue(client, m.now())
	m.scheduleMatch(client.Mode)
}
