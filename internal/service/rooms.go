package service

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Nightmare-De9/Omegle-Lite/internal/models"
)

// assignRoom 두 레코드에 공유 룸 ID 설정. 양쪽 모두 미배정 상태가 전제
func (m *Matchmaker) assignRoom(a, b *models.Client, roomID string) {
	a.RoomID = roomID
	b.RoomID = roomID
}

// leaveRoom 룸 해체. 떠나는 쪽이 아닌 상대에게만 partner_left를 보낸다.
// 룸이 없으면 no-op
func (m *Matchmaker) leaveRoom(client *models.Client, reason string) {
	if !client.InRoom() {
		return
	}

	roomID := client.RoomID
	client.RoomID = ""

	partner, ok := m.clients.PartnerOf(client.ID, roomID)
	if !ok {
		return
	}

	partner.RoomID = ""
	m.send(partner.ID, models.PartnerLeftEvent(reason))

	m.logger.Debug("Room dissolved",
		zap.String("roomId", roomID),
		zap.String("leftBy", client.ID),
		zap.String("reason", reason))
}

// relayText 채팅 본문을 룸 상대에게 전달한다.
// 본문은 릴레이 경로에서 길이 제한되며, 상대가 이미 떠났으면 버려진다
func (m *Matchmaker) relayText(client *models.Client, body string) {
	if !client.InRoom() {
		return
	}

	partner, ok := m.clients.PartnerOf(client.ID, client.RoomID)
	if !ok {
		return
	}

	m.send(partner.ID, models.TextEvent(client.ID, truncate(body, m.maxTextLen)))
}

// relaySignal 시그널링 페이로드를 해석 없이 그대로 상대에게 전달한다
func (m *Matchmaker) relaySignal(client *models.Client, data json.RawMessage) {
	if !client.InRoom() {
		return
	}

	partner, ok := m.clients.PartnerOf(client.ID, client.RoomID)
	if !ok {
		return
	}

	m.send(partner.ID, models.SignalEvent(client.ID, data))
}

// truncate 문자 수 기준 절단 (멀티바이트 안전)
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
