package models

import "encoding/json"

// 인바운드 명령 이름
const (
	CmdMatch  = "match"
	CmdCancel = "cancel"
	CmdLeave  = "leave"
	CmdText   = "text"
	CmdSignal = "signal"
)

// 아웃바운드 이벤트 이름
const (
	EventHello       = "hello"
	EventQueued      = "queued"
	EventUnqueued    = "unqueued"
	EventPaired      = "paired"
	EventPartnerLeft = "partner_left"
	EventText        = "text"
	EventSignal      = "signal"
)

// Command 클라이언트 → 서버 메시지 (메시지당 명령 하나)
type Command struct {
	Cmd       string          `json:"cmd"`
	Mode      string          `json:"mode,omitempty"`
	Interests []string        `json:"interests,omitempty"`
	Reason    string          `json:"reason,omitempty"`
	Body      string          `json:"body,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Event 서버 → 클라이언트 메시지
type Event struct {
	Event     string          `json:"event"`
	ID        string          `json:"id,omitempty"`
	EstWaitMS int             `json:"est_wait_ms,omitempty"`
	RoomID    string          `json:"room_id,omitempty"`
	PartnerID string          `json:"partner_id,omitempty"`
	Mode      Mode            `json:"mode,omitempty"`
	Reason    string          `json:"reason,omitempty"`
	From      string          `json:"from,omitempty"`
	Body      string          `json:"body,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// HelloEvent 접속 직후 한 번 전송되는 식별자 통지
func HelloEvent(id string) Event {
	return Event{Event: EventHello, ID: id}
}

// QueuedEvent enqueue 확인
func QueuedEvent(estWaitMS int) Event {
	return Event{Event: EventQueued, EstWaitMS: estWaitMS}
}

// UnqueuedEvent cancel 확인
func UnqueuedEvent() Event {
	return Event{Event: EventUnqueued}
}

// PairedEvent 매칭 확정 통지
func PairedEvent(roomID, partnerID string, mode Mode) Event {
	return Event{Event: EventPaired, RoomID: roomID, PartnerID: partnerID, Mode: mode}
}

// PartnerLeftEvent 상대방 이탈 통지
func PartnerLeftEvent(reason string) Event {
	return Event{Event: EventPartnerLeft, Reason: reason}
}

// TextEvent 릴레이된 채팅 메시지
func TextEvent(from, body string) Event {
	return Event{Event: EventText, From: from, Body: body}
}

// SignalEvent 릴레이된 시그널링 페이로드
func SignalEvent(from string, data json.RawMessage) Event {
	return Event{Event: EventSignal, From: from, Data: data}
}
