package models

import (
	"strings"
	"time"
)

// Mode 매칭 카테고리 (같은 모드끼리만 매칭)
type Mode string

const (
	ModeText  Mode = "text"
	ModeVideo Mode = "video"
)

// ParseMode 클라이언트 입력을 Mode로 변환 ("video" 외에는 모두 text)
func ParseMode(s string) Mode {
	if s == string(ModeVideo) {
		return ModeVideo
	}
	return ModeText
}

// Valid 매칭 가능한 모드인지 확인
func (m Mode) Valid() bool {
	return m == ModeText || m == ModeVideo
}

// Client 라이브 연결 하나의 서버측 상태
type Client struct {
	ID        string
	Mode      Mode
	Interests map[string]struct{}
	RoomID    string    // 비어 있으면 미페어링
	QueuedAt  time.Time // enqueue 시점, FIFO 및 affinity window 판정에 사용
}

// InRoom 현재 룸에 속해 있는지
func (c *Client) InRoom() bool {
	return c.RoomID != ""
}

// NormalizeInterests 관심사 태그 정규화 (소문자, 공백 제거, 빈 값 제외)
func NormalizeInterests(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		set[tag] = struct{}{}
	}
	return set
}

// HasCommonInterest 두 관심사 집합에 공통 태그가 있는지
func HasCommonInterest(a, b map[string]struct{}) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for tag := range a {
		if _, ok := b[tag]; ok {
			return true
		}
	}
	return false
}
