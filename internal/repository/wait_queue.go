package repository

import (
	"time"

	"github.com/Nightmare-De9/Omegle-Lite/internal/models"
)

// WaitQueue 모드별 대기 집합.
// 멤버십이 큐 표현의 전부이며 순서는 QueuedAt으로 필요할 때 계산한다.
type WaitQueue struct {
	waiting map[models.Mode]map[string]struct{}
}

func NewWaitQueue() *WaitQueue {
	return &WaitQueue{
		waiting: map[models.Mode]map[string]struct{}{
			models.ModeText:  make(map[string]struct{}),
			models.ModeVideo: make(map[string]struct{}),
		},
	}
}

// Enqueue 대기 집합에 추가하고 QueuedAt을 갱신한다.
// 이미 대기 중이면 QueuedAt만 갱신 (멱등)
func (q *WaitQueue) Enqueue(client *models.Client, now time.Time) bool {
	if !client.Mode.Valid() {
		return false
	}
	client.QueuedAt = now
	q.waiting[client.Mode][client.ID] = struct{}{}
	return true
}

// Dequeue 양쪽 모드 집합에서 무조건 제거 (현재 모드를 몰라도 됨)
func (q *WaitQueue) Dequeue(id string) {
	for _, set := range q.waiting {
		delete(set, id)
	}
}

// IsWaiting 어느 모드든 대기 중인지
func (q *WaitQueue) IsWaiting(id string) bool {
	for _, set := range q.waiting {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}

// Waiting 해당 모드의 대기 ID 스냅샷
func (q *WaitQueue) Waiting(mode models.Mode) []string {
	set := q.waiting[mode]
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}

// Len 해당 모드의 대기 수
func (q *WaitQueue) Len(mode models.Mode) int {
	return len(q.waiting[mode])
}
