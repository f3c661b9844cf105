package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Nightmare-De9/Omegle-Lite/internal/models"
)

// scheduleMatch 짧은 지연 후 해당 모드의 페어링을 시도한다.
// 대칭 match 명령이 곧 도착해 먼저 enqueue될 기회를 주기 위한
// 휴리스틱이며 정확성 요건은 아니다.
func (m *Matchmaker) scheduleMatch(mode models.Mode) {
	if m.matchDelay <= 0 {
		m.tryMatchLocked(mode)
		return
	}
	time.AfterFunc(m.matchDelay, func() {
		m.TryMatch(mode)
	})
}

// TryMatch 해당 모드의 대기 집합을 스캔해 한 쌍까지 확정한다.
// 언제 호출해도 안전하며 이미 페어링된 연결에 대해 멱등이다.
func (m *Matchmaker) TryMatch(mode models.Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tryMatchLocked(mode)
}

func (m *Matchmaker) tryMatchLocked(mode models.Mode) {
	ids := m.queue.Waiting(mode)
	if len(ids) < 2 {
		return
	}

	// 사라진 레코드 제외 후 대기 시작 시각 오름차순 정렬 (FIFO 공정성)
	candidates := make([]*models.Client, 0, len(ids))
	for _, id := range ids {
		if client, ok := m.clients.Get(id); ok {
			candidates = append(candidates, client)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].QueuedAt.Before(candidates[j].QueuedAt)
	})

	now := m.now()

	for i := 0; i < len(candidates); i++ {
		a := candidates[i]
		for j := i + 1; j < len(candidates); j++ {
			b := candidates[j]

			if a.InRoom() || b.InRoom() {
				continue
			}

			// 즉시 재매칭 방지
			if last, ok := m.cooldown.LastPaired(a.ID, b.ID); ok && now.Sub(last) < m.pairCooldown {
				continue
			}

			// 대기 초반에는 관심사 겹침을 요구한다.
			// 둘 중 짧은 대기 시간이 기준이며, 창이 지나면 누구와도 매칭된다.
			if m.needsOverlap(a, b, now) &&
				len(a.Interests) > 0 && len(b.Interests) > 0 &&
				!models.HasCommonInterest(a.Interests, b.Interests) {
				continue
			}

			m.commitPair(a, b, mode, now)
			return // 호출당 한 쌍만
		}
	}
}

// needsOverlap 두 후보가 아직 affinity window 안에 있는지
func (m *Matchmaker) needsOverlap(a, b *models.Client, now time.Time) bool {
	minWait := now.Sub(a.QueuedAt)
	if waitB := now.Sub(b.QueuedAt); waitB < minWait {
		minWait = waitB
	}
	return minWait < m.affinityWindow
}

// commitPair 양쪽을 원자적으로 dequeue하고 공유 룸 ID를 부여한다
func (m *Matchmaker) commitPair(a, b *models.Client, mode models.Mode, now time.Time) {
	roomID := uuid.NewString()

	m.queue.Dequeue(a.ID)
	m.queue.Dequeue(b.ID)
	m.assignRoom(a, b, roomID)
	m.cooldown.Stamp(a.ID, b.ID, now)

	m.send(a.ID, models.PairedEvent(roomID, b.ID, mode))
	m.send(b.ID, models.PairedEvent(roomID, a.ID, mode))

	m.logger.Info("Pair committed",
		zap.String("roomId", roomID),
		zap.String("mode", string(mode)),
		zap.String("clientA", a.ID),
		zap.String("clientB", b.ID))
}
