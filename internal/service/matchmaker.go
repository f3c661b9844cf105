package service

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Nightmare-De9/Omegle-Lite/internal/config"
	"github.com/Nightmare-De9/Omegle-Lite/internal/models"
	"github.com/Nightmare-De9/Omegle-Lite/internal/repository"
)

// Notifier 아웃바운드 이벤트 전달 (fire-and-forget, 실패는 무시)
type Notifier interface {
	Send(clientID string, event models.Event)
}

// Matchmaker 매칭 큐와 룸/릴레이 엔진.
// 하나의 뮤텍스가 모든 상태 변경(명령 처리, 페어링, 스윕)을 직렬화하므로
// 저장소들은 자체 잠금 없이 서로에 대해 원자적으로 동작한다.
type Matchmaker struct {
	clients  *repository.ClientRepository
	queue    *repository.WaitQueue
	cooldown *repository.CooldownCache
	notifier Notifier
	logger   *zap.Logger

	matchDelay     time.Duration
	affinityWindow time.Duration
	pairCooldown   time.Duration
	sweepInterval  time.Duration
	estWaitMS      int
	maxTextLen     int

	// 테스트에서 교체 가능한 시계
	now func() time.Time

	mu       sync.Mutex
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
}

// NewMatchmaker Matchmaker 생성
func NewMatchmaker(
	clients *repository.ClientRepository,
	queue *repository.WaitQueue,
	cooldown *repository.CooldownCache,
	notifier Notifier,
	cfg *config.Config,
) *Matchmaker {
	logger, _ := zap.NewProduction()

	return &Matchmaker{
		clients:        clients,
		queue:          queue,
		cooldown:       cooldown,
		notifier:       notifier,
		logger:         logger,
		matchDelay:     cfg.MatchDelay,
		affinityWindow: cfg.AffinityWindow,
		pairCooldown:   cfg.PairCooldown,
		sweepInterval:  cfg.SweepInterval,
		estWaitMS:      cfg.EstWaitMS,
		maxTextLen:     cfg.MaxTextLen,
		now:            time.Now,
		stopChan:       make(chan struct{}),
	}
}

// SetNotifier 이벤트 싱크 연결 (허브와의 상호 참조 해소용)
func (m *Matchmaker) SetNotifier(n Notifier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifier = n
}

// Start 쿨다운 스윕 루프 시작
func (m *Matchmaker) Start() {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return
	}
	m.running = true
	m.mu.Unlock()

	m.logger.Info("Starting Matchmaker", zap.Duration("sweepInterval", m.sweepInterval))

	m.wg.Add(1)
	go m.sweepLoop()
}

// Stop 스윕 루프 중지
func (m *Matchmaker) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	m.mu.Unlock()

	close(m.stopChan)
	m.wg.Wait()
	m.logger.Info("Matchmaker stopped")
}

// sweepLoop 주기적으로 만료된 쿨다운 항목 제거
func (m *Matchmaker) sweepLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweepCooldown()
		case <-m.stopChan:
			return
		}
	}
}

// sweepCooldown 쿨다운 캐시 정리 (정확성이 아닌 메모리 상한용)
func (m *Matchmaker) sweepCooldown() {
	m.mu.Lock()
	removed := m.cooldown.Sweep(m.now(), m.pairCooldown)
	remaining := m.cooldown.Len()
	m.mu.Unlock()

	if removed > 0 {
		m.logger.Debug("Cooldown cache swept",
			zap.Int("removed", removed),
			zap.Int("remaining", remaining))
	}
}

// send 아웃바운드 이벤트 전달. 수신자가 사라졌거나 싱크가 없으면 버려진다
func (m *Matchmaker) send(clientID string, event models.Event) {
	if m.notifier != nil {
		m.notifier.Send(clientID, event)
	}
}

// Stats 현재 엔진 상태 요약
type Stats struct {
	Clients         int `json:"clients"`
	WaitingText     int `json:"waiting_text"`
	WaitingVideo    int `json:"waiting_video"`
	OpenRooms       int `json:"open_rooms"`
	CooldownEntries int `json:"cooldown_entries"`
}

// GetStats 통계 스냅샷
func (m *Matchmaker) GetStats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Stats{
		Clients:         m.clients.Count(),
		WaitingText:     m.queue.Len(models.ModeText),
		WaitingVideo:    m.queue.Len(models.ModeVideo),
		OpenRooms:       m.clients.RoomCount(),
		CooldownEntries: m.cooldown.Len(),
	}
}
