package repository

import (
	"github.com/google/uuid"

	"github.com/Nightmare-De9/Omegle-Lite/internal/models"
)

// ClientRepository 라이브 연결 레코드 저장소 (인메모리).
// 자체 잠금 없음: 모든 접근은 service.Matchmaker가 직렬화한다.
type ClientRepository struct {
	clients map[string]*models.Client
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{
		clients: make(map[string]*models.Client),
	}
}

// Register 새 연결 레코드 생성 (ID는 재사용되지 않음)
func (r *ClientRepository) Register() *models.Client {
	client := &models.Client{
		ID:        uuid.NewString(),
		Mode:      models.ModeText,
		Interests: make(map[string]struct{}),
	}
	r.clients[client.ID] = client
	return client
}

// Get ID로 레코드 조회. 없으면 false (호출자는 조용히 no-op)
func (r *ClientRepository) Get(id string) (*models.Client, bool) {
	client, ok := r.clients[id]
	return client, ok
}

// Unregister 레코드 제거. 룸 정리와 dequeue는 호출자 책임
func (r *ClientRepository) Unregister(id string) {
	delete(r.clients, id)
}

// PartnerOf 같은 roomID를 공유하는 유일한 상대를 찾는다.
// 룸은 별도 엔티티 없이 공유 ID로만 표현되므로 스캔으로 해석한다.
func (r *ClientRepository) PartnerOf(id, roomID string) (*models.Client, bool) {
	if roomID == "" {
		return nil, false
	}
	for otherID, other := range r.clients {
		if otherID != id && other.RoomID == roomID {
			return other, true
		}
	}
	return nil, false
}

// Count 라이브 연결 수
func (r *ClientRepository) Count() int {
	return len(r.clients)
}

// RoomCount 현재 열린 룸 수
func (r *ClientRepository) RoomCount() int {
	paired := 0
	for _, client := range r.clients {
		if client.InRoom() {
			paired++
		}
	}
	return paired / 2
}
