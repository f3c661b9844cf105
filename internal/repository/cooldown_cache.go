package repository

import (
	"strings"
	"time"
)

// CooldownCache 최근 페어링된 쌍의 마지막 매칭 시각.
// 키는 두 연결 ID의 정준 순서 결합이라 방향과 무관하다.
type CooldownCache struct {
	pairs map[string]time.Time
}

func NewCooldownCache() *CooldownCache {
	return &CooldownCache{
		pairs: make(map[string]time.Time),
	}
}

func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return strings.Join([]string{a, b}, "|")
}

// Stamp 페어링 시각 기록
func (c *CooldownCache) Stamp(a, b string, now time.Time) {
	c.pairs[pairKey(a, b)] = now
}

// LastPaired 해당 쌍의 마지막 페어링 시각
func (c *CooldownCache) LastPaired(a, b string) (time.Time, bool) {
	ts, ok := c.pairs[pairKey(a, b)]
	return ts, ok
}

// Sweep 쿨다운 구간을 벗어난 항목 제거. 제거 수를 반환한다.
// 정확성은 Sweep에 의존하지 않으며 메모리 상한만을 위한 것이다.
func (c *CooldownCache) Sweep(now time.Time, window time.Duration) int {
	removed := 0
	for key, ts := range c.pairs {
		if now.Sub(ts) >= window {
			delete(c.pairs, key)
			removed++
		}
	}
	return removed
}

// Len 현재 항목 수
func (c *CooldownCache) Len() int {
	return len(c.pairs)
}
