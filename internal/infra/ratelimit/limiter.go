package ratelimit

import (
	"sync"
	"time"
)

type LimiterConfig struct {
	Capacity  int           // 每個 key 的桶容量
	RatePS    int           // tokens/秒
	IdleTTL   time.Duration // 閒置多久後回收該 key 的桶
	SweepRate time.Duration // 回收檢查間隔
}

func GetDefaultLimiterConfig() LimiterConfig {
	return LimiterConfig{
		Capacity:  30,
		RatePS:    5,
		IdleTTL:   10 * time.Minute,
		SweepRate: time.Minute,
	}
}

type bucket struct {
	tokens   float64
	last     time.Time
	lastSeen time.Time
}

/*
KeyedLimiter 每個 key (呼叫者) 一個 token bucket, 取用時才依經過時間補充.
請使用 defer 呼叫 Stop()
*/
type KeyedLimiter struct {
	LimiterConfig
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
	cancel  chan struct{}
	once    sync.Once //for close background
}

/*
請使用 defer 呼叫 Stop()
*/
func NewKeyedLimiter(config *LimiterConfig) *KeyedLimiter {
	l := &KeyedLimiter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
		cancel:  make(chan struct{}),
	}

	defaults := GetDefaultLimiterConfig()
	if config != nil {
		l.LimiterConfig = *config
	} else {
		l.LimiterConfig = defaults
	}
	if l.Capacity <= 0 {
		l.Capacity = defaults.Capacity
	}
	if l.IdleTTL <= 0 {
		l.IdleTTL = defaults.IdleTTL
	}
	if l.SweepRate <= 0 {
		l.SweepRate = defaults.SweepRate
	}

	go l.background()
	return l
}

// Allow 取用 key 的一個 token, 沒有剩餘額度時回傳 false
func (l *KeyedLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b := l.refill(key, now)
	b.lastSeen = now
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (l *KeyedLimiter) Remaining(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return int(l.refill(key, l.now()).tokens)
}

// Len 目前追蹤中的 key 數量
func (l *KeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// refill 需持有 mu
func (l *KeyedLimiter) refill(key string, now time.Time) *bucket {
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: float64(l.Capacity), last: now, lastSeen: now}
		l.buckets[key] = b
		return b
	}

	elapsed := now.Sub(b.last)
	if elapsed > 0 {
		b.tokens += elapsed.Seconds() * float64(l.RatePS)
		if b.tokens > float64(l.Capacity) {
			b.tokens = float64(l.Capacity)
		}
		b.last = now
	}
	return b
}

func (l *KeyedLimiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.IdleTTL)
	for key, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

func (l *KeyedLimiter) background() {
	ticker := time.NewTicker(l.SweepRate)
	defer ticker.Stop()

	for {
		select {
		case <-l.cancel:
			return
		case <-ticker.C:
			l.sweep()
		}
	}
}

func (l *KeyedLimiter) Stop() {
	l.once.Do(func() {
		close(l.cancel)
	})
}
