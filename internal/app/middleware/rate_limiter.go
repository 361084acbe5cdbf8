package middleware

import (
	"sync"
	"time"

	"factory-monitor-service/internal/error/code"
	"factory-monitor-service/internal/error/response"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// TokenBucket 令牌桶
type TokenBucket struct {
	rate       float64 // 每秒補充的令牌數
	capacity   int
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

// NewTokenBucket 建立令牌桶
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow 嘗試取得一個令牌
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.tokens += now.Sub(tb.lastRefill).Seconds() * tb.rate
	tb.lastRefill = now
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}
	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

// RateLimiterConfig 限流設定
type RateLimiterConfig struct {
	Rate       float64                   // 每秒允許的請求數
	Burst      int                       // 突發上限
	ExpiryTime time.Duration             // 閒置多久後丟棄該 key 的令牌桶
	KeyFunc    func(*gin.Context) string // 預設為 client IP
}

// DefaultRateLimiterConfig 預設限流設定
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:       1,
	Burst:      5,
	ExpiryTime: time.Hour,
}

// RateLimiter 每個 key 一個令牌桶，令牌桶存放在有期限的 LRU
func RateLimiter(config ...RateLimiterConfig) gin.HandlerFunc {
	cfg := DefaultRateLimiterConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRateLimiterConfig.Rate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimiterConfig.Burst
	}
	if cfg.ExpiryTime <= 0 {
		cfg.ExpiryTime = DefaultRateLimiterConfig.ExpiryTime
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}

	limiters := expirable.NewLRU[string, *TokenBucket](10000, nil, cfg.ExpiryTime)
	var mu sync.Mutex

	get := func(key string) *TokenBucket {
		mu.Lock()
		defer mu.Unlock()
		if tb, ok := limiters.Get(key); ok {
			return tb
		}
		tb := NewTokenBucket(cfg.Rate, cfg.Burst)
		limiters.Add(key, tb)
		return tb
	}

	return func(c *gin.Context) {
		if !get(cfg.KeyFunc(c)).Allow() {
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CombinedRateLimiter 依 IP 加路徑限流
func CombinedRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:  rate,
		Burst: burst,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP() + ":" + c.Request.URL.Path
		},
	})
}
