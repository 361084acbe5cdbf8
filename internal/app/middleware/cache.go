package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// 快取上限筆數
const cacheSize = 1024

// 全域快取，過期由 expirable LRU 自行處理；每筆可有不同的有效期限，
// 所以另外記錄 expiresAt
type cacheEntry struct {
	Content   []byte
	ExpiresAt time.Time
}

var cache = expirable.NewLRU[string, cacheEntry](cacheSize, nil, 10*time.Minute)

// CacheConfig 快取設定
type CacheConfig struct {
	Expiration time.Duration             // 快取有效時間
	Methods    []string                  // 需要快取的 HTTP 方法
	KeyFunc    func(*gin.Context) string // 自訂快取 key
}

// DefaultCacheConfig 預設快取設定
var DefaultCacheConfig = CacheConfig{
	Expiration: 30 * time.Second,
	Methods:    []string{http.MethodGet},
	KeyFunc:    defaultKeyFunc,
}

func hashKey(key string) string {
	sum := md5.Sum([]byte(key))
	return hex.EncodeToString(sum[:])
}

// defaultKeyFunc 路徑加上排序後的查詢參數
func defaultKeyFunc(c *gin.Context) string {
	query := c.Request.URL.Query()
	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(c.Request.URL.Path)
	b.WriteString("?")
	for _, k := range keys {
		values := query[k]
		sort.Strings(values)
		for _, v := range values {
			b.WriteString(k + "=" + v + "&")
		}
	}
	return hashKey(b.String())
}

// Cache 回應快取中間件，只快取 200 回應
func Cache(config ...CacheConfig) gin.HandlerFunc {
	cfg := DefaultCacheConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Expiration <= 0 {
		cfg.Expiration = DefaultCacheConfig.Expiration
	}
	if len(cfg.Methods) == 0 {
		cfg.Methods = DefaultCacheConfig.Methods
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = DefaultCacheConfig.KeyFunc
	}

	return func(c *gin.Context) {
		allowed := false
		for _, m := range cfg.Methods {
			if c.Request.Method == m {
				allowed = true
				break
			}
		}
		if !allowed {
			c.Next()
			return
		}

		key := cfg.KeyFunc(c)
		if entry, ok := cache.Get(key); ok && time.Now().Before(entry.ExpiresAt) {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", entry.Content)
			c.Abort()
			return
		}

		writer := &responseWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer
		c.Next()

		if writer.Status() == http.StatusOK {
			cache.Add(key, cacheEntry{Content: writer.body.Bytes(), ExpiresAt: time.Now().Add(cfg.Expiration)})
		}
	}
}

// PurgeCache 清除所有快取
func PurgeCache() {
	cache.Purge()
}

// CacheStats 快取統計
func CacheStats() map[string]interface{} {
	return map[string]interface{}{
		"total_items": cache.Len(),
		"capacity":    cacheSize,
	}
}

// responseWriter 同時寫入原本的回應與緩衝區
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
