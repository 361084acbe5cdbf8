package services

import (
	"context"
	"errors"
	"time"

	"factory-monitor-service/internal/domain/models"
	"factory-monitor-service/internal/infrastructure/database"
)

// ErrCaptchaNotFound 驗證碼不存在或已使用
var ErrCaptchaNotFound = errors.New("captcha not found")

// CaptchaStore 驗證碼儲存，Take 取出後即失效
type CaptchaStore interface {
	Save(ctx context.Context, id, code string, createdAt time.Time) error
	Take(ctx context.Context, id string) (code string, createdAt time.Time, err error)
	PurgeExpired(ctx context.Context, before time.Time) (int64, error)
}

// DBCaptchaStore 以 CAPTCHASESSION 資料表儲存
type DBCaptchaStore struct {
	helper *database.Helper
}

// NewDBCaptchaStore 建立資料表儲存
func NewDBCaptchaStore(helper *database.Helper) *DBCaptchaStore {
	return &DBCaptchaStore{helper: helper}
}

// Save 寫入驗證碼
func (s *DBCaptchaStore) Save(ctx context.Context, id, code string, createdAt time.Time) error {
	_, err := s.helper.Exec(ctx,
		"INSERT INTO CAPTCHASESSION (SESSIONID, CODE, CREATE_AT) VALUES (@id, @code, @createat)",
		database.Params{"id": id, "code": code, "createat": createdAt})
	return err
}

// Take 讀出並刪除，刪除失敗代表已被其他請求使用
func (s *DBCaptchaStore) Take(ctx context.Context, id string) (string, time.Time, error) {
	var rows []models.CaptchaSession
	if err := s.helper.Query(ctx, &rows,
		"SELECT SESSIONID, CODE, CREATE_AT FROM CAPTCHASESSION WHERE SESSIONID = @id",
		database.Params{"id": id}); err != nil {
		return "", time.Time{}, err
	}
	if len(rows) == 0 {
		return "", time.Time{}, ErrCaptchaNotFound
	}

	n, err := s.helper.Exec(ctx, "DELETE FROM CAPTCHASESSION WHERE SESSIONID = @id", database.Params{"id": id})
	if err != nil {
		return "", time.Time{}, err
	}
	if n == 0 {
		return "", time.Time{}, ErrCaptchaNotFound
	}
	return rows[0].Code, rows[0].CreateAt, nil
}

// PurgeExpired 清除過期驗證碼
func (s *DBCaptchaStore) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	return s.helper.Exec(ctx, "DELETE FROM CAPTCHASESSION WHERE CREATE_AT < @before", database.Params{"before": before})
}

// RedisCaptchaStore 以 Redis TTL 儲存驗證碼
type RedisCaptchaStore struct {
	redis InterfaceRedisService
	ttl   time.Duration
}

type redisCaptcha struct {
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRedisCaptchaStore 建立 Redis 儲存
func NewRedisCaptchaStore(redis InterfaceRedisService, ttl time.Duration) *RedisCaptchaStore {
	return &RedisCaptchaStore{redis: redis, ttl: ttl}
}

func captchaKey(id string) string {
	return "captcha:" + id
}

// Save 寫入驗證碼
func (s *RedisCaptchaStore) Save(ctx context.Context, id, code string, createdAt time.Time) error {
	return s.redis.Set(ctx, captchaKey(id), redisCaptcha{Code: code, CreatedAt: createdAt}, s.ttl)
}

// Take 讀出並刪除
func (s *RedisCaptchaStore) Take(ctx context.Context, id string) (string, time.Time, error) {
	var v redisCaptcha
	if err := s.redis.Take(ctx, captchaKey(id), &v); err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return "", time.Time{}, ErrCaptchaNotFound
		}
		return "", time.Time{}, err
	}
	return v.Code, v.CreatedAt, nil
}

// PurgeExpired Redis 自行過期
func (s *RedisCaptchaStore) PurgeExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}
