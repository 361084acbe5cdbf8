package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"factory-monitor-service/internal/infrastructure/config"
	Logger "factory-monitor-service/pkg/logger"
	"factory-monitor-service/pkg/utils"

	"github.com/google/uuid"
	"github.com/mojocn/base64Captcha"
)

// InterfaceCaptchaService 定義驗證碼服務介面
type InterfaceCaptchaService interface {
	Generate(ctx context.Context) (*Captcha, error)
	Verify(ctx context.Context, id, code string) bool
	PurgeExpired(ctx context.Context) (int64, error)
}

// Captcha 回傳給前端的驗證碼
type Captcha struct {
	CaptchaID string `json:"captchaId"`
	Image     string `json:"image"` // data:image/png;base64,...
}

// CaptchaService 產生並驗證登入驗證碼
type CaptchaService struct {
	store  CaptchaStore
	driver *base64Captcha.DriverDigit
	ttl    time.Duration
	now    func() time.Time
}

// NewCaptchaService 建立驗證碼服務
func NewCaptchaService(store CaptchaStore, cfg *config.Config) InterfaceCaptchaService {
	length := cfg.CaptchaCodeLength
	if length <= 0 {
		length = 4
	}
	return &CaptchaService{
		store:  store,
		driver: base64Captcha.NewDriverDigit(60, 160, length, 0.6, 40),
		ttl:    cfg.CaptchaTTL,
		now:    time.Now,
	}
}

// 1 Generate 產生驗證碼圖片並儲存答案
func (s *CaptchaService) Generate(ctx context.Context) (*Captcha, error) {
	_, question, answer := s.driver.GenerateIdQuestionAnswer()
	item, err := s.driver.DrawCaptcha(question)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	if err := s.store.Save(ctx, id, answer, s.now()); err != nil {
		return nil, err
	}
	return &Captcha{CaptchaID: id, Image: item.EncodeB64string()}, nil
}

// 2 Verify 驗證碼只能使用一次，超過有效時間即失效
func (s *CaptchaService) Verify(ctx context.Context, id, code string) bool {
	if id == "" || code == "" {
		return false
	}
	stored, createdAt, err := s.store.Take(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrCaptchaNotFound) {
			Logger.Error("讀取驗證碼失敗: %v", err)
		}
		return false
	}
	if s.now().Sub(createdAt) > s.ttl {
		return false
	}
	return utils.SecureEqual(strings.ToUpper(strings.TrimSpace(code)), strings.ToUpper(stored))
}

// 3 PurgeExpired 清除過期驗證碼
func (s *CaptchaService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.store.PurgeExpired(ctx, s.now().Add(-s.ttl))
}
