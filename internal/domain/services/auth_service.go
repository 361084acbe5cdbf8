package services

import (
	"context"
	"time"

	"factory-monitor-service/internal/domain/models"
	"factory-monitor-service/internal/error/code"
	"factory-monitor-service/internal/infrastructure/config"
	"factory-monitor-service/internal/infrastructure/database"
	Logger "factory-monitor-service/pkg/logger"
	"factory-monitor-service/pkg/utils"
)

// ErrAuthRejected 所有認證失敗一律回傳此錯誤，不區分原因
var ErrAuthRejected = code.New(code.ErrAuthRejected, "")

// InterfaceAuthService 定義認證服務介面
type InterfaceAuthService interface {
	CheckBasicKey(authorization string) bool
	Login(ctx context.Context, req LoginRequest) (*TokenPair, error)
	Refresh(ctx context.Context, req RefreshRequest) (*TokenPair, error)
	ValidateStoredToken(ctx context.Context, userID, token string) bool
}

// LoginRequest 登入參數
type LoginRequest struct {
	Username    string `json:"username" binding:"required" example:"admin"`
	Password    string `json:"password" binding:"required" example:"admin123"`
	CaptchaID   string `json:"captchaId" binding:"required"`
	CaptchaCode string `json:"captchaCode" binding:"required" example:"1234"`
}

// RefreshRequest 刷新令牌參數
type RefreshRequest struct {
	AccessToken  string `json:"accessToken" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenPair 存取令牌與刷新令牌
type TokenPair struct {
	AccessToken      string    `json:"accessToken"`
	RefreshToken     string    `json:"refreshToken"`
	ExpiresAt        time.Time `json:"expiresAt"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
	UserID           string    `json:"userId"`
	UserName         string    `json:"userName"`
	DeptNo           string    `json:"deptNo"`
}

// AuthService 登入、刷新與令牌撤銷檢查
type AuthService struct {
	helper     *database.Helper
	jwt        InterfaceJWTService
	captcha    InterfaceCaptchaService
	basicKey   string
	refreshTTL time.Duration
	now        func() time.Time
}

// NewAuthService 建立認證服務
func NewAuthService(helper *database.Helper, cfg *config.Config, jwt InterfaceJWTService, captcha InterfaceCaptchaService) InterfaceAuthService {
	if cfg.BasicAuthKey == "" {
		Logger.Warning("未設定 BASIC_AUTH_KEY，所有登入請求都會被拒絕")
	}
	return &AuthService{
		helper:     helper,
		jwt:        jwt,
		captcha:    captcha,
		basicKey:   cfg.BasicAuthKey,
		refreshTTL: cfg.RefreshTokenTTL,
		now:        time.Now,
	}
}

const personColumns = "PASS_ID, PASS_NA, PASS_PWD, DEPT_NO, DEPT_NA, EMAIL, STATUS, ACCESS_TOKEN, REFRESH_TOKEN, REFRESH_EXPIRE"

func (s *AuthService) findPerson(ctx context.Context, userID string) (*models.Person, error) {
	var rows []models.Person
	err := s.helper.Query(ctx, &rows,
		"SELECT "+personColumns+" FROM SYSPASMI WHERE PASS_ID = @passid AND STATUS = 'Y'",
		database.Params{"passid": userID})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// 1 CheckBasicKey 檢查 Authorization: Basic <預共享金鑰>
func (s *AuthService) CheckBasicKey(authorization string) bool {
	if s.basicKey == "" {
		return false
	}
	return utils.SecureEqual(authorization, "Basic "+s.basicKey)
}

// 2 Login 驗證驗證碼與帳密後簽發令牌
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenPair, error) {
	// 驗證碼不論帳密是否正確都先消耗掉
	if !s.captcha.Verify(ctx, req.CaptchaID, req.CaptchaCode) {
		return nil, ErrAuthRejected
	}

	person, err := s.findPerson(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if person == nil || !utils.CheckPasswordHash(req.Password, person.PassPwd) {
		return nil, ErrAuthRejected
	}

	return s.issue(ctx, person)
}

// 3 Refresh 以過期的存取令牌加上刷新令牌換發新令牌
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*TokenPair, error) {
	claims, err := s.jwt.ParseIgnoringExpiry(req.AccessToken)
	if err != nil {
		return nil, ErrAuthRejected
	}

	person, err := s.findPerson(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if person == nil || person.RefreshToken == "" || person.RefreshExpire == nil {
		return nil, ErrAuthRejected
	}
	if !utils.SecureEqual(person.RefreshToken, req.RefreshToken) || !s.now().Before(*person.RefreshExpire) {
		return nil, ErrAuthRejected
	}

	return s.issue(ctx, person)
}

// 4 ValidateStoredToken 令牌必須與資料庫最後簽發的令牌完全一致
func (s *AuthService) ValidateStoredToken(ctx context.Context, userID, token string) bool {
	person, err := s.findPerson(ctx, userID)
	if err != nil {
		Logger.Error("查詢使用者令牌失敗: %v", err)
		return false
	}
	if person == nil || person.AccessToken == "" {
		return false
	}
	return utils.SecureEqual(person.AccessToken, token)
}

func (s *AuthService) issue(ctx context.Context, person *models.Person) (*TokenPair, error) {
	access, expiresAt, err := s.jwt.GenerateToken(person)
	if err != nil {
		return nil, err
	}
	refresh, err := utils.RandomToken(utils.RefreshTokenBytes)
	if err != nil {
		return nil, err
	}
	refreshExpire := s.now().Add(s.refreshTTL)

	_, err = s.helper.Exec(ctx,
		"UPDATE SYSPASMI SET ACCESS_TOKEN = @access, REFRESH_TOKEN = @refresh, REFRESH_EXPIRE = @expire WHERE PASS_ID = @passid",
		database.Params{
			"access":  access,
			"refresh": refresh,
			"expire":  refreshExpire,
			"passid":  person.PassID,
		})
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		ExpiresAt:        expiresAt,
		RefreshExpiresAt: refreshExpire,
		UserID:           person.PassID,
		UserName:         person.PassNa,
		DeptNo:           person.DeptNo,
	}, nil
}
