package services

import (
	"errors"
	"fmt"
	"time"

	"factory-monitor-service/internal/domain/models"
	"factory-monitor-service/internal/infrastructure/config"

	"github.com/golang-jwt/jwt/v4"
)

// InterfaceJWTService 定義JWT服務介面
type InterfaceJWTService interface {
	GenerateToken(person *models.Person) (string, time.Time, error)
	ValidateToken(tokenString string) (*JWTClaims, error)
	ParseIgnoringExpiry(tokenString string) (*JWTClaims, error)
}

// JWTService 提供JWT相關服務
type JWTService struct {
	secretKey []byte
	issuer    string
	audience  string
	ttl       time.Duration
	now       func() time.Time
}

// JWTClaims 定義JWT令牌的宣告結構
type JWTClaims struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	DeptNo   string `json:"dept_no,omitempty"`
	jwt.RegisteredClaims
}

// NewJWTService 建立JWT服務
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	return &JWTService{
		secretKey: []byte(cfg.JWTSecretKey),
		issuer:    cfg.JWTIssuer,
		audience:  cfg.JWTAudience,
		ttl:       cfg.AccessTokenTTL,
		now:       time.Now,
	}
}

// 1 GenerateToken 產生存取令牌
func (s *JWTService) GenerateToken(person *models.Person) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := &JWTClaims{
		UserID:   person.PassID,
		UserName: person.PassNa,
		DeptNo:   person.DeptNo,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   person.PassID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// 2 ValidateToken 驗證簽章與有效期限
func (s *JWTService) ValidateToken(tokenString string) (*JWTClaims, error) {
	return s.parse(tokenString, jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})))
}

// 3 ParseIgnoringExpiry 只驗證簽章，不檢查到期時間 (刷新令牌時使用)
func (s *JWTService) ParseIgnoringExpiry(tokenString string) (*JWTClaims, error) {
	return s.parse(tokenString, jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	))
}

func (s *JWTService) parse(tokenString string, parser *jwt.Parser) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if !claims.VerifyIssuer(s.issuer, true) || !claims.VerifyAudience(s.audience, true) {
		return nil, errors.New("invalid token issuer or audience")
	}
	if claims.UserID == "" {
		return nil, errors.New("token without user id")
	}
	return claims, nil
}
