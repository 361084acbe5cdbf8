package middleware

import (
	"strings"

	"factory-monitor-service/internal/domain/services"
	"factory-monitor-service/internal/error/code"
	"factory-monitor-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// gin context 中的認證資訊
const (
	ContextUserID   = "userID"
	ContextUserName = "userName"
	ContextClaims   = "claims"
	ContextToken    = "token"
)

// extractToken 從授權標頭取出 Bearer token，格式不符時回傳空字串
func extractToken(authHeader string) string {
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func reject(c *gin.Context) {
	response.Fail(c, code.ErrTokenInvalid, nil)
	c.Abort()
}

// Authentication 驗證 Bearer 存取令牌並把使用者資訊放進 context
func Authentication(jwtService services.InterfaceJWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			reject(c)
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil || claims.UserID == "" {
			reject(c)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserName, claims.UserName)
		c.Set(ContextClaims, claims)
		c.Set(ContextToken, tokenString)
		c.Next()
	}
}

// RequireStoredToken 令牌必須是該使用者最後一次簽發的令牌，須放在 Authentication 之後
func RequireStoredToken(authService services.InterfaceAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		token := c.GetString(ContextToken)
		if userID == "" || token == "" || !authService.ValidateStoredToken(c.Request.Context(), userID, token) {
			reject(c)
			return
		}
		c.Next()
	}
}
