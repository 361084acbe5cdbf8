package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// RefreshTokenBytes 刷新令牌長度 (256 bits)
const RefreshTokenBytes = 32

// RandomToken 產生 n 個隨機位元組並以 base64 編碼
func RandomToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
