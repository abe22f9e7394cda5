package jwtmw

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ハンドラーがgin.Contextから認証情報を読み出すためのキー。
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
)

// AuthRequired は保護されたルート用のGinミドルウェアを返します。
// Authorizationヘッダーの署名済みJWTを検証し、認証済みユーザーの
// IDとメールアドレスをコンテキストへ設定します。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		secret := os.Getenv(EnvKeyJWTSecret)
		if secret == "" {
			// JWT_SECRET未設定はサーバー側の構成ミス
			slog.Error("JWT secret is not configured", "env", EnvKeyJWTSecret)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// HMAC以外の署名アルゴリズム（noneを含む）は拒否
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			slog.Warn("rejected invalid token", "remote_addr", c.ClientIP(), "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			// JWTの数値クレームはfloat64としてデコードされる
			if sub, ok := claims["sub"].(float64); ok {
				c.Set(ContextUserID, uint(sub))
			}
			if email, ok := claims["email"].(string); ok {
				c.Set(ContextEmail, email)
			}
		}
		c.Next()
	}
}
