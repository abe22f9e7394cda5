package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// parseTestToken はテスト用シークレットでトークンを検証・パースします。
func parseTestToken(t *testing.T, tokenStr, secret string) jwt.MapClaims {
	t.Helper()

	token, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			t.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if !token.Valid {
		t.Fatal("expected token to be valid")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected MapClaims")
	}
	return claims
}

// TestGenerator_GenerateToken は生成されたトークンがHS256で署名され、正しいクレームを含むことを検証します。
func TestGenerator_GenerateToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		userID uint
		email  string
	}{
		{"basic user", 1, "user@example.com"},
		{"user with special email", 42, "user+tag@example.com"},
		{"large user id", 999999, "test@test.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator("test-secret", time.Hour)
			tokenStr, err := gen.GenerateToken(tt.userID, tt.email)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			claims := parseTestToken(t, tokenStr, "test-secret")

			if sub, ok := claims["sub"].(float64); !ok || uint(sub) != tt.userID {
				t.Errorf("expected sub %d, got %v", tt.userID, claims["sub"])
			}
			if email, ok := claims["email"].(string); !ok || email != tt.email {
				t.Errorf("expected email %q, got %v", tt.email, claims["email"])
			}
		})
	}
}

// TestGenerator_GenerateToken_Expiration はexp・iatクレームが設定した有効期間と整合することを検証します。
func TestGenerator_GenerateToken_Expiration(t *testing.T) {
	t.Parallel()

	expiration := 2 * time.Hour
	gen := NewGenerator("test-secret", expiration)

	before := time.Now().Truncate(time.Second)
	tokenStr, err := gen.GenerateToken(1, "test@example.com")
	after := time.Now().Truncate(time.Second).Add(time.Second)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := parseTestToken(t, tokenStr, "test-secret")

	expUnix := int64(claims["exp"].(float64))
	if expUnix < before.Add(expiration).Unix() || expUnix > after.Add(expiration).Unix() {
		t.Errorf("exp %d not in expected range [%d, %d]",
			expUnix, before.Add(expiration).Unix(), after.Add(expiration).Unix())
	}

	iatUnix := int64(claims["iat"].(float64))
	if iatUnix < before.Unix() || iatUnix > after.Unix() {
		t.Errorf("iat %d not in expected range [%d, %d]", iatUnix, before.Unix(), after.Unix())
	}
}

// TestGenerator_GenerateToken_WrongSecretRejected は異なるシークレットでの検証が失敗することを検証します。
func TestGenerator_GenerateToken_WrongSecretRejected(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", time.Hour)
	tokenStr, err := gen.GenerateToken(1, "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	if err == nil && token.Valid {
		t.Error("expected verification with the wrong secret to fail")
	}
}

// TestGenerator_GenerateToken_DifferentUsersProduceDifferentTokens は異なるユーザーに対して異なるトークンが生成されることを検証します。
func TestGenerator_GenerateToken_DifferentUsersProduceDifferentTokens(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", time.Hour)

	token1, _ := gen.GenerateToken(1, "user1@example.com")
	token2, _ := gen.GenerateToken(2, "user2@example.com")

	if token1 == token2 {
		t.Error("expected different tokens for different users")
	}
}
