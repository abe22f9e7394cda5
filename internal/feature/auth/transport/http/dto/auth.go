// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// SignupReq は/signupエンドポイントのリクエストボディを表します。
// Ginのbindingタグでバリデーション（必須・メール形式・パスワード長）を行います。
type SignupReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginReq は/loginエンドポイントのリクエストボディを表します。
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenRes はログイン成功時のレスポンスを表します。
type TokenRes struct {
	Token string `json:"token"`
}

// ErrorRes is the uniform error body.
type ErrorRes struct {
	Error string `json:"error"`
}

// MessageRes is the uniform success body for mutations without data.
type MessageRes struct {
	Message string `json:"message"`
}
