// Package router はアプリケーションのHTTPルーティングを定義します。
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "symbol_backend/internal/feature/auth/transport/handler"
	resolutionhandler "symbol_backend/internal/feature/resolution/transport/handler"
	suggesthandler "symbol_backend/internal/feature/suggest/transport/handler"
	"symbol_backend/internal/platform/http/handler"
	jwtmw "symbol_backend/internal/platform/jwt"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(auth *authhandler.AuthHandler, resolution *resolutionhandler.ResolutionHandler,
	reference *resolutionhandler.ReferenceHandler, suggest *suggesthandler.SuggestHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", auth.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", auth.Login)

	// 認証必須のルート
	protected := r.Group("/")
	protected.Use(jwtmw.AuthRequired())
	{
		protected.POST("/resolve", resolution.Resolve)
		protected.POST("/confirm", resolution.Confirm)
		protected.GET("/mappings", resolution.Mappings)
		protected.GET("/reference", reference.List)
		protected.GET("/suggestions", suggest.List)
	}

	return r
}
