// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// serviceName は/healthzレスポンスで報告するサービス識別子です。
const serviceName = "symbol-resolver"

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// ロードバランサーからのHEAD/OPTIONSプローブにはボディなしで応答し、
// 監視系が中間キャッシュの結果を掴まないようキャッシュを無効化します。
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": serviceName})
	}
}
