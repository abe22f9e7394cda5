// Package handler はsuggestフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"symbol_backend/internal/feature/resolution/domain/entity"
	"symbol_backend/internal/feature/suggest/transport/http/dto"
)

// SuggestUsecase は型先行検索のユースケースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SuggestUsecase interface {
	Suggest(ctx context.Context, query string, limit int) ([]entity.ReferenceEntry, error)
}

// SuggestHandler は型先行検索のHTTPリクエストを処理します。
type SuggestHandler struct {
	uc SuggestUsecase
}

// NewSuggestHandler はSuggestHandlerの新しいインスタンスを生成します。
func NewSuggestHandler(uc SuggestUsecase) *SuggestHandler {
	return &SuggestHandler{uc: uc}
}

// List は検索クエリに対する候補一覧を返すAPIです。
//
// エンドポイント例:
// GET /suggestions?q=INF&limit=10
func (h *SuggestHandler) List(c *gin.Context) {
	query := c.Query("q")
	// 未指定・不正な値の場合はusecase側のデフォルトに任せる
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	entries, err := h.uc.Suggest(c.Request.Context(), query, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.SuggestionItem, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.SuggestionItem{Name: e.Name, Ticker: e.Ticker})
	}
	c.JSON(http.StatusOK, out)
}
