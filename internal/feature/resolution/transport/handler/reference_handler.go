package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"symbol_backend/internal/feature/resolution/domain/entity"
	"symbol_backend/internal/feature/resolution/transport/http/dto"
)

// ReferenceUsecase は参照カタログ操作のユースケースを定義します。
type ReferenceUsecase interface {
	ListActiveEntries(ctx context.Context) ([]entity.ReferenceEntry, error)
}

// ReferenceHandler は参照カタログのHTTPリクエストを処理します。
type ReferenceHandler struct {
	uc ReferenceUsecase
}

// NewReferenceHandler はReferenceHandlerの新しいインスタンスを生成します。
func NewReferenceHandler(uc ReferenceUsecase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

// List は GET /reference を処理し、アクティブなカタログエントリを返します。
func (h *ReferenceHandler) List(c *gin.Context) {
	entries, err := h.uc.ListActiveEntries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.ReferenceItem, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ReferenceItem{Name: e.Name, Ticker: e.Ticker})
	}
	c.JSON(http.StatusOK, out)
}
