// Package handler はresolutionフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"symbol_backend/internal/feature/resolution/domain/entity"
	"symbol_backend/internal/feature/resolution/transport/http/dto"
	"symbol_backend/internal/feature/resolution/usecase"
)

// ResolverUsecase はシンボル解決操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type ResolverUsecase interface {
	// Resolve は生シンボルを正規ティッカーへ解決します。
	Resolve(ctx context.Context, rawSymbol string) (entity.Resolution, error)
	// Confirm は人間が確定したマッピングを登録します。
	Confirm(ctx context.Context, rawSymbol, ticker string) error
	// Mappings は確定済みマッピングの一覧を返します。
	Mappings(ctx context.Context) ([]entity.RegistryEntry, error)
}

// ResolutionHandler はシンボル解決のHTTPリクエストを処理します。
type ResolutionHandler struct {
	uc ResolverUsecase
}

// NewResolutionHandler はResolutionHandlerの新しいインスタンスを生成します。
func NewResolutionHandler(uc ResolverUsecase) *ResolutionHandler {
	return &ResolutionHandler{uc: uc}
}

// Resolve は POST /resolve を処理します。
// レジストリ書き込みの失敗は解決結果そのものを無効にしないため、
// 警告ログを出した上で200を返します。
func (h *ResolutionHandler) Resolve(c *gin.Context) {
	var req dto.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	res, err := h.uc.Resolve(c.Request.Context(), req.RawSymbol)
	if err != nil {
		if !errors.Is(err, usecase.ErrRegistrySave) {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Warn("resolution succeeded but registry write failed",
			"raw_symbol", req.RawSymbol, "error", err)
	}

	c.JSON(http.StatusOK, toResolutionResponse(res))
}

// Confirm は POST /confirm を処理します。
func (h *ResolutionHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.uc.Confirm(c.Request.Context(), req.RawSymbol, req.Ticker); err != nil {
		if errors.Is(err, usecase.ErrInvalidConfirmation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("failed to confirm mapping", "raw_symbol", req.RawSymbol, "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to save mapping"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "ok"})
}

// Mappings は GET /mappings を処理します。
func (h *ResolutionHandler) Mappings(c *gin.Context) {
	entries, err := h.uc.Mappings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.MappingItem, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.MappingItem{
			RawSymbol:  e.RawSymbol,
			Ticker:     e.Ticker,
			Source:     string(e.Source),
			Confidence: e.Confidence,
			UpdatedAt:  e.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

func toResolutionResponse(res entity.Resolution) dto.ResolutionResponse {
	out := dto.ResolutionResponse{
		State:      string(res.State),
		Ticker:     res.Ticker,
		Confidence: res.Confidence,
	}
	for _, cand := range res.Candidates {
		out.Candidates = append(out.Candidates, dto.CandidateItem{
			Ticker: cand.Ticker,
			Label:  cand.Label,
			Score:  cand.Score,
		})
	}
	return out
}
