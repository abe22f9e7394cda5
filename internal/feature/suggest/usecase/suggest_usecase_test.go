package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symbol_backend/internal/feature/resolution/domain/entity"
	"symbol_backend/internal/feature/suggest/usecase"
)

// mockReferenceRepository はReferenceRepositoryインターフェースのモック実装です。
type mockReferenceRepository struct {
	ListActiveFunc func(ctx context.Context) ([]entity.ReferenceEntry, error)
}

// ListActive はモックのListActive関数を呼び出します。
func (m *mockReferenceRepository) ListActive(ctx context.Context) ([]entity.ReferenceEntry, error) {
	return m.ListActiveFunc(ctx)
}

var suggestCatalog = []entity.ReferenceEntry{
	{Name: "Info Edge", Ticker: "NAUKRI.NS"},
	{Name: "Infosys", Ticker: "INFY.NS"},
	{Name: "Tata Consultancy Services", Ticker: "TCS.NS"},
	{Name: "HDFC Bank", Ticker: "HDFCBANK.NS"},
}

// TestFilterSuggestions_Ranking はティッカー一致が銘柄名一致より優先されることを検証します。
func TestFilterSuggestions_Ranking(t *testing.T) {
	t.Parallel()

	// "INF" はINFY.NSのティッカー前方一致、Info Edgeは名前前方一致のみ
	got := usecase.FilterSuggestions("INF", suggestCatalog, 0)

	require.Len(t, got, 2)
	assert.Equal(t, "INFY.NS", got[0].Ticker)
	assert.Equal(t, "NAUKRI.NS", got[1].Ticker)
}

// TestFilterSuggestions_Tiers は4つのランク（ティッカー前方一致、ティッカー部分一致、名前前方一致、名前部分一致）の序列を検証します。
func TestFilterSuggestions_Tiers(t *testing.T) {
	t.Parallel()

	catalog := []entity.ReferenceEntry{
		{Name: "Oil India", Ticker: "OIL.NS"},            // 名前部分一致 (70)
		{Name: "Bank of India", Ticker: "BANKINDIA.NS"},  // ティッカー部分一致 (90)
		{Name: "India Cements", Ticker: "INDIACEM.NS"},   // ティッカー前方一致 (100)
		{Name: "Indian Hotels", Ticker: "TATAHOTELS.NS"}, // 名前前方一致 (80)
	}

	got := usecase.FilterSuggestions("INDIA", catalog, 0)

	require.Len(t, got, 4)
	assert.Equal(t, "INDIACEM.NS", got[0].Ticker)
	assert.Equal(t, "BANKINDIA.NS", got[1].Ticker)
	assert.Equal(t, "TATAHOTELS.NS", got[2].Ticker)
	assert.Equal(t, "OIL.NS", got[3].Ticker)
}

// TestFilterSuggestions_CaseAndSpace は大文字小文字と前後空白を無視して照合することを検証します。
func TestFilterSuggestions_CaseAndSpace(t *testing.T) {
	t.Parallel()

	got := usecase.FilterSuggestions("  hdfc ", suggestCatalog, 0)

	require.Len(t, got, 1)
	assert.Equal(t, "HDFCBANK.NS", got[0].Ticker)
}

// TestFilterSuggestions_Limit は件数上限とデフォルト上限10件を検証します。
func TestFilterSuggestions_Limit(t *testing.T) {
	t.Parallel()

	catalog := make([]entity.ReferenceEntry, 0, 15)
	for i := 0; i < 15; i++ {
		catalog = append(catalog, entity.ReferenceEntry{
			Name:   fmt.Sprintf("Tata Unit %d", i),
			Ticker: fmt.Sprintf("TATA%02d.NS", i),
		})
	}

	tests := []struct {
		name    string
		limit   int
		wantLen int
	}{
		{"explicit limit", 3, 3},
		{"zero falls back to default", 0, usecase.DefaultLimit},
		{"negative falls back to default", -1, usecase.DefaultLimit},
		{"limit above match count", 100, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := usecase.FilterSuggestions("TATA", catalog, tt.limit)

			assert.Len(t, got, tt.wantLen)
		})
	}
}

// TestFilterSuggestions_TieKeepsCatalogOrder は同点時にカタログ順が維持されることを検証します。
func TestFilterSuggestions_TieKeepsCatalogOrder(t *testing.T) {
	t.Parallel()

	catalog := []entity.ReferenceEntry{
		{Name: "Tata Motors", Ticker: "TATAMOTORS.NS"},
		{Name: "Tata Steel", Ticker: "TATASTEEL.NS"},
	}

	got := usecase.FilterSuggestions("TATA", catalog, 0)

	require.Len(t, got, 2)
	assert.Equal(t, "TATAMOTORS.NS", got[0].Ticker)
	assert.Equal(t, "TATASTEEL.NS", got[1].Ticker)
}

// TestSuggestUsecase_Suggest_EmptyQuery は空クエリがカタログを読まずに空結果を返すことを検証します。
func TestSuggestUsecase_Suggest_EmptyQuery(t *testing.T) {
	t.Parallel()

	refs := &mockReferenceRepository{
		ListActiveFunc: func(ctx context.Context) ([]entity.ReferenceEntry, error) {
			t.Error("catalog should not be loaded for an empty query")
			return nil, nil
		},
	}
	uc := usecase.NewSuggestUsecase(refs)

	got, err := uc.Suggest(context.Background(), "   ", 0)

	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestSuggestUsecase_Suggest はカタログ読み込みと絞り込みの結線を検証します。
func TestSuggestUsecase_Suggest(t *testing.T) {
	t.Parallel()

	refs := &mockReferenceRepository{
		ListActiveFunc: func(ctx context.Context) ([]entity.ReferenceEntry, error) {
			return suggestCatalog, nil
		},
	}
	uc := usecase.NewSuggestUsecase(refs)

	got, err := uc.Suggest(context.Background(), "TCS", 0)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "TCS.NS", got[0].Ticker)
}

// TestSuggestUsecase_Suggest_CatalogFailure はカタログ読み込み失敗がエラーとして伝播することを検証します。
func TestSuggestUsecase_Suggest_CatalogFailure(t *testing.T) {
	t.Parallel()

	refs := &mockReferenceRepository{
		ListActiveFunc: func(ctx context.Context) ([]entity.ReferenceEntry, error) {
			return nil, errors.New("database connection failed")
		},
	}
	uc := usecase.NewSuggestUsecase(refs)

	_, err := uc.Suggest(context.Background(), "TCS", 0)

	assert.Error(t, err)
}
