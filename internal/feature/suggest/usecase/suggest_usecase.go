// Package usecase implements the type-ahead suggestion ranking over the
// reference catalog. The ranking is deliberately independent of the
// resolution matcher: it uses plain prefix/substring checks on the raw
// ticker and name, with no normalization or acronym derivation.
package usecase

import (
	"context"
	"sort"
	"strings"

	"symbol_backend/internal/feature/resolution/domain/entity"
)

// DefaultLimit is the number of suggestions returned when the caller does
// not specify a limit.
const DefaultLimit = 10

// Suggestion ranking scores. Ticker matches outrank name matches,
// prefix matches outrank substring matches.
const (
	scoreTickerPrefix   = 100
	scoreTickerContains = 90
	scoreNamePrefix     = 80
	scoreNameContains   = 70
)

// ReferenceRepository は参照カタログの読み取り層を抽象化します。
type ReferenceRepository interface {
	ListActive(ctx context.Context) ([]entity.ReferenceEntry, error)
}

// SuggestUsecase provides interactive search-as-you-type over the catalog.
type SuggestUsecase struct {
	refs ReferenceRepository
}

// NewSuggestUsecase はSuggestUsecaseの新しいインスタンスを生成します。
func NewSuggestUsecase(refs ReferenceRepository) *SuggestUsecase {
	return &SuggestUsecase{refs: refs}
}

// Suggest returns the catalog entries best matching a partial query.
// An empty query returns no suggestions rather than the whole catalog.
func (u *SuggestUsecase) Suggest(ctx context.Context, query string, limit int) ([]entity.ReferenceEntry, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	entries, err := u.refs.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return FilterSuggestions(query, entries, limit), nil
}

// FilterSuggestions ranks catalog entries against a query: ticker-prefix,
// ticker-substring, name-prefix, name-substring, in that order of
// preference. Non-matching entries are excluded, ties keep catalog order,
// and at most limit entries (DefaultLimit when limit <= 0) are returned.
func FilterSuggestions(query string, entries []entity.ReferenceEntry, limit int) []entity.ReferenceEntry {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	type scored struct {
		entry entity.ReferenceEntry
		score int
	}
	matched := make([]scored, 0, len(entries))
	for _, e := range entries {
		ticker := strings.ToUpper(e.Ticker)
		name := strings.ToUpper(e.Name)

		var score int
		switch {
		case strings.HasPrefix(ticker, q):
			score = scoreTickerPrefix
		case strings.Contains(ticker, q):
			score = scoreTickerContains
		case strings.HasPrefix(name, q):
			score = scoreNamePrefix
		case strings.Contains(name, q):
			score = scoreNameContains
		default:
			continue
		}
		matched = append(matched, scored{entry: e, score: score})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}
	out := make([]entity.ReferenceEntry, 0, len(matched))
	for _, m := range matched {
		out = append(out, m.entry)
	}
	return out
}
