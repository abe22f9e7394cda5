package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"symbol_backend/internal/feature/resolution/domain/entity"
	"symbol_backend/internal/feature/resolution/match"
)

// RegistryRepository は確定済みシンボルマッピングの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type RegistryRepository interface {
	// Get は生シンボルのライブエントリを返します。
	// エントリが存在しない場合、ErrMappingNotFoundを返します。
	Get(ctx context.Context, rawSymbol string) (*entity.RegistryEntry, error)

	// Put はエントリをupsertします。同じ生シンボルの既存エントリは上書きされます。
	Put(ctx context.Context, e entity.RegistryEntry) error

	// ListAll は全マッピングを生シンボル順で返します。
	ListAll(ctx context.Context) ([]entity.RegistryEntry, error)
}

// ReferenceRepository は参照カタログの読み取り層を抽象化します。
type ReferenceRepository interface {
	// ListActive はアクティブな参照エントリをsort_key順で返します。
	ListActive(ctx context.Context) ([]entity.ReferenceEntry, error)
}

// ResolverUsecase orchestrates symbol resolution: registry lookup first,
// fuzzy matching as the fallback, and the auto-accept decision in between.
type ResolverUsecase struct {
	registry RegistryRepository
	refs     ReferenceRepository
}

// NewResolverUsecase はResolverUsecaseの新しいインスタンスを生成します。
func NewResolverUsecase(registry RegistryRepository, refs ReferenceRepository) *ResolverUsecase {
	return &ResolverUsecase{registry: registry, refs: refs}
}

// referenceLoader supplies the reference catalog on demand, so that registry
// hits never pay for a catalog load.
type referenceLoader func(ctx context.Context) ([]entity.ReferenceEntry, error)

// Resolve maps one raw symbol to a canonical ticker. The outcome is always a
// terminal Resolution state; absence of a match is UNRESOLVED, not an error.
// An auto-accepted match is written back to the registry as a heuristic
// mapping; if that write fails, the resolution is still returned together
// with an error wrapping ErrRegistrySave.
func (u *ResolverUsecase) Resolve(ctx context.Context, rawSymbol string) (entity.Resolution, error) {
	return u.resolveOne(ctx, rawSymbol, u.refs.ListActive)
}

// resolveOne runs the registry-first, match-second flow for one raw symbol.
func (u *ResolverUsecase) resolveOne(ctx context.Context, rawSymbol string, load referenceLoader) (entity.Resolution, error) {
	// Raw symbols are usually short tickers already; only uppercase and trim,
	// never stop-word strip them.
	raw := strings.ToUpper(strings.TrimSpace(rawSymbol))
	if raw == "" {
		return entity.Resolution{State: entity.StateUnresolved}, nil
	}

	// Registry hits are ground truth and bypass scoring entirely.
	hit, err := u.registry.Get(ctx, raw)
	switch {
	case err == nil:
		return entity.Resolution{
			State:      entity.StateRegistryHit,
			Ticker:     hit.Ticker,
			Confidence: hit.Confidence,
		}, nil
	case !errors.Is(err, ErrMappingNotFound):
		// Fail open: an unavailable registry degrades to re-matching,
		// not to a failed resolution.
		slog.Warn("registry lookup failed, falling back to matching",
			"raw_symbol", raw, "error", err)
	}

	refs, err := load(ctx)
	if err != nil {
		return entity.Resolution{}, fmt.Errorf("failed to load reference catalog: %w", err)
	}

	candidates := match.Propose(raw, refs)
	if len(candidates) == 0 {
		return entity.Resolution{State: entity.StateUnresolved}, nil
	}

	top := candidates[0]
	if !match.IsAutoAccept(top.Score) {
		return entity.Resolution{
			State:      entity.StateNeedsConfirmation,
			Candidates: candidates,
		}, nil
	}

	res := entity.Resolution{
		State:      entity.StateAutoMatched,
		Ticker:     top.Ticker,
		Confidence: float64(top.Score) / 100,
		Candidates: candidates,
	}
	entry := entity.RegistryEntry{
		RawSymbol:  raw,
		Ticker:     top.Ticker,
		Source:     entity.SourceHeuristic,
		Confidence: res.Confidence,
		UpdatedAt:  time.Now(),
	}
	if err := u.registry.Put(ctx, entry); err != nil {
		return res, fmt.Errorf("%w: %v", ErrRegistrySave, err)
	}
	return res, nil
}

// Confirm records a human-confirmed mapping with full confidence,
// overwriting any prior entry for the raw symbol.
func (u *ResolverUsecase) Confirm(ctx context.Context, rawSymbol, ticker string) error {
	raw := strings.ToUpper(strings.TrimSpace(rawSymbol))
	ticker = strings.TrimSpace(ticker)
	if raw == "" || ticker == "" {
		return ErrInvalidConfirmation
	}

	entry := entity.RegistryEntry{
		RawSymbol:  raw,
		Ticker:     ticker,
		Source:     entity.SourceManual,
		Confidence: 1.0,
		UpdatedAt:  time.Now(),
	}
	if err := u.registry.Put(ctx, entry); err != nil {
		return fmt.Errorf("%w: %v", ErrRegistrySave, err)
	}
	return nil
}

// Mappings returns every confirmed mapping in the registry.
func (u *ResolverUsecase) Mappings(ctx context.Context) ([]entity.RegistryEntry, error) {
	return u.registry.ListAll(ctx)
}

// ResolveAll resolves a batch of raw symbols concurrently over a bounded
// worker pool, loading the reference catalog once. Registry write failures
// are logged and do not stop the batch. The returned map is keyed by the
// raw symbol as given in the input.
func (u *ResolverUsecase) ResolveAll(ctx context.Context, rawSymbols []string, workers int) (map[string]entity.Resolution, error) {
	if workers <= 0 {
		workers = 4
	}

	refs, err := u.refs.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference catalog: %w", err)
	}
	cached := func(context.Context) ([]entity.ReferenceEntry, error) { return refs, nil }

	jobs := make(chan string)
	results := make(map[string]entity.Resolution, len(rawSymbols))

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for raw := range jobs {
				res, err := u.resolveOne(ctx, raw, cached)
				if err != nil {
					// 1件の書き込み失敗でバッチを止めない
					slog.Error("failed to persist batch resolution", "raw_symbol", raw, "error", err)
				}
				mu.Lock()
				results[raw] = res
				mu.Unlock()
			}
		}()
	}

	for _, raw := range rawSymbols {
		jobs <- raw
	}
	close(jobs)
	wg.Wait()

	return results, nil
}
