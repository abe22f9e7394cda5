package adapters

import (
	"context"
	"sort"
	"sync"

	"symbol_backend/internal/feature/resolution/domain/entity"
	"symbol_backend/internal/feature/resolution/usecase"
)

// registryMemory はRegistryRepositoryインターフェースのインメモリ実装です。
// データベースが構成されていない場合のフォールバックとして、またテストで使用します。
// プロセス終了でマッピングは失われます。
type registryMemory struct {
	mu      sync.RWMutex
	entries map[string]entity.RegistryEntry
}

var _ usecase.RegistryRepository = (*registryMemory)(nil)

// NewRegistryMemory はregistryMemoryの新しいインスタンスを生成します。
func NewRegistryMemory() *registryMemory {
	return &registryMemory{entries: make(map[string]entity.RegistryEntry)}
}

// Get は生シンボルのエントリを返します。
// エントリが存在しない場合、usecase.ErrMappingNotFoundを返します。
func (r *registryMemory) Get(_ context.Context, rawSymbol string) (*entity.RegistryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[rawSymbol]
	if !ok {
		return nil, usecase.ErrMappingNotFound
	}
	return &e, nil
}

// Put はエントリを保存します。同じ生シンボルの既存エントリは上書きされます。
func (r *registryMemory) Put(_ context.Context, e entity.RegistryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[e.RawSymbol] = e
	return nil
}

// ListAll は全エントリを生シンボルの昇順で返します。
func (r *registryMemory) ListAll(_ context.Context) ([]entity.RegistryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RawSymbol < out[j].RawSymbol })
	return out, nil
}
