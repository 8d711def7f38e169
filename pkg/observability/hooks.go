// Package observability provides hooks for instrumenting generation and
// caching without coupling the core libraries to a logging or metrics
// backend.
//
// The generator has no logging of its own: placement progress, dropped words,
// and completion timing are reported through [GeneratorHooks] registered at
// startup. Defaults are no-ops, so libraries can emit events unconditionally.
//
// Register hooks in main before running anything:
//
//	observability.SetGeneratorHooks(&myHooks{})
//	observability.SetCacheHooks(&myCacheHooks{})
//
// Libraries emit events through the accessors:
//
//	observability.Generator().OnWordDropped(ctx, word, candidates)
package observability

import (
	"context"
	"sync"
	"time"
)

// GeneratorHooks receives events from the puzzle generator.
type GeneratorHooks interface {
	// OnGenerateStart fires when generation begins, after input counting but
	// before normalization.
	OnGenerateStart(ctx context.Context, inputWords int)

	// OnWordPlaced fires when a word is fixed on the working grid, including
	// the anchor. Score is the accepted candidate's score (0 for the anchor).
	OnWordPlaced(ctx context.Context, word string, score int)

	// OnWordDropped fires when a word exhausts its placement attempts.
	// Candidates is the number of valid placements that failed the acceptance
	// bar (it can be zero when no intersection existed at all).
	OnWordDropped(ctx context.Context, word string, candidates int)

	// OnGenerateComplete fires when generation finishes, successfully or not.
	OnGenerateComplete(ctx context.Context, placed, dropped int, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopGeneratorHooks is a GeneratorHooks implementation that does nothing.
type NoopGeneratorHooks struct{}

func (NoopGeneratorHooks) OnGenerateStart(context.Context, int)       {}
func (NoopGeneratorHooks) OnWordPlaced(context.Context, string, int)  {}
func (NoopGeneratorHooks) OnWordDropped(context.Context, string, int) {}
func (NoopGeneratorHooks) OnGenerateComplete(context.Context, int, int, time.Duration, error) {
}

// NoopCacheHooks is a CacheHooks implementation that does nothing.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	mu             sync.RWMutex
	generatorHooks GeneratorHooks = NoopGeneratorHooks{}
	cacheHooks     CacheHooks     = NoopCacheHooks{}
)

// SetGeneratorHooks registers hooks for generator events.
// Passing nil restores the no-op implementation.
func SetGeneratorHooks(h GeneratorHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NoopGeneratorHooks{}
	}
	generatorHooks = h
}

// SetCacheHooks registers hooks for cache events.
// Passing nil restores the no-op implementation.
func SetCacheHooks(h CacheHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NoopCacheHooks{}
	}
	cacheHooks = h
}

// Reset restores the no-op implementations for all hook kinds.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	generatorHooks = NoopGeneratorHooks{}
	cacheHooks = NoopCacheHooks{}
}

// Generator returns the registered generator hooks (never nil).
func Generator() GeneratorHooks {
	mu.RLock()
	defer mu.RUnlock()
	return generatorHooks
}

// Cache returns the registered cache hooks (never nil).
func Cache() CacheHooks {
	mu.RLock()
	defer mu.RUnlock()
	return cacheHooks
}
