package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	g := NoopGeneratorHooks{}
	g.OnGenerateStart(ctx, 4)
	g.OnWordPlaced(ctx, "COFFEE", 12)
	g.OnWordDropped(ctx, "QQQQ", 0)
	g.OnGenerateComplete(ctx, 3, 1, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "puzzle")
	c.OnCacheMiss(ctx, "puzzle")
	c.OnCacheSet(ctx, "puzzle", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Generator().(NoopGeneratorHooks); !ok {
		t.Error("Generator() should return NoopGeneratorHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customGenerator := &testGeneratorHooks{}
	SetGeneratorHooks(customGenerator)
	if Generator() != customGenerator {
		t.Error("SetGeneratorHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Generator().(NoopGeneratorHooks); !ok {
		t.Error("Reset() should restore NoopGeneratorHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksRestoresNoop(t *testing.T) {
	Reset()

	SetGeneratorHooks(&testGeneratorHooks{})
	SetGeneratorHooks(nil)
	if _, ok := Generator().(NoopGeneratorHooks); !ok {
		t.Error("SetGeneratorHooks(nil) should restore NoopGeneratorHooks")
	}

	SetCacheHooks(&testCacheHooks{})
	SetCacheHooks(nil)
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("SetCacheHooks(nil) should restore NoopCacheHooks")
	}

	Reset()
}

// Test implementations
type testGeneratorHooks struct{ NoopGeneratorHooks }
type testCacheHooks struct{ NoopCacheHooks }
