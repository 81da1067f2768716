// Package observability provides hooks for metrics and tracing.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about compilation runs and cache operations;
// libraries emit events through the registered hooks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCompileHooks(&myCompileHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Compile().OnCompileStart(ctx, texPath)
//	// ... run latexmk ...
//	observability.Compile().OnCompileComplete(ctx, texPath, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// CompileHooks receives events from the compilation pipeline.
type CompileHooks interface {
	// Compile events
	OnCompileStart(ctx context.Context, texPath string)
	OnCompileComplete(ctx context.Context, texPath string, duration time.Duration, err error)

	// Rasterization events
	OnRasterizeStart(ctx context.Context, pdfPath string)
	OnRasterizeComplete(ctx context.Context, pdfPath string, pages int, duration time.Duration, err error)
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

// NoopCompileHooks is a no-op implementation of CompileHooks.
type NoopCompileHooks struct{}

func (NoopCompileHooks) OnCompileStart(context.Context, string)                          {}
func (NoopCompileHooks) OnCompileComplete(context.Context, string, time.Duration, error) {}
func (NoopCompileHooks) OnRasterizeStart(context.Context, string)                        {}
func (NoopCompileHooks) OnRasterizeComplete(context.Context, string, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	compileHooks CompileHooks = NoopCompileHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	hooksMu      sync.RWMutex
)

// SetCompileHooks registers custom compile hooks.
// This should be called once at application startup.
func SetCompileHooks(h CompileHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		compileHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Compile returns the registered compile hooks.
func Compile() CompileHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return compileHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	compileHooks = NoopCompileHooks{}
	cacheHooks = NoopCacheHooks{}
}
