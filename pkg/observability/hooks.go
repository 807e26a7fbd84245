// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about layout computation, rendering, and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, plain logs, etc.)
//
// The OnLabelDropped hook deserves a note: the layout engine silently omits
// curved labels that cannot fit their feature's span. That silence is part of
// the rendering contract, so the hook is the only way to observe a drop.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Layout().OnLayoutStart(ctx, featureCount)
//	// ... compute layout ...
//	observability.Layout().OnLayoutComplete(ctx, orbitCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from the circular layout engine.
type LayoutHooks interface {
	// OnLayoutStart records the beginning of a layout computation.
	OnLayoutStart(ctx context.Context, featureCount int)

	// OnOrbitsAssigned records the result of orbit allocation.
	OnOrbitsAssigned(ctx context.Context, orbitCount int)

	// OnLabelDropped records a curved label omitted because its text
	// cannot fit the feature's angular span.
	OnLabelDropped(ctx context.Context, feature, reason string)

	// OnLayoutComplete records the end of a layout computation.
	OnLayoutComplete(ctx context.Context, orbitCount int, duration time.Duration, err error)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the render sinks.
type RenderHooks interface {
	// OnRenderStart records the formats about to be rendered.
	OnRenderStart(ctx context.Context, formats []string)

	// OnRenderComplete records the end of a render pass.
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutStart(context.Context, int)             {}
func (NoopLayoutHooks) OnOrbitsAssigned(context.Context, int)          {}
func (NoopLayoutHooks) OnLabelDropped(context.Context, string, string) {}
func (NoopLayoutHooks) OnLayoutComplete(context.Context, int, time.Duration, error) {
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, []string) {}
func (NoopRenderHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Registration
// =============================================================================

var (
	mu          sync.RWMutex
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
)

// SetLayoutHooks registers layout hooks. Pass nil to restore the no-op default.
func SetLayoutHooks(h LayoutHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		layoutHooks = NoopLayoutHooks{}
		return
	}
	layoutHooks = h
}

// SetRenderHooks registers render hooks. Pass nil to restore the no-op default.
func SetRenderHooks(h RenderHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		renderHooks = NoopRenderHooks{}
		return
	}
	renderHooks = h
}

// SetCacheHooks registers cache hooks. Pass nil to restore the no-op default.
func SetCacheHooks(h CacheHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		cacheHooks = NoopCacheHooks{}
		return
	}
	cacheHooks = h
}

// Reset restores all hooks to their no-op defaults. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	renderHooks = NoopRenderHooks{}
	cacheHooks = NoopCacheHooks{}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	mu.RLock()
	defer mu.RUnlock()
	return layoutHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	mu.RLock()
	defer mu.RUnlock()
	return renderHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	mu.RLock()
	defer mu.RUnlock()
	return cacheHooks
}
