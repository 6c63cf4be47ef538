// Package gate implements the category-based concurrency gate (spec §4.10):
// a semaphore per tool category, so e.g. GPU-bound password cracking never
// runs more than one at a time while network scanners can run many
// concurrently. Grounded on
// _examples/original_source/src/voidwave/orchestration/semaphore.py's
// CategorySemaphore, with asyncio.Semaphore's acquire/release expressed via
// golang.org/x/sync/semaphore.Weighted — the teacher module already depends
// on golang.org/x/sync (for errgroup); this is the idiomatic Go counterpart
// for a weighted, cancellable semaphore.
package gate

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"voidwave/internal/logging"
)

// Default per-category concurrency limits, mirroring CONCURRENCY_LIMITS.
const (
	CategoryNetworkScanner = "network_scanner"
	CategoryWebScanner     = "web_scanner"
	CategoryPasswordCrack  = "password_cracker"
	CategoryTrafficCapture = "traffic_capture"
	CategoryDefault        = "default"
)

var defaultLimits = map[string]int64{
	CategoryNetworkScanner: 10,
	CategoryWebScanner:     25,
	CategoryPasswordCrack:  1, // GPU exclusivity
	CategoryTrafficCapture: 5,
	CategoryDefault:        10,
}

// Gate hands out weighted-semaphore permits per category.
type Gate struct {
	mu         sync.Mutex
	limits     map[string]int64
	semaphores map[string]*semaphore.Weighted
	active     map[string]int
}

// New builds a Gate using the default category limits.
func New() *Gate {
	return NewWithLimits(defaultLimits)
}

// NewWithLimits builds a Gate with a caller-supplied category->limit table;
// any category not present falls back to CategoryDefault's limit.
func NewWithLimits(limits map[string]int64) *Gate {
	cp := make(map[string]int64, len(limits))
	for k, v := range limits {
		cp[k] = v
	}
	if _, ok := cp[CategoryDefault]; !ok {
		cp[CategoryDefault] = 10
	}
	return &Gate{limits: cp, semaphores: make(map[string]*semaphore.Weighted), active: make(map[string]int)}
}

func (g *Gate) semaphoreFor(category string) *semaphore.Weighted {
	g.mu.Lock()
	defer g.mu.Unlock()
	if sem, ok := g.semaphores[category]; ok {
		return sem
	}
	limit, ok := g.limits[category]
	if !ok {
		limit = g.limits[CategoryDefault]
	}
	sem := semaphore.NewWeighted(limit)
	g.semaphores[category] = sem
	return sem
}

// Acquire blocks until a permit for category is available or ctx is
// cancelled.
func (g *Gate) Acquire(ctx context.Context, category string) error {
	sem := g.semaphoreFor(category)
	if err := sem.Acquire(ctx, 1); err != nil {
		return err
	}
	g.mu.Lock()
	g.active[category]++
	count := g.active[category]
	g.mu.Unlock()
	logging.GateDebug("acquired %s permit (%d active)", category, count)
	return nil
}

// Release returns a permit for category.
func (g *Gate) Release(category string) {
	sem := g.semaphoreFor(category)
	sem.Release(1)
	g.mu.Lock()
	g.active[category]--
	count := g.active[category]
	g.mu.Unlock()
	logging.GateDebug("released %s permit (%d active)", category, count)
}

// ActiveCount reports how many permits for category are currently held.
func (g *Gate) ActiveCount(category string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active[category]
}

// AllActive returns a snapshot of every category's active permit count.
func (g *Gate) AllActive() map[string]int {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make(map[string]int, len(g.active))
	for k, v := range g.active {
		out[k] = v
	}
	return out
}
