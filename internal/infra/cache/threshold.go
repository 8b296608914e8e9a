package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hydro-command/internal/domain/threshold"
	"hydro-command/internal/infra"
	"hydro-command/internal/pkg/clock"
	"hydro-command/internal/pkg/metrics"
)

const DefaultThresholdTTL = 10 * time.Second

type ThresholdStore interface {
	FindForDevice(ctx context.Context, deviceID string, cropID *string) (*threshold.Set, error)
	ListDevicesUsingFleetDefault(ctx context.Context) ([]string, error)
}

type thresholdEntry struct {
	set       *threshold.Set
	fetchedAt time.Time
}

// ThresholdCache serves threshold sets for the alert evaluator. Entries live
// for ttl; a miss or stale entry triggers a synchronous refetch. Lookups never
// fail: store errors fall back to the defaults without caching them, while a
// device with no stored set caches the defaults like any other answer.
// A device set is completed from the fleet row, then from the built-in ranges.
type ThresholdCache struct {
	store    ThresholdStore
	clock    clock.Clock
	ttl      time.Duration
	defaults *threshold.Set

	mu         sync.Mutex
	entries    map[string]thresholdEntry
	generation uint64
}

func NewThresholdCache(store ThresholdStore, clk clock.Clock, ttl time.Duration, defaults *threshold.Set) *ThresholdCache {
	if ttl <= 0 {
		ttl = DefaultThresholdTTL
	}
	if defaults == nil {
		defaults = threshold.MustDefaults()
	}
	return &ThresholdCache{
		store:    store,
		clock:    clk,
		ttl:      ttl,
		defaults: defaults,
		entries:  make(map[string]thresholdEntry),
	}
}

func (c *ThresholdCache) Get(ctx context.Context, deviceID string) *threshold.Set {
	if deviceID == "" {
		deviceID = threshold.AllDevices
	}

	c.mu.Lock()
	if e, ok := c.entries[deviceID]; ok && c.clock.Now().Sub(e.fetchedAt) < c.ttl {
		c.mu.Unlock()
		metrics.IncThresholdCache("hit")
		return e.set
	}
	gen := c.generation
	c.mu.Unlock()

	metrics.IncThresholdCache("miss")
	return c.refresh(ctx, deviceID, gen)
}

// Invalidate drops every entry. Fetches already in flight will not store
// their results.
func (c *ThresholdCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]thresholdEntry)
	c.generation++
}

func (c *ThresholdCache) refresh(ctx context.Context, deviceID string, gen uint64) *threshold.Set {
	set, err := c.store.FindForDevice(ctx, deviceID, nil)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			slog.WarnContext(ctx, "threshold fetch failed, serving defaults", "device_id", deviceID, "error", err)
			metrics.IncThresholdCache("fallback")
			return c.defaults.ForDevice(deviceID)
		}
		served := c.defaults.ForDevice(deviceID)
		c.storeEntries(gen, map[string]*threshold.Set{deviceID: served})
		return served
	}

	if !set.IsFleetDefault() {
		merged := set.WithDefaults(c.fleetFallback(ctx))
		c.storeEntries(gen, map[string]*threshold.Set{deviceID: merged})
		return merged
	}
	merged := set.WithDefaults(c.defaults)

	// The fleet row answered: seed every device that has no set of its own.
	fresh := map[string]*threshold.Set{threshold.AllDevices: merged}
	ids, err := c.store.ListDevicesUsingFleetDefault(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to list devices for threshold seeding", "error", err)
	}
	for _, id := range ids {
		fresh[id] = merged.ForDevice(id)
	}
	served := merged.ForDevice(deviceID)
	fresh[deviceID] = served
	c.storeEntries(gen, fresh)
	return served
}

// fleetFallback is the fleet row over the built-in ranges, or the built-in
// ranges alone when no fleet row can be read.
func (c *ThresholdCache) fleetFallback(ctx context.Context) *threshold.Set {
	fleet, err := c.store.FindForDevice(ctx, threshold.AllDevices, nil)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			slog.WarnContext(ctx, "fleet threshold fetch failed, using built-in ranges", "error", err)
		}
		return c.defaults
	}
	return fleet.WithDefaults(c.defaults)
}

func (c *ThresholdCache) storeEntries(gen uint64, sets map[string]*threshold.Set) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	now := c.clock.Now()
	for id, set := range sets {
		c.entries[id] = thresholdEntry{set: set, fetchedAt: now}
	}
}
