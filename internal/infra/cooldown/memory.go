package cooldown

import (
	"context"
	"sync"
	"time"

	"hydro-command/internal/pkg/clock"
)

// Memory is a process-local cooldown table keyed by "<device>:<condition>".
type Memory struct {
	clock clock.Clock

	mu   sync.Mutex
	last map[string]time.Time
}

func NewMemory(clk clock.Clock) *Memory {
	return &Memory{
		clock: clk,
		last:  make(map[string]time.Time),
	}
}

// Acquire reports whether key may fire now and, if so, starts its window.
func (m *Memory) Acquire(_ context.Context, key string, window time.Duration) (bool, error) {
	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()
	if at, ok := m.last[key]; ok && now.Sub(at) < window {
		return false, nil
	}
	m.last[key] = now
	return true, nil
}

func (m *Memory) Release(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.last, key)
	m.mu.Unlock()
	return nil
}
