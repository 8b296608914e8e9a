package clock

import (
	"sort"
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// Timer is a scheduled callback that can be cancelled before it fires.
type Timer interface {
	Stop() bool
}

// TimerClock schedules callbacks on the clock's own timeline.
type TimerClock interface {
	Clock
	AfterFunc(d time.Duration, f func()) Timer
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func NewRealTimerClock() TimerClock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// MockClock only moves when Set or Add is called. Timers registered with
// AfterFunc fire synchronously from Add, in deadline order.
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
	timers      []*mockTimer
	nextID      int
}

type mockTimer struct {
	clock    *MockClock
	id       int
	deadline time.Time
	f        func()
	stopped  bool
	fired    bool
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	d := t.Sub(c.currentTime)
	c.mu.Unlock()
	if d < 0 {
		c.mu.Lock()
		c.currentTime = t
		c.mu.Unlock()
		return
	}
	c.Add(d)
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	target := c.currentTime.Add(d)
	for {
		t := c.nextDueLocked(target)
		if t == nil {
			break
		}
		t.fired = true
		if t.deadline.After(c.currentTime) {
			c.currentTime = t.deadline
		}
		c.mu.Unlock()
		t.f()
		c.mu.Lock()
	}
	c.currentTime = target
	c.mu.Unlock()
}

func (c *MockClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	t := &mockTimer{clock: c, id: c.nextID, deadline: c.currentTime.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

// Pending reports how many timers are still scheduled.
func (c *MockClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func (c *MockClock) nextDueLocked(target time.Time) *mockTimer {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	c.timers = live
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].deadline.Equal(c.timers[j].deadline) {
			return c.timers[i].id < c.timers[j].id
		}
		return c.timers[i].deadline.Before(c.timers[j].deadline)
	})
	if len(c.timers) == 0 || c.timers[0].deadline.After(target) {
		return nil
	}
	return c.timers[0]
}

func (t *mockTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
