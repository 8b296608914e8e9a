//go:build unit

package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"hydro-command/internal/worker"

	"github.com/stretchr/testify/assert"
)

type countingExpirer struct {
	calls atomic.Int32
	n     int64
	err   error
}

func (c *countingExpirer) ExpireOverdue(context.Context) (int64, error) {
	c.calls.Add(1)
	return c.n, c.err
}

func TestExpirySweeper_RunOnce(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, int64(3), worker.NewExpirySweeper(&countingExpirer{n: 3}, time.Second).RunOnce(ctx))
	assert.Equal(t, int64(0), worker.NewExpirySweeper(&countingExpirer{err: assert.AnError}, time.Second).RunOnce(ctx))
}

func TestExpirySweeper_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	expirer := &countingExpirer{}
	done := make(chan struct{})

	go func() {
		worker.NewExpirySweeper(expirer, 5*time.Millisecond).Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return expirer.calls.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}
