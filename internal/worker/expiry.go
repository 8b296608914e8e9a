package worker

import (
	"context"
	"log/slog"
	"time"
)

const DefaultSweepInterval = 30 * time.Second

type CommandExpirer interface {
	ExpireOverdue(ctx context.Context) (int64, error)
}

// ExpirySweeper periodically marks pending commands past their deadline as
// expired. Expiry is silent: nothing is notified.
type ExpirySweeper struct {
	expirer  CommandExpirer
	interval time.Duration
}

func NewExpirySweeper(expirer CommandExpirer, interval time.Duration) *ExpirySweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &ExpirySweeper{
		expirer:  expirer,
		interval: interval,
	}
}

// Start blocks until ctx is cancelled.
func (s *ExpirySweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

func (s *ExpirySweeper) RunOnce(ctx context.Context) int64 {
	n, err := s.expirer.ExpireOverdue(ctx)
	if err != nil {
		if ctx.Err() == nil {
			slog.WarnContext(ctx, "command expiry sweep failed", "error", err)
		}
		return 0
	}
	if n > 0 {
		slog.DebugContext(ctx, "expired overdue commands", "count", n)
	}
	return n
}
