// internal/app/system/tasks/jobs.go
package tasks

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper removes expired entries and reports how many it removed.
type Sweeper interface {
	Sweep() int
}

// Pinger checks that a dependency answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DraftSweepJob removes lesson drafts that have been idle past their TTL.
func DraftSweepJob(drafts Sweeper, interval time.Duration, logger *zap.Logger) Job {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return Job{
		Name:     "draft-sweep",
		Interval: interval,
		Delayed:  true,
		Run: func(ctx context.Context) error {
			if n := drafts.Sweep(); n > 0 {
				logger.Info("swept expired lesson drafts", zap.Int("removed", n))
			}
			return nil
		},
	}
}

// BackendProbeJob logs when the lesson backend stops or starts answering.
func BackendProbeJob(backend Pinger, interval, timeout time.Duration, logger *zap.Logger) Job {
	if interval <= 0 {
		interval = time.Minute
	}
	healthy := true
	return Job{
		Name:     "backend-probe",
		Interval: interval,
		Run: func(ctx context.Context) error {
			pctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			err := backend.Ping(pctx)
			switch {
			case err != nil && healthy:
				healthy = false
				logger.Warn("lesson backend unreachable", zap.Error(err))
			case err == nil && !healthy:
				healthy = true
				logger.Info("lesson backend reachable again")
			}
			return nil
		},
	}
}
