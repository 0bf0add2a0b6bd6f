package morse

import (
	"context"
	"time"
)

// Clock abstracts blocking waits so transmission timing can be tested
// without real sleeps.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock waits on the wall clock and honors context cancellation.
type RealClock struct{}

// Sleep blocks for d or until ctx is done, returning the context error in
// the latter case.
func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
