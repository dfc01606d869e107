package sweeper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"peorisk/internal/logger"
)

type countingExpirer struct{ calls atomic.Int32 }

func (c *countingExpirer) Expire(time.Duration) int {
	c.calls.Add(1)
	return 1
}

func TestRunTicksUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	target := &countingExpirer{}
	done := make(chan struct{})
	go func() {
		Run(ctx, target, 5*time.Millisecond, time.Minute, logger.NewNoOpLogger())
		close(done)
	}()

	assert.Eventually(t, func() bool { return target.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunDisabled(t *testing.T) {
	target := &countingExpirer{}
	Run(context.Background(), target, 0, time.Minute, logger.NewNoOpLogger())
	assert.Zero(t, target.calls.Load())
}
