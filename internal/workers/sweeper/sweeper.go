// Package sweeper periodically evicts idle wizard sessions.
package sweeper

import (
	"context"
	"time"

	"peorisk/internal/logger"
)

// Expirer drops entries idle for longer than maxAge.
type Expirer interface {
	Expire(maxAge time.Duration) int
}

// Run ticks every interval until ctx is done.
func Run(ctx context.Context, target Expirer, interval, maxAge time.Duration, log logger.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := target.Expire(maxAge); n > 0 {
				log.Info("expired idle sessions", map[string]interface{}{"count": n})
			}
		}
	}
}
