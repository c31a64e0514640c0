package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"chipledger/internal/logger"
	"chipledger/internal/store"
)

// Sweeper deletes games nobody has touched within maxAge. Expiry is a
// storage policy; the engine never sees it.
type Sweeper struct {
	store  store.Store
	maxAge time.Duration
}

func NewSweeper(st store.Store, maxAge time.Duration) *Sweeper {
	return &Sweeper{store: st, maxAge: maxAge}
}

func (s *Sweeper) Start(ctx context.Context) {
	t := time.NewTicker(time.Hour)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := s.store.PurgeStale(s.maxAge)
			if err != nil {
				logger.Log.Warn("sweeper purge failed", zap.Error(err))
				continue
			}
			if n > 0 {
				logger.Log.Info("purged stale games", zap.Int64("count", n))
			}
		}
	}
}
