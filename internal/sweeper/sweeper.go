// Package sweeper periodically purges expired admin sessions so the
// sessions table doesn't accumulate rows for sign-ins nobody finished.
package sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type SessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

type Service struct {
	purger   SessionPurger
	interval time.Duration
}

func New(purger SessionPurger, interval time.Duration) *Service {
	return &Service{
		purger:   purger,
		interval: interval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Session sweeper started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping session sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	purged, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		zap.L().Error("failed to purge expired sessions", zap.Error(err))
		return
	}
	if purged > 0 {
		zap.L().Info("purged expired sessions", zap.Int64("count", purged))
	}
}
