package service

import (
	"context"
	"time"

	"mozi-streaming-be/internal/pkg/logger"
	"mozi-streaming-be/internal/repository/unitofwork"
)

type IRetentionService interface {
	// Run starts the purge loop and returns; the loop stops with ctx.
	Run(ctx context.Context)
	PurgeOnce(ctx context.Context) (int64, error)
}

// retentionService hard-deletes chat exchanges older than the retention
// window on a fixed tick. Postgres has no TTL index, so expiry is a worker.
type retentionService struct {
	uowFactory unitofwork.RepositoryFactory
	window     time.Duration
	interval   time.Duration
	logger     logger.ILogger
}

func NewRetentionService(
	uowFactory unitofwork.RepositoryFactory,
	window time.Duration,
	interval time.Duration,
	log logger.ILogger,
) IRetentionService {
	return &retentionService{
		uowFactory: uowFactory,
		window:     window,
		interval:   interval,
		logger:     log,
	}
}

func (s *retentionService) Run(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.purge(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.purge(ctx)
			}
		}
	}()
}

func (s *retentionService) PurgeOnce(ctx context.Context) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	cutoff := time.Now().Add(-s.window)
	return uow.ChatExchangeRepository().DeleteOlderThan(ctx, cutoff)
}

func (s *retentionService) purge(ctx context.Context) {
	removed, err := s.PurgeOnce(ctx)
	if err != nil {
		s.logger.Error("retention_service", "purge failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if removed > 0 {
		s.logger.Info("retention_service", "purged expired exchanges", map[string]interface{}{
			"removed": removed,
		})
	}
}
