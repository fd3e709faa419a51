package worker

import (
	"context"
	"errors"
	"time"

	"github.com/scentora-shop/internal/config"
	"github.com/scentora-shop/internal/logger"
	"github.com/scentora-shop/internal/queue"

	"github.com/hibiken/asynq"
)

const staleCartSweepInterval = time.Hour

// Service runs the asynq consumer plus the stale-cart sweep loop.
type Service struct {
	name      string
	server    *asynq.Server
	mux       *asynq.ServeMux
	consumer  *Consumer
	staleDays int
}

// NewService creates the worker service.
func NewService(cfg *config.QueueConfig, cartCfg config.CartConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		name:      "worker",
		server:    server,
		mux:       mux,
		consumer:  consumer,
		staleDays: cartCfg.StaleCartDays,
	}, nil
}

// Name returns the service name.
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start runs the consumer until the context ends.
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.staleDays > 0 {
		go s.runStaleCartSweep(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop shuts the consumer down.
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

// runStaleCartSweep drops carts untouched for longer than the configured
// number of days. Abandoned anonymous carts otherwise accumulate forever.
func (s *Service) runStaleCartSweep(ctx context.Context) {
	if s == nil || s.consumer == nil || s.consumer.CartRepo == nil {
		return
	}
	runOnce := func() {
		cutoff := time.Now().AddDate(0, 0, -s.staleDays)
		removed, err := s.consumer.CartRepo.DeleteStaleBefore(cutoff)
		if err != nil {
			logger.Warnw("worker_stale_cart_sweep_failed", "error", err)
			return
		}
		if removed > 0 {
			logger.Infow("worker_stale_cart_sweep", "removed", removed, "cutoff", cutoff)
		}
	}
	runOnce()

	ticker := time.NewTicker(staleCartSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
