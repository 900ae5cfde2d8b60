package worker

import (
	"context"
	"sync"
	"time"

	"betpool/internal/service"

	"github.com/rs/zerolog"
)

// DepositExpiryWorker periodically fails pending deposits whose confirmation
// window has passed. It replaces any client-side polling responsibility: the
// server is the single point of truth for deposit expiry.
type DepositExpiryWorker struct {
	service  service.DepositService
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	wg       *sync.WaitGroup
}

func NewDepositExpiryWorker(svc service.DepositService, interval time.Duration, logger zerolog.Logger) *DepositExpiryWorker {
	return &DepositExpiryWorker{
		service:  svc,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *DepositExpiryWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Deposit expiry worker started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("Running deposit expiry sweep")
				err := w.service.ExpirePendingDeposits(ctx)
				if err != nil {
					w.logger.Error().Err(err).Msg("Failed to run deposit expiry sweep")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Deposit expiry worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Deposit expiry worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *DepositExpiryWorker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}
