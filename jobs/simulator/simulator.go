// Package simulator generates random order flow for load runs: a
// configurable set of workers submitting random buys and sells across
// two-letter tickers.
package simulator

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"crux/domain/book"
	"crux/service"
)

type Simulator struct {
	svc      *service.Engine
	workers  int
	interval time.Duration
	log      *zap.Logger
}

func New(svc *service.Engine, workers int, interval time.Duration, log *zap.Logger) *Simulator {
	if workers <= 0 {
		workers = 1
	}
	return &Simulator{svc: svc, workers: workers, interval: interval, log: log}
}

// Run starts the workers and blocks until ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) {
	s.log.Info("simulator started", zap.Int("workers", s.workers))

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			s.worker(ctx, rand.New(rand.NewSource(seed)))
		}(time.Now().UnixNano() + int64(i))
	}
	wg.Wait()
	s.log.Info("simulator stopped")
}

func (s *Simulator) worker(ctx context.Context, rng *rand.Rand) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		side := book.Buy
		if rng.Intn(2) == 1 {
			side = book.Sell
		}
		symbol := randTicker(rng)
		qty := int64(rng.Intn(100) + 1)
		price := rng.Float64() * 100

		if _, err := s.svc.PlaceOrder(side, symbol, qty, price); err != nil {
			s.log.Warn("simulated order rejected", zap.Error(err))
		}

		if s.interval > 0 {
			time.Sleep(s.interval)
		}
	}
}

// randTicker draws a two-letter symbol, 676 possibilities, well inside
// the default 1024-slot ticker table.
func randTicker(rng *rand.Rand) string {
	b := [2]byte{
		byte('A' + rng.Intn(26)),
		byte('A' + rng.Intn(26)),
	}
	return string(b[:])
}
