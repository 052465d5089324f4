// Package broadcaster is a background job that drains the execution
// ring and publishes each execution to an external sink (Kafka).
package broadcaster

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"crux/domain/book"
	"crux/infra/ring"
)

// Sink abstracts the Kafka producer so tests can capture publishes.
type Sink interface {
	Send(ctx context.Context, key, value []byte) error
}

// executionEvent is the wire format on the executions topic.
type executionEvent struct {
	V         int     `json:"v"`
	Symbol    string  `json:"symbol"`
	Qty       int64   `json:"qty"`
	BuyPrice  float64 `json:"buy_price"`
	SellPrice float64 `json:"sell_price"`
	Time      int64   `json:"ts"`
}

type Broadcaster struct {
	exec     *ring.Buffer[book.MatchResult]
	sink     Sink
	interval time.Duration
	log      *zap.Logger
}

func New(exec *ring.Buffer[book.MatchResult], sink Sink, interval time.Duration, log *zap.Logger) *Broadcaster {
	return &Broadcaster{exec: exec, sink: sink, interval: interval, log: log}
}

// Run drains the ring on a timer until ctx is cancelled. The ring is
// SPSC: this job is its only consumer.
func (b *Broadcaster) Run(ctx context.Context) {
	b.log.Info("broadcaster started", zap.Duration("interval", b.interval))

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			b.drain(context.Background())
			b.log.Info("broadcaster stopped")
			return
		case <-ticker.C:
			b.drain(ctx)
		}
	}
}

func (b *Broadcaster) drain(ctx context.Context) {
	for {
		m, ok := b.exec.Pop()
		if !ok {
			return
		}
		if err := b.publish(ctx, m); err != nil {
			b.log.Warn("publish failed",
				zap.String("symbol", m.Symbol), zap.Error(err))
		}
	}
}

func (b *Broadcaster) publish(ctx context.Context, m book.MatchResult) error {
	payload, err := json.Marshal(executionEvent{
		V:         1,
		Symbol:    m.Symbol,
		Qty:       m.Qty,
		BuyPrice:  m.BuyPrice,
		SellPrice: m.SellPrice,
		Time:      time.Now().UnixNano(),
	})
	if err != nil {
		return err
	}
	return b.sink.Send(ctx, []byte(m.Symbol), payload)
}
