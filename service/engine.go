package service

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"crux/domain/book"
	"crux/infra/ring"
	"crux/infra/sequence"
	"crux/metrics"
)

// Engine is the write entry point into the book. All coordination
// between the domain, the sequencer, and the broadcast ring happens
// here.
type Engine struct {
	book *book.OrderBook
	seq  *sequence.Sequencer
	exec *ring.Buffer[book.MatchResult]
	log  *zap.Logger

	// The execution ring is single-producer; matching may be driven
	// concurrently (timer job, Match RPC), so enqueues are serialized.
	// The book itself is never behind this lock.
	pushMu sync.Mutex
}

// NewEngine wires all dependencies. A nil exec ring disables
// broadcasting.
func NewEngine(b *book.OrderBook, seq *sequence.Sequencer, exec *ring.Buffer[book.MatchResult], log *zap.Logger) *Engine {
	return &Engine{book: b, seq: seq, exec: exec, log: log}
}

// PlaceOrder submits one order and returns its assigned sequence
// number. Validation failures come back before any shared state is
// touched.
func (e *Engine) PlaceOrder(side book.Side, symbol string, qty int64, price float64) (uint64, error) {
	if err := e.book.AddOrder(side, symbol, qty, price); err != nil {
		metrics.OrdersRejectedTotal.WithLabelValues(rejectReason(err)).Inc()
		return 0, fmt.Errorf("place order %s %s: %w", side, symbol, err)
	}
	return e.seq.Next(), nil
}

// MatchOnce crosses the whole book one pass and hands the executions
// to the broadcast ring.
func (e *Engine) MatchOnce() []book.MatchResult {
	results := e.book.MatchOrders()

	metrics.MatchRounds.Observe(float64(len(results)))
	metrics.TickersRegistered.Set(float64(len(e.book.Tickers().Symbols())))

	if e.exec != nil && len(results) > 0 {
		e.pushMu.Lock()
		for _, m := range results {
			if !e.exec.Push(m) {
				metrics.ExecutionsDropped.Inc()
				e.log.Warn("execution ring full, broadcast dropped",
					zap.String("symbol", m.Symbol), zap.Int64("qty", m.Qty))
			}
		}
		e.pushMu.Unlock()
	}
	return results
}

// Level is one aggregated price level of a depth view.
type Level struct {
	Price float64
	Qty   int64
}

// Depth returns up to maxLevels aggregated levels per side for a
// registered symbol. The view is one consistent snapshot: both sides
// come from the same BookSlot generation.
func (e *Engine) Depth(symbol string, maxLevels int) (bids, asks []Level, ok bool) {
	slot, ok := e.book.Snapshot(symbol)
	if !ok {
		return nil, nil, false
	}
	return aggregate(slot.Bids, maxLevels), aggregate(slot.Asks, maxLevels), true
}

// aggregate folds a sorted queue into per-price levels. Equal prices
// are adjacent by the book's sort invariant.
func aggregate(head *book.Order, maxLevels int) []Level {
	var out []Level
	for o := head; o != nil; o = o.Next() {
		if n := len(out); n > 0 && out[n-1].Price == o.Price {
			out[n-1].Qty += o.Qty
			continue
		}
		if maxLevels > 0 && len(out) == maxLevels {
			break
		}
		out = append(out, Level{Price: o.Price, Qty: o.Qty})
	}
	return out
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, book.ErrCapacityExceeded):
		return "capacity"
	case errors.Is(err, book.ErrInvalidOrder):
		return "invalid"
	default:
		return "other"
	}
}
