package service

import (
	"go.uber.org/zap"

	"crux/domain/book"
	"crux/metrics"
)

// BookObserver is the engine's logging and metrics hook, installed
// into the book at construction. It runs on the goroutines driving the
// book, so it stays allocation-light.
type BookObserver struct {
	log *zap.Logger
}

func NewBookObserver(log *zap.Logger) *BookObserver {
	return &BookObserver{log: log}
}

func (o *BookObserver) OrderAccepted(side book.Side, symbol string, qty int64, price float64) {
	metrics.OrdersAcceptedTotal.WithLabelValues(symbol, side.String()).Inc()
	o.log.Info("order accepted",
		zap.Stringer("side", side),
		zap.String("symbol", symbol),
		zap.Int64("qty", qty),
		zap.Float64("price", price),
	)
}

func (o *BookObserver) TradeExecuted(m book.MatchResult) {
	metrics.ExecutionsTotal.WithLabelValues(m.Symbol).Inc()
	metrics.ExecutedQtyTotal.WithLabelValues(m.Symbol).Add(float64(m.Qty))
	o.log.Info("trade executed",
		zap.String("symbol", m.Symbol),
		zap.Int64("qty", m.Qty),
		zap.Float64("buy_price", m.BuyPrice),
		zap.Float64("sell_price", m.SellPrice),
	)
}
