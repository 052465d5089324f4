package book

import (
	"errors"

	"crux/infra/casloop"
)

type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Sell {
		return "sell"
	}
	return "buy"
}

var (
	// ErrInvalidOrder rejects non-positive quantity or negative price.
	ErrInvalidOrder = errors.New("invalid order")

	// ErrCapacityExceeded rejects orders for a new symbol once the
	// ticker table is full.
	ErrCapacityExceeded = errors.New("ticker capacity exceeded")
)

// Order is one resting order in a queue. Side, Symbol, Qty and Price
// never change after construction; a partial fill produces a fresh
// node with the residual quantity instead of mutating this one. The
// next link is set before the node is published and CASed only when
// inserting a successor mid-queue.
type Order struct {
	Side   Side
	Symbol string
	Qty    int64
	Price  float64

	next casloop.Cell[Order]
}

// Next returns the following order in the queue, or nil at the tail.
func (o *Order) Next() *Order {
	return o.next.Load()
}

// BookSlot pairs the two queue heads for one instrument. The pair is
// immutable and swapped wholesale, so no reader can observe bids from
// one generation with asks from another.
type BookSlot struct {
	Bids *Order // sorted by price descending, LIFO at equal price
	Asks *Order // sorted by price ascending, LIFO at equal price
}

// MatchResult describes one execution. Trades execute at each resting
// order's own price, so both prices are recorded; there is no single
// clearing price.
type MatchResult struct {
	Symbol    string
	Qty       int64
	BuyPrice  float64
	SellPrice float64
}
