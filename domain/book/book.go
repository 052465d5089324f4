package book

import (
	"fmt"

	"crux/infra/casloop"
)

// OrderBook is a fixed-capacity array of atomically swapped BookSlot
// pairs, one per registered ticker. Any number of goroutines may call
// AddOrder and MatchOrders concurrently; no operation blocks on a lock.
type OrderBook struct {
	tickers *TickerIndex
	slots   []casloop.Cell[BookSlot]
	obs     Observer
}

func NewOrderBook() *OrderBook {
	return NewOrderBookWith(DefaultTickerCapacity, nil)
}

// NewOrderBookWith sizes the ticker table and installs an observer.
// A nil observer disables notifications.
func NewOrderBookWith(capacity int, obs Observer) *OrderBook {
	if capacity <= 0 {
		capacity = DefaultTickerCapacity
	}
	if obs == nil {
		obs = nopObserver{}
	}
	b := &OrderBook{
		tickers: NewTickerIndex(capacity),
		slots:   make([]casloop.Cell[BookSlot], capacity),
		obs:     obs,
	}
	for i := range b.slots {
		b.slots[i].Store(&BookSlot{})
	}
	return b
}

// Tickers exposes the symbol registry for lookups and iteration.
func (b *OrderBook) Tickers() *TickerIndex {
	return b.tickers
}

// Snapshot returns the current BookSlot for a registered symbol. The
// returned pair is immutable; traversing it is always safe, though a
// concurrent swap may make it stale.
func (b *OrderBook) Snapshot(symbol string) (*BookSlot, bool) {
	slot, ok := b.tickers.Lookup(symbol)
	if !ok {
		return nil, false
	}
	return b.slots[slot].Load(), true
}

// AddOrder validates and inserts one order at its sorted position in
// the symbol's bid or ask queue. Validation failures return before any
// shared state is touched; CAS contention is retried internally and
// never surfaces to the caller.
func (b *OrderBook) AddOrder(side Side, symbol string, qty int64, price float64) error {
	if qty <= 0 {
		return fmt.Errorf("%w: quantity %d must be positive", ErrInvalidOrder, qty)
	}
	if price < 0 {
		return fmt.Errorf("%w: price %v must not be negative", ErrInvalidOrder, price)
	}

	slot, err := b.tickers.Resolve(symbol)
	if err != nil {
		return err
	}

	o := &Order{Side: side, Symbol: symbol, Qty: qty, Price: price}
	b.insert(&b.slots[slot], o)
	b.obs.OrderAccepted(side, symbol, qty, price)
	return nil
}

// insert runs the optimistic insertion loop. Inserting at the head
// swaps the whole BookSlot so the pair invariant holds; inserting
// mid-queue CASes only the predecessor's next link, but the walk to
// that predecessor starts from a fresh slot read on every attempt, so
// a whole-slot swap elsewhere invalidates the chain and forces a
// restart.
func (b *OrderBook) insert(cell *casloop.Cell[BookSlot], o *Order) {
	casloop.Retry(func() bool {
		cur := cell.Load()
		head := cur.head(o.Side)

		if head == nil || precedes(o, head) {
			o.next.Store(head)
			return cell.CompareAndSwap(cur, cur.withHead(o.Side, o))
		}

		prev := head
		next := prev.Next()
		for next != nil && !precedes(o, next) {
			prev = next
			next = prev.Next()
		}
		o.next.Store(next)
		return prev.next.CompareAndSwap(next, o)
	})
}

// precedes reports whether o sorts at or before n in its queue: bids
// descend, asks ascend, and the >=/<= tie rule puts the newer order
// first at equal price (LIFO priority).
func precedes(o, n *Order) bool {
	if o.Side == Buy {
		return o.Price >= n.Price
	}
	return o.Price <= n.Price
}

// MatchOrders crosses every ticker registered as of the call and
// returns the executions in the order their CASes won. Tickers
// registered mid-call are picked up by the next invocation.
func (b *OrderBook) MatchOrders() []MatchResult {
	symbols := b.tickers.Symbols()

	var out []MatchResult
	for slot := range symbols {
		cell := &b.slots[slot]
		for {
			m, ok := crossOnce(cell)
			if !ok {
				break
			}
			out = append(out, m)
			b.obs.TradeExecuted(m)
		}
	}
	return out
}

// crossOnce attempts one execution against the slot. It reports false
// once the spread is positive or a queue is empty; a lost CAS (to a
// concurrent insert or another matcher) retries against fresh state so
// no execution is ever double-counted.
func crossOnce(cell *casloop.Cell[BookSlot]) (MatchResult, bool) {
	var (
		m       MatchResult
		crossed bool
	)
	casloop.Retry(func() bool {
		cur := cell.Load()
		bid, ask := cur.Bids, cur.Asks
		if bid == nil || ask == nil || ask.Price > bid.Price {
			crossed = false
			return true
		}

		fill := min(bid.Qty, ask.Qty)
		next := &BookSlot{Bids: bid.Next(), Asks: ask.Next()}
		switch {
		case bid.Qty > ask.Qty:
			next.Bids = residual(bid, bid.Qty-fill)
		case ask.Qty > bid.Qty:
			next.Asks = residual(ask, ask.Qty-fill)
		}

		if !cell.CompareAndSwap(cur, next) {
			return false
		}
		m = MatchResult{Symbol: bid.Symbol, Qty: fill, BuyPrice: bid.Price, SellPrice: ask.Price}
		crossed = true
		return true
	})
	return m, crossed
}

// residual is the remainder of a partially filled head: a fresh node,
// never a mutation of the original, linked to the old successor.
func residual(o *Order, qty int64) *Order {
	r := &Order{Side: o.Side, Symbol: o.Symbol, Qty: qty, Price: o.Price}
	r.next.Store(o.Next())
	return r
}

func (s *BookSlot) head(side Side) *Order {
	if side == Buy {
		return s.Bids
	}
	return s.Asks
}

// withHead keeps the opposite side by identity.
func (s *BookSlot) withHead(side Side, o *Order) *BookSlot {
	if side == Buy {
		return &BookSlot{Bids: o, Asks: s.Asks}
	}
	return &BookSlot{Bids: s.Bids, Asks: o}
}
