package book

import "crux/infra/casloop"

// DefaultTickerCapacity bounds the number of distinct symbols a book
// tracks unless overridden at construction.
const DefaultTickerCapacity = 1024

// tickerTable is one immutable snapshot of the registry. Growth copies
// the slice and appends; published snapshots are never modified.
type tickerTable struct {
	symbols []string
}

// TickerIndex is an append-only mapping from symbol to slot number.
// A symbol keeps its slot for the index's lifetime; slots are never
// reused or removed.
type TickerIndex struct {
	capacity int
	table    casloop.Cell[tickerTable]
}

func NewTickerIndex(capacity int) *TickerIndex {
	if capacity <= 0 {
		capacity = DefaultTickerCapacity
	}
	ix := &TickerIndex{capacity: capacity}
	ix.table.Store(&tickerTable{})
	return ix
}

// Resolve returns the stable slot for symbol, registering it on first
// use. Concurrent Resolve calls for distinct new symbols each retry
// until their own registration lands, so none is silently overwritten.
func (ix *TickerIndex) Resolve(symbol string) (int, error) {
	for {
		cur := ix.table.Load()
		for i, s := range cur.symbols {
			if s == symbol {
				return i, nil
			}
		}
		if len(cur.symbols) >= ix.capacity {
			return 0, ErrCapacityExceeded
		}

		next := &tickerTable{symbols: make([]string, len(cur.symbols)+1)}
		copy(next.symbols, cur.symbols)
		next.symbols[len(cur.symbols)] = symbol

		if ix.table.CompareAndSwap(cur, next) {
			return len(cur.symbols), nil
		}
	}
}

// Lookup returns the slot for an already registered symbol.
func (ix *TickerIndex) Lookup(symbol string) (int, bool) {
	for i, s := range ix.table.Load().symbols {
		if s == symbol {
			return i, true
		}
	}
	return 0, false
}

// Symbols returns the registered symbols as of the call, in slot order.
// The returned slice is a published snapshot and must not be modified.
func (ix *TickerIndex) Symbols() []string {
	return ix.table.Load().symbols
}

func (ix *TickerIndex) Capacity() int {
	return ix.capacity
}
