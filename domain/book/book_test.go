package book

import (
	"errors"
	"math/rand"
	"sync"
	"testing"
)

func collect(head *Order) []*Order {
	var out []*Order
	for o := head; o != nil; o = o.Next() {
		out = append(out, o)
	}
	return out
}

func mustAdd(t *testing.T, b *OrderBook, side Side, symbol string, qty int64, price float64) {
	t.Helper()
	if err := b.AddOrder(side, symbol, qty, price); err != nil {
		t.Fatalf("AddOrder(%v %s %d @%v): %v", side, symbol, qty, price, err)
	}
}

func TestMatchCorrectness(t *testing.T) {
	b := NewOrderBook()
	mustAdd(t, b, Buy, "AA", 10, 100)
	mustAdd(t, b, Sell, "AA", 10, 90)

	results := b.MatchOrders()
	if len(results) != 1 {
		t.Fatalf("expected 1 execution, got %d", len(results))
	}
	m := results[0]
	if m.Symbol != "AA" || m.Qty != 10 || m.BuyPrice != 100 || m.SellPrice != 90 {
		t.Errorf("unexpected execution: %+v", m)
	}

	slot, _ := b.Snapshot("AA")
	if slot.Bids != nil || slot.Asks != nil {
		t.Error("both queues should be empty after a full fill")
	}
}

func TestPartialFillResidual(t *testing.T) {
	b := NewOrderBook()
	mustAdd(t, b, Buy, "AA", 10, 100)
	mustAdd(t, b, Sell, "AA", 4, 90)

	results := b.MatchOrders()
	if len(results) != 1 || results[0].Qty != 4 {
		t.Fatalf("expected one execution of qty 4, got %+v", results)
	}

	slot, _ := b.Snapshot("AA")
	bids := collect(slot.Bids)
	if len(bids) != 1 || bids[0].Qty != 6 || bids[0].Price != 100 {
		t.Errorf("expected residual bid (100,6), got %+v", bids)
	}
	if slot.Asks != nil {
		t.Error("ask queue should be empty")
	}
}

func TestResidualIsFreshNode(t *testing.T) {
	b := NewOrderBook()
	mustAdd(t, b, Buy, "AA", 10, 100)

	before, _ := b.Snapshot("AA")
	orig := before.Bids

	mustAdd(t, b, Sell, "AA", 4, 90)
	b.MatchOrders()

	if orig.Qty != 10 {
		t.Error("original node must not be mutated by a partial fill")
	}
	after, _ := b.Snapshot("AA")
	if after.Bids == orig {
		t.Error("residual must be a fresh node, not the original")
	}
}

func TestNoSpuriousMatch(t *testing.T) {
	b := NewOrderBook()
	mustAdd(t, b, Buy, "AA", 10, 90)
	mustAdd(t, b, Sell, "AA", 10, 100)

	if results := b.MatchOrders(); len(results) != 0 {
		t.Fatalf("uncrossed book must not match, got %+v", results)
	}

	slot, _ := b.Snapshot("AA")
	if len(collect(slot.Bids)) != 1 || len(collect(slot.Asks)) != 1 {
		t.Error("uncrossed queues must be left unchanged")
	}
}

func TestIdempotentNoOp(t *testing.T) {
	b := NewOrderBook()
	mustAdd(t, b, Buy, "AA", 10, 90)
	mustAdd(t, b, Sell, "AA", 10, 100)

	if r := b.MatchOrders(); len(r) != 0 {
		t.Fatalf("first call: expected no executions, got %+v", r)
	}
	if r := b.MatchOrders(); len(r) != 0 {
		t.Fatalf("second call: expected no executions, got %+v", r)
	}
}

func TestEqualQuantitiesAdvanceBothHeads(t *testing.T) {
	b := NewOrderBook()
	mustAdd(t, b, Buy, "AA", 5, 101)
	mustAdd(t, b, Buy, "AA", 7, 100)
	mustAdd(t, b, Sell, "AA", 5, 99)
	mustAdd(t, b, Sell, "AA", 3, 102)

	results := b.MatchOrders()
	if len(results) != 1 {
		t.Fatalf("expected exactly 1 execution, got %d", len(results))
	}
	if results[0].Qty != 5 || results[0].BuyPrice != 101 || results[0].SellPrice != 99 {
		t.Errorf("unexpected execution: %+v", results[0])
	}

	slot, _ := b.Snapshot("AA")
	bids, asks := collect(slot.Bids), collect(slot.Asks)
	if len(bids) != 1 || bids[0].Price != 100 {
		t.Errorf("bid head should have advanced to (100,7), got %+v", bids)
	}
	if len(asks) != 1 || asks[0].Price != 102 {
		t.Errorf("ask head should have advanced to (102,3), got %+v", asks)
	}
}

func TestMatchDrainsCrossedDepth(t *testing.T) {
	b := NewOrderBook()
	mustAdd(t, b, Buy, "AA", 1, 100)
	mustAdd(t, b, Buy, "AA", 1, 99)
	mustAdd(t, b, Buy, "AA", 1, 98)
	mustAdd(t, b, Sell, "AA", 3, 95)

	results := b.MatchOrders()
	if len(results) != 3 {
		t.Fatalf("expected 3 executions, got %d", len(results))
	}
	var filled int64
	for _, m := range results {
		filled += m.Qty
	}
	if filled != 3 {
		t.Errorf("expected total fill 3, got %d", filled)
	}

	slot, _ := b.Snapshot("AA")
	if slot.Bids != nil || slot.Asks != nil {
		t.Error("crossed depth should be fully drained")
	}
}

func TestTieBreakLIFO(t *testing.T) {
	b := NewOrderBook()
	mustAdd(t, b, Sell, "AA", 1, 50)
	mustAdd(t, b, Sell, "AA", 2, 50)

	slot, _ := b.Snapshot("AA")
	asks := collect(slot.Asks)
	if len(asks) != 2 {
		t.Fatalf("expected 2 asks, got %d", len(asks))
	}
	if asks[0].Qty != 2 || asks[1].Qty != 1 {
		t.Error("second-inserted ask at equal price must take the head")
	}

	mustAdd(t, b, Buy, "AA", 3, 60)
	mustAdd(t, b, Buy, "AA", 4, 60)

	slot, _ = b.Snapshot("AA")
	bids := collect(slot.Bids)
	if bids[0].Qty != 4 || bids[1].Qty != 3 {
		t.Error("second-inserted bid at equal price must take the head")
	}
}

func TestMidListInsert(t *testing.T) {
	b := NewOrderBook()
	mustAdd(t, b, Sell, "AA", 1, 10)
	mustAdd(t, b, Sell, "AA", 1, 30)
	mustAdd(t, b, Sell, "AA", 1, 20)

	slot, _ := b.Snapshot("AA")
	asks := collect(slot.Asks)
	want := []float64{10, 20, 30}
	for i, o := range asks {
		if o.Price != want[i] {
			t.Fatalf("ask[%d] = %v, want %v", i, o.Price, want[i])
		}
	}
}

func TestInsertLeavesOtherSideByIdentity(t *testing.T) {
	b := NewOrderBook()
	mustAdd(t, b, Sell, "AA", 1, 50)

	before, _ := b.Snapshot("AA")
	mustAdd(t, b, Buy, "AA", 1, 40)
	after, _ := b.Snapshot("AA")

	if after.Asks != before.Asks {
		t.Error("inserting a bid must not touch the ask queue")
	}
}

func TestInvalidOrder(t *testing.T) {
	b := NewOrderBook()

	if err := b.AddOrder(Buy, "AA", 0, 10); !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("zero quantity: expected ErrInvalidOrder, got %v", err)
	}
	if err := b.AddOrder(Buy, "AA", -5, 10); !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("negative quantity: expected ErrInvalidOrder, got %v", err)
	}
	if err := b.AddOrder(Sell, "AA", 1, -0.01); !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("negative price: expected ErrInvalidOrder, got %v", err)
	}

	// Rejected before any shared-state mutation: not even the ticker
	// table registers the symbol.
	if _, ok := b.Tickers().Lookup("AA"); ok {
		t.Error("rejected orders must not register a ticker")
	}
}

func TestZeroPriceIsValid(t *testing.T) {
	b := NewOrderBook()
	if err := b.AddOrder(Sell, "AA", 1, 0); err != nil {
		t.Fatalf("price 0 must be accepted: %v", err)
	}
}

func TestCapacityExceeded(t *testing.T) {
	b := NewOrderBookWith(2, nil)
	mustAdd(t, b, Buy, "AA", 1, 1)
	mustAdd(t, b, Buy, "BB", 1, 1)

	if err := b.AddOrder(Buy, "CC", 1, 1); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	// Existing symbols keep working at full capacity.
	mustAdd(t, b, Sell, "AA", 1, 0.5)
}

func TestSortInvariantConcurrent(t *testing.T) {
	const (
		workers = 8
		perWork = 500
	)
	b := NewOrderBook()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < perWork; i++ {
				side := Buy
				if rng.Intn(2) == 1 {
					side = Sell
				}
				mustAddConcurrent(t, b, side, "AA", int64(rng.Intn(100)+1), float64(rng.Intn(1000)))
			}
		}(int64(w))
	}
	wg.Wait()

	slot, _ := b.Snapshot("AA")
	var prev float64
	for i, o := range collect(slot.Bids) {
		if i > 0 && o.Price > prev {
			t.Fatalf("bid queue not non-increasing at %d: %v after %v", i, o.Price, prev)
		}
		prev = o.Price
	}
	for i, o := range collect(slot.Asks) {
		if i > 0 && o.Price < prev {
			t.Fatalf("ask queue not non-decreasing at %d: %v after %v", i, o.Price, prev)
		}
		prev = o.Price
	}
}

func mustAddConcurrent(t *testing.T, b *OrderBook, side Side, symbol string, qty int64, price float64) {
	if err := b.AddOrder(side, symbol, qty, price); err != nil {
		t.Errorf("AddOrder: %v", err)
	}
}

func TestNoLostInserts(t *testing.T) {
	const (
		workers = 8
		perWork = 250
	)
	b := NewOrderBook()

	var wg sync.WaitGroup
	var wantBuyQty, wantSellQty [workers]int64
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(int64(w)))
			for i := 0; i < perWork; i++ {
				qty := int64(rng.Intn(50) + 1)
				if i%2 == 0 {
					wantBuyQty[w] += qty
					mustAddConcurrent(t, b, Buy, "AA", qty, float64(rng.Intn(100)))
				} else {
					wantSellQty[w] += qty
					mustAddConcurrent(t, b, Sell, "AA", qty, float64(rng.Intn(100)))
				}
			}
		}(w)
	}
	wg.Wait()

	var wantBuy, wantSell int64
	for w := 0; w < workers; w++ {
		wantBuy += wantBuyQty[w]
		wantSell += wantSellQty[w]
	}

	slot, _ := b.Snapshot("AA")
	bids, asks := collect(slot.Bids), collect(slot.Asks)
	if got := len(bids) + len(asks); got != workers*perWork {
		t.Fatalf("expected %d reachable orders, got %d", workers*perWork, got)
	}

	var gotBuy, gotSell int64
	for _, o := range bids {
		gotBuy += o.Qty
	}
	for _, o := range asks {
		gotSell += o.Qty
	}
	if gotBuy != wantBuy || gotSell != wantSell {
		t.Errorf("quantity mismatch: bids %d/%d, asks %d/%d", gotBuy, wantBuy, gotSell, wantSell)
	}
}

func TestMatchOrdersEmptyBook(t *testing.T) {
	b := NewOrderBook()
	if r := b.MatchOrders(); len(r) != 0 {
		t.Errorf("empty book must yield no executions, got %+v", r)
	}
}

func TestSymbolsAreIndependent(t *testing.T) {
	b := NewOrderBook()
	mustAdd(t, b, Buy, "AA", 1, 100)
	mustAdd(t, b, Sell, "BB", 1, 90)

	if r := b.MatchOrders(); len(r) != 0 {
		t.Errorf("orders in different symbols must never cross, got %+v", r)
	}
}

type recordingObserver struct {
	mu       sync.Mutex
	accepted int
	executed []MatchResult
}

func (r *recordingObserver) OrderAccepted(Side, string, int64, float64) {
	r.mu.Lock()
	r.accepted++
	r.mu.Unlock()
}

func (r *recordingObserver) TradeExecuted(m MatchResult) {
	r.mu.Lock()
	r.executed = append(r.executed, m)
	r.mu.Unlock()
}

func TestObserverNotifications(t *testing.T) {
	obs := &recordingObserver{}
	b := NewOrderBookWith(16, obs)

	mustAdd(t, b, Buy, "AA", 10, 100)
	mustAdd(t, b, Sell, "AA", 10, 90)
	b.MatchOrders()

	if obs.accepted != 2 {
		t.Errorf("expected 2 accepted notifications, got %d", obs.accepted)
	}
	if len(obs.executed) != 1 || obs.executed[0].Qty != 10 {
		t.Errorf("expected 1 execution notification, got %+v", obs.executed)
	}
}
