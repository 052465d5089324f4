package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"crux/domain/book"
	"crux/infra/ring"
	"crux/infra/sequence"
)

func newTestEngine(t *testing.T) (*Engine, *ring.Buffer[book.MatchResult]) {
	t.Helper()
	log := zap.NewNop()
	b := book.NewOrderBookWith(16, NewBookObserver(log))
	exec := ring.New[book.MatchResult](64)
	return NewEngine(b, sequence.New(0), exec, log), exec
}

func TestPlaceOrderAssignsSequence(t *testing.T) {
	svc, _ := newTestEngine(t)

	seq1, err := svc.PlaceOrder(book.Buy, "AA", 10, 100)
	require.NoError(t, err)
	seq2, err := svc.PlaceOrder(book.Sell, "AA", 5, 105)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), seq1)
	assert.Equal(t, uint64(2), seq2)
}

func TestPlaceOrderRejectsInvalid(t *testing.T) {
	svc, _ := newTestEngine(t)

	_, err := svc.PlaceOrder(book.Buy, "AA", 0, 100)
	require.ErrorIs(t, err, book.ErrInvalidOrder)

	_, err = svc.PlaceOrder(book.Sell, "AA", 1, -1)
	require.ErrorIs(t, err, book.ErrInvalidOrder)
}

func TestPlaceOrderCapacity(t *testing.T) {
	log := zap.NewNop()
	svc := NewEngine(book.NewOrderBookWith(1, nil), sequence.New(0), nil, log)

	_, err := svc.PlaceOrder(book.Buy, "AA", 1, 1)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(book.Buy, "BB", 1, 1)
	require.ErrorIs(t, err, book.ErrCapacityExceeded)
}

func TestMatchOnceQueuesExecutions(t *testing.T) {
	svc, exec := newTestEngine(t)

	_, err := svc.PlaceOrder(book.Buy, "AA", 10, 100)
	require.NoError(t, err)
	_, err = svc.PlaceOrder(book.Sell, "AA", 10, 90)
	require.NoError(t, err)

	results := svc.MatchOnce()
	require.Len(t, results, 1)
	assert.Equal(t, int64(10), results[0].Qty)

	m, ok := exec.Pop()
	require.True(t, ok, "execution must be queued for broadcast")
	assert.Equal(t, results[0], m)
	_, ok = exec.Pop()
	assert.False(t, ok)
}

func TestMatchOnceNilRing(t *testing.T) {
	log := zap.NewNop()
	svc := NewEngine(book.NewOrderBook(), sequence.New(0), nil, log)

	_, err := svc.PlaceOrder(book.Buy, "AA", 1, 100)
	require.NoError(t, err)
	_, err = svc.PlaceOrder(book.Sell, "AA", 1, 90)
	require.NoError(t, err)

	// Broadcasting disabled; matching still works.
	results := svc.MatchOnce()
	assert.Len(t, results, 1)
}

func TestDepthAggregatesLevels(t *testing.T) {
	svc, _ := newTestEngine(t)

	for _, o := range []struct {
		side  book.Side
		qty   int64
		price float64
	}{
		{book.Buy, 5, 100},
		{book.Buy, 3, 100},
		{book.Buy, 7, 99},
		{book.Sell, 2, 105},
		{book.Sell, 4, 106},
	} {
		_, err := svc.PlaceOrder(o.side, "AA", o.qty, o.price)
		require.NoError(t, err)
	}

	bids, asks, ok := svc.Depth("AA", 0)
	require.True(t, ok)
	assert.Equal(t, []Level{{Price: 100, Qty: 8}, {Price: 99, Qty: 7}}, bids)
	assert.Equal(t, []Level{{Price: 105, Qty: 2}, {Price: 106, Qty: 4}}, asks)
}

func TestDepthMaxLevels(t *testing.T) {
	svc, _ := newTestEngine(t)
	for i := 0; i < 5; i++ {
		_, err := svc.PlaceOrder(book.Sell, "AA", 1, float64(100+i))
		require.NoError(t, err)
	}

	_, asks, ok := svc.Depth("AA", 2)
	require.True(t, ok)
	assert.Len(t, asks, 2)
	assert.Equal(t, 100.0, asks[0].Price)
}

func TestDepthUnknownSymbol(t *testing.T) {
	svc, _ := newTestEngine(t)
	_, _, ok := svc.Depth("ZZ", 0)
	assert.False(t, ok)
}
