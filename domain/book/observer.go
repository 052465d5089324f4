package book

// Observer receives notifications the core emits as side effects.
// Implementations own logging, metrics, or event fan-out; the book's
// correctness never depends on them. Callbacks may run concurrently
// from any goroutine driving the book.
type Observer interface {
	// OrderAccepted fires once per order, after its insertion CAS won.
	OrderAccepted(side Side, symbol string, qty int64, price float64)

	// TradeExecuted fires once per execution, after its crossing CAS won.
	TradeExecuted(m MatchResult)
}

type nopObserver struct{}

func (nopObserver) OrderAccepted(Side, string, int64, float64) {}
func (nopObserver) TradeExecuted(MatchResult)                  {}
