package sequence

import "sync/atomic"

// Sequencer generates strictly monotonic sequence IDs for accepted
// orders. IDs exist for logging and event correlation only; the book
// itself orders by price, not time.
type Sequencer struct {
	next atomic.Uint64
}

// New creates a sequencer starting after a given value.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next returns the next global sequence ID.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued sequence.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}
