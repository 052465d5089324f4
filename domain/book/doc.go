// Package book implements the concurrent core of the matching engine:
// a shared order book accepting lock-free order insertions from any
// number of goroutines, crossed periodically to produce executions.
//
// Every piece of shared state is an immutable snapshot behind a single
// atomic reference (casloop.Cell). Writers never mutate in place; they
// build a replacement and publish it with one CAS, retrying on loss.
// A reader that loaded a snapshot before a swap keeps traversing a
// consistent, if stale, view; unlinked nodes stay reachable until the
// GC collects them, which is the safe-reclamation discipline here.
//
// Concurrent AddOrder calls never lose each other's orders. An insert
// racing MatchOrders on the same queue has a narrower guarantee: a
// mid-queue insert links itself by CASing its predecessor's next
// pointer, and if a crossing's whole-pair swap wins after that link
// landed behind the outgoing head, the new order is detached along
// with it. Exact conservation between submitted, resting, and executed
// quantity therefore holds only across a quiesce: stop inserting,
// then drain.
package book
