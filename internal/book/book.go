// Package book defines the read side of one half of an order book: a
// capability that produces a lazy, single-pass sequence of price quotes.
//
// Implementations either walk stored quotes directly (see package store) or
// wrap another BookSide and transform what it yields (see packages commission
// and traced). Wrappers re-expose BookSide, so they nest to any depth.
package book

import (
	"iter"

	"github.com/moznion/go-optional"
)

// Quote is a single price value. It carries no currency or scale.
type Quote = float64

// Iterator is a forward-only cursor over quotes.
//
// Next returns the next quote and true, or false once the underlying source
// is exhausted. After the first false every later call returns false.
type Iterator interface {
	Next() (Quote, bool)
}

// BookSide is anything able to produce a lazy sequence of quotes.
//
// Quotes may be called any number of times. Every call returns a fresh
// Iterator that does not share position with iterators returned earlier, and
// consuming it has no effect on the receiver.
type BookSide interface {
	Quotes() Iterator
}

// IteratorFunc adapts a plain function to the Iterator interface.
type IteratorFunc func() (Quote, bool)

func (f IteratorFunc) Next() (Quote, bool) { return f() }

// Drain pulls it until exhaustion and returns the quotes in the order they
// were yielded.
func Drain(it Iterator) []Quote {
	out := make([]Quote, 0)
	for {
		q, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, q)
	}
}

// Collect drains a fresh sequence produced by b.
func Collect(b BookSide) []Quote {
	return Drain(b.Quotes())
}

// All returns a range-over-func view of b. Each range loop over the result
// asks b for a new Iterator; breaking out of the loop stops pulling.
func All(b BookSide) iter.Seq[Quote] {
	return func(yield func(Quote) bool) {
		it := b.Quotes()
		for {
			q, ok := it.Next()
			if !ok || !yield(q) {
				return
			}
		}
	}
}

// Top returns the first quote of b, which for a sorted side is the best
// price. It pulls a single element and returns None for an empty side.
func Top(b BookSide) optional.Option[Quote] {
	q, ok := b.Quotes().Next()
	if !ok {
		return optional.None[Quote]()
	}
	return optional.Some(q)
}
