package store

import "quotebook/internal/book"

// Store owns a fixed, ordered set of quotes for one side of the book.
// It has no mutation operations; the contents are set by New.
type Store struct {
	quotes []book.Quote
}

// New returns a Store holding a copy of prices, in the given order.
// A nil or empty slice yields an empty store.
func New(prices []float64) *Store {
	quotes := make([]book.Quote, len(prices))
	copy(quotes, prices)
	return &Store{quotes: quotes}
}

// Len reports the number of stored quotes.
func (s *Store) Len() int { return len(s.quotes) }

// Quotes walks the stored quotes left to right. The iterator reads the
// store's slice in place and never writes to it.
func (s *Store) Quotes() book.Iterator {
	return &iterator{quotes: s.quotes}
}

type iterator struct {
	quotes []book.Quote
	pos    int
}

func (it *iterator) Next() (book.Quote, bool) {
	if it.pos >= len(it.quotes) {
		return 0, false
	}
	q := it.quotes[it.pos]
	it.pos++
	return q, true
}
