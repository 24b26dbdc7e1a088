// Package commission marks up every quote of a book side by a fixed factor.
//
// The markup is applied while the sequence is pulled; nothing is buffered.
// A commission.BookSide is itself a book.BookSide, so decorators stack and the
// multipliers compound: wrapping m1 in m2 yields quotes scaled by m1*m2.
package commission

import (
	"github.com/shopspring/decimal"

	"quotebook/internal/book"
)

// DefaultMultiplier is a 10% markup.
const DefaultMultiplier = 1.1

// BookSide wraps Inner and scales each of its quotes by Multiplier.
// The multiplier is applied as given: zero, negative and NaN are not rejected.
type BookSide struct {
	Inner      book.BookSide
	Multiplier float64
}

// New wraps inner with DefaultMultiplier.
func New(inner book.BookSide) *BookSide {
	return NewWithMultiplier(inner, DefaultMultiplier)
}

// NewWithMultiplier wraps inner with the given multiplier.
func NewWithMultiplier(inner book.BookSide, multiplier float64) *BookSide {
	return &BookSide{Inner: inner, Multiplier: multiplier}
}

// NewWithRate wraps inner with a markup expressed as a rate, so 0.10 means
// quotes are raised by 10%.
func NewWithRate(inner book.BookSide, rate decimal.Decimal) *BookSide {
	return NewWithMultiplier(inner, MultiplierForRate(rate))
}

// MultiplierForRate converts a markup rate into the factor applied to quotes.
// The addition is done in decimal so "0.1" becomes exactly the float nearest
// to 1.1.
func MultiplierForRate(rate decimal.Decimal) float64 {
	return decimal.NewFromInt(1).Add(rate).InexactFloat64()
}

// Stack wraps inner once per multiplier, innermost first. With no
// multipliers it returns inner unchanged.
func Stack(inner book.BookSide, multipliers ...float64) book.BookSide {
	b := inner
	for _, m := range multipliers {
		b = NewWithMultiplier(b, m)
	}
	return b
}

// Quotes asks Inner for a fresh sequence and returns a view of it that
// multiplies each quote as it is pulled.
func (c *BookSide) Quotes() book.Iterator {
	return &iterator{inner: c.Inner.Quotes(), multiplier: c.Multiplier}
}

type iterator struct {
	inner      book.Iterator
	multiplier float64
	done       bool
}

// Next pulls exactly one quote from the inner iterator. Once the inner
// iterator is exhausted it is not pulled again.
func (it *iterator) Next() (book.Quote, bool) {
	if it.done {
		return 0, false
	}
	q, ok := it.inner.Next()
	if !ok {
		it.done = true
		return 0, false
	}
	return q * it.multiplier, true
}
