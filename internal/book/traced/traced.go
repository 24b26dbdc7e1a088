package traced

import (
	"go.uber.org/zap"

	"quotebook/internal/book"
)

// BookSide wraps Inner and logs the lifecycle of every sequence it produces:
// once when the sequence is created and once when it is exhausted.
// Quotes pass through unchanged.
type BookSide struct {
	Inner  book.BookSide
	Logger *zap.Logger
	Name   string
}

func (t *BookSide) Quotes() book.Iterator {
	log := t.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("book_side", t.Name))
	log.Debug("sequence produced")
	return &iterator{inner: t.Inner.Quotes(), log: log}
}

type iterator struct {
	inner   book.Iterator
	log     *zap.Logger
	yielded int
	done    bool
}

func (it *iterator) Next() (book.Quote, bool) {
	if it.done {
		return 0, false
	}
	q, ok := it.inner.Next()
	if !ok {
		it.done = true
		it.log.Debug("sequence exhausted", zap.Int("quotes", it.yielded))
		return 0, false
	}
	it.yielded++
	return q, true
}
