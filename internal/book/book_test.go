package book_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotebook/internal/book"
	"quotebook/internal/book/commission"
	"quotebook/internal/book/store"
	"quotebook/internal/errors"
)

// counter yields 1, 2, ... n and records how many times it was pulled.
type counter struct {
	n     int
	pulls *int
}

func (c counter) Quotes() book.Iterator {
	i := 0
	return book.IteratorFunc(func() (book.Quote, bool) {
		*c.pulls++
		if i >= c.n {
			return 0, false
		}
		i++
		return book.Quote(i), true
	})
}

func TestDrain(t *testing.T) {
	t.Parallel()

	pulls := 0
	got := book.Drain(counter{n: 3, pulls: &pulls}.Quotes())
	require.Equal(t, []book.Quote{1, 2, 3}, got)
	// three values and the pull that observed exhaustion
	require.Equal(t, 4, pulls)
}

func TestDrain_EmptyIsNonNil(t *testing.T) {
	t.Parallel()

	got := book.Collect(store.New(nil))
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestAll_RangesOverFreshSequences(t *testing.T) {
	t.Parallel()

	s := commission.New(store.New([]float64{100.0, 101.5, 99.25}))
	seq := book.All(s)

	var first, second []book.Quote
	for q := range seq {
		first = append(first, q)
	}
	for q := range seq {
		second = append(second, q)
	}
	assert.InDeltaSlice(t, []float64{110.0, 111.65, 109.175}, first, 1e-9)
	assert.Equal(t, first, second)
}

func TestAll_BreakStopsPulling(t *testing.T) {
	t.Parallel()

	pulls := 0
	for q := range book.All(counter{n: 100, pulls: &pulls}) {
		if q == 2 {
			break
		}
	}
	require.Equal(t, 2, pulls)
}

func TestTop(t *testing.T) {
	t.Parallel()

	top := book.Top(store.New([]float64{99.5, 99.0}))
	require.True(t, top.IsSome())
	require.Equal(t, 99.5, top.Unwrap())

	pulls := 0
	book.Top(counter{n: 10, pulls: &pulls})
	require.Equal(t, 1, pulls)

	require.True(t, book.Top(store.New(nil)).IsNone())
}

func TestParseSide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want book.Side
	}{
		{"bid", book.Bid},
		{" BIDS ", book.Bid},
		{"Buy", book.Bid},
		{"ask", book.Ask},
		{"asks", book.Ask},
		{"SELL", book.Ask},
		{"offer", book.Ask},
	}
	for _, tc := range tests {
		got, err := book.ParseSide(tc.in)
		require.NoErrorf(t, err, "input %q", tc.in)
		require.Equalf(t, tc.want, got, "input %q", tc.in)
	}

	_, err := book.ParseSide("mid")
	require.Error(t, err)
	require.True(t, errors.HasCode(err, errors.ErrCodeInvalidSide))

	_, err = book.ParseSide("")
	require.Error(t, err)
}
