package commission_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"quotebook/internal/book"
	"quotebook/internal/book/commission"
	"quotebook/internal/book/store"
	"quotebook/mocks"
)

const tolerance = 1e-9

type CommissionTestSuite struct {
	suite.Suite
}

func TestCommissionSuite(t *testing.T) {
	suite.Run(t, new(CommissionTestSuite))
}

func (suite *CommissionTestSuite) TestDefaultMultiplier() {
	s := store.New([]float64{100.0, 101.5, 99.25})
	c := commission.New(s)

	suite.Equal(commission.DefaultMultiplier, c.Multiplier)
	suite.InDeltaSlice([]float64{110.0, 111.65, 109.175}, book.Collect(c), tolerance)
}

func (suite *CommissionTestSuite) TestDoubleWrap() {
	c := commission.New(commission.New(store.New([]float64{100.0})))

	got := book.Collect(c)
	suite.Len(got, 1)
	suite.InDelta(121.0, got[0], tolerance)
}

func (suite *CommissionTestSuite) TestComposedEqualsProductOfMultipliers() {
	tests := []struct {
		name   string
		quotes []float64
		m1     float64
		m2     float64
	}{
		{"empty", nil, 1.1, 1.2},
		{"single", []float64{100}, 1.1, 1.1},
		{"mixed", []float64{0, 1, -2.5, 1e6, 3.14159}, 1.05, 0.97},
		{"large depth", []float64{99.5, 99.25, 99, 98.75, 98.5, 98.25, 98}, 1.001, 2},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			s := store.New(tc.quotes)
			nested := commission.NewWithMultiplier(commission.NewWithMultiplier(s, tc.m1), tc.m2)
			single := commission.NewWithMultiplier(s, tc.m1*tc.m2)

			got := book.Collect(nested)
			want := book.Collect(single)
			suite.Len(got, len(tc.quotes))
			suite.InDeltaSlice(want, got, tolerance*math.Max(1, maxAbs(want)))

			for i, q := range tc.quotes {
				suite.InDelta(q*tc.m1*tc.m2, got[i], tolerance*math.Max(1, math.Abs(q)))
			}
		})
	}
}

func (suite *CommissionTestSuite) TestStack() {
	s := store.New([]float64{10, 20})

	suite.Same(book.BookSide(s), commission.Stack(s))

	stacked := commission.Stack(s, 2, 3, 0.5)
	suite.InDeltaSlice([]float64{30, 60}, book.Collect(stacked), tolerance)

	outer, ok := stacked.(*commission.BookSide)
	suite.Require().True(ok)
	suite.Equal(0.5, outer.Multiplier)
}

func (suite *CommissionTestSuite) TestUnvalidatedMultipliers() {
	s := store.New([]float64{2, -4})

	suite.Equal([]float64{0, 0}, book.Collect(commission.NewWithMultiplier(s, 0)))
	suite.Equal([]float64{-2, 4}, book.Collect(commission.NewWithMultiplier(s, -1)))

	nan := book.Collect(commission.NewWithMultiplier(s, math.NaN()))
	suite.Len(nan, 2)
	for _, q := range nan {
		suite.True(math.IsNaN(q))
	}

	inf := book.Collect(commission.NewWithMultiplier(s, math.Inf(1)))
	suite.Equal([]float64{math.Inf(1), math.Inf(-1)}, inf)
}

func (suite *CommissionTestSuite) TestRate() {
	tests := []struct {
		rate     string
		expected float64
	}{
		{"0.1", 1.1},
		{"0", 1},
		{"0.0025", 1.0025},
		{"-0.05", 0.95},
	}

	for _, tc := range tests {
		suite.Run(tc.rate, func() {
			rate := decimal.RequireFromString(tc.rate)
			suite.Equal(tc.expected, commission.MultiplierForRate(rate))

			c := commission.NewWithRate(store.New([]float64{100}), rate)
			suite.Equal(tc.expected, c.Multiplier)
		})
	}
}

func (suite *CommissionTestSuite) TestProductionIsRepeatable() {
	c := commission.New(store.New([]float64{1, 2, 3}))

	first := c.Quotes()
	q, ok := first.Next()
	suite.True(ok)
	suite.InDelta(1.1, q, tolerance)

	suite.InDeltaSlice([]float64{1.1, 2.2, 3.3}, book.Drain(c.Quotes()), tolerance)
	suite.InDeltaSlice([]float64{2.2, 3.3}, book.Drain(first), tolerance)
	suite.Equal(book.Collect(c), book.Collect(c))
}

func (suite *CommissionTestSuite) TestPullsInnerOncePerNext() {
	ctrl := gomock.NewController(suite.T())

	inner := mocks.NewMockBookSide(ctrl)
	innerIt := mocks.NewMockIterator(ctrl)

	inner.EXPECT().Quotes().Return(innerIt).Times(1)
	gomock.InOrder(
		innerIt.EXPECT().Next().Return(10.0, true),
		innerIt.EXPECT().Next().Return(20.0, true),
		innerIt.EXPECT().Next().Return(0.0, false),
	)

	it := commission.NewWithMultiplier(inner, 2).Quotes()

	q, ok := it.Next()
	suite.True(ok)
	suite.Equal(20.0, q)

	q, ok = it.Next()
	suite.True(ok)
	suite.Equal(40.0, q)

	// exhaustion is observed once; later calls must not reach the inner iterator
	for range 3 {
		_, ok = it.Next()
		suite.False(ok)
	}
}

func (suite *CommissionTestSuite) TestQuotesIsLazy() {
	ctrl := gomock.NewController(suite.T())

	inner := mocks.NewMockBookSide(ctrl)
	innerIt := mocks.NewMockIterator(ctrl)
	inner.EXPECT().Quotes().Return(innerIt).Times(1)
	innerIt.EXPECT().Next().Times(0)

	// producing the sequence does not pull anything
	suite.NotNil(commission.New(inner).Quotes())
}

func maxAbs(qs []float64) float64 {
	m := 0.0
	for _, q := range qs {
		m = math.Max(m, math.Abs(q))
	}
	return m
}
