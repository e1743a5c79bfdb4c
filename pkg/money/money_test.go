package money_test

import (
	"math"
	"testing"

	"github.com/peydey/sdk-go/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StoresSmallestUnit(t *testing.T) {
	m, err := money.New(94.75, money.AEDCurrency)
	require.NoError(t, err)
	assert.Equal(t, int64(9475), m.Amount())
	assert.InEpsilon(t, 94.75, m.AmountFloat(), 1e-9)
	assert.Equal(t, money.AED, m.CurrencyCode())
}

func TestNew_AcceptsCodeAndString(t *testing.T) {
	byCode, err := money.New(10, money.AED)
	require.NoError(t, err)
	byString, err := money.New(10, "AED")
	require.NoError(t, err)
	assert.True(t, byCode.Equals(byString))
}

func TestNew_RejectsInvalidCurrency(t *testing.T) {
	_, err := money.New(10, "dirham")
	require.ErrorIs(t, err, money.ErrInvalidCurrency)
}

func TestNew_RejectsNonFiniteAmount(t *testing.T) {
	_, err := money.New(math.Inf(1), money.AEDCurrency)
	require.ErrorIs(t, err, money.ErrInvalidAmount)

	_, err = money.New(math.NaN(), money.AEDCurrency)
	require.ErrorIs(t, err, money.ErrInvalidAmount)
}

func TestMultiply_RoundsHalfAwayFromZero(t *testing.T) {
	// 10 fils * 0.05 = 0.5 fils, which must round up to 1 fil.
	m := money.Must(0.10, money.AEDCurrency)
	got, err := m.Multiply(0.05)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Amount())

	// 5 fils * 0.05 = 0.25 fils rounds down.
	m = money.Must(0.05, money.AEDCurrency)
	got, err = m.Multiply(0.05)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Amount())
}

func TestMultiply_RejectsNegativeFactor(t *testing.T) {
	m := money.Must(10, money.AEDCurrency)
	_, err := m.Multiply(-1)
	require.Error(t, err)
}

func TestAddSubtract(t *testing.T) {
	a := money.Must(5, money.AEDCurrency)
	b := money.Must(0.25, money.AEDCurrency)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, int64(525), sum.Amount())

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, int64(475), diff.Amount())
}

func TestAdd_RejectsMismatchedCurrencies(t *testing.T) {
	a := money.Must(5, money.AEDCurrency)
	b := money.Must(5, money.USDCurrency)
	_, err := a.Add(b)
	require.Error(t, err)
}

func TestSubtract_CanGoNegative(t *testing.T) {
	a := money.Must(1, money.AEDCurrency)
	b := money.Must(2, money.AEDCurrency)
	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.True(t, diff.IsNegative())
	assert.Equal(t, int64(100), diff.Negate().Amount())
}

func TestComparisons(t *testing.T) {
	small := money.Must(1, money.AEDCurrency)
	big := money.Must(2, money.AEDCurrency)

	lt, err := small.LessThan(big)
	require.NoError(t, err)
	assert.True(t, lt)

	gt, err := big.GreaterThan(small)
	require.NoError(t, err)
	assert.True(t, gt)

	_, err = small.LessThan(money.Must(1, money.USDCurrency))
	require.ErrorIs(t, err, money.ErrInvalidCurrency)
}

func TestZeroAndPredicates(t *testing.T) {
	z := money.Zero(money.AEDCurrency)
	assert.True(t, z.IsZero())
	assert.False(t, z.IsPositive())
	assert.False(t, z.IsNegative())
	assert.True(t, money.Must(1, money.AEDCurrency).IsPositive())
}

func TestString(t *testing.T) {
	assert.Equal(t, "94.75 AED", money.Must(94.75, money.AEDCurrency).String())
}
