// Package money provides functionality for handling monetary values.
//
// It is a value object that represents a monetary value in a specific currency.
// Invariants:
//   - Amount is always stored in the smallest currency unit (fils for AED).
//   - Currency code must be valid ISO 4217 (3 uppercase letters).
//   - All arithmetic operations require matching currencies.
//   - Fractional smallest units are rounded half away from zero.
package money

import (
	"fmt"
	"math"
	"math/big"
)

var (
	// ErrInvalidAmount is returned when an invalid amount is provided.
	ErrInvalidAmount = fmt.Errorf("invalid amount float")

	// ErrInvalidCurrency is returned when a currency code is not valid
	// or when performing operations on money with different currencies.
	ErrInvalidCurrency = fmt.Errorf("invalid currency code")
)

// Amount represents a monetary amount as an integer in the
// smallest currency unit (e.g., fils for AED).
type Amount = int64

// Code represents a currency code (e.g., "AED", "USD").
type Code string

// Common currency codes.
const (
	AED Code = "AED"
	USD Code = "USD"
)

// IsValid checks if the currency code is valid.
func (c Code) IsValid() bool {
	if len(c) != 3 {
		return false
	}
	return c[0] >= 'A' && c[0] <= 'Z' &&
		c[1] >= 'A' && c[1] <= 'Z' &&
		c[2] >= 'A' && c[2] <= 'Z'
}

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}

// ToCurrency converts a Code to a Currency with default decimals.
func (c Code) ToCurrency() Currency {
	switch c {
	case AED:
		return AEDCurrency
	case USD:
		return USDCurrency
	default:
		return Currency{Code: c, Decimals: 2}
	}
}

// Currency represents a monetary unit with its standard decimal places.
type Currency struct {
	Code     Code // 3-letter ISO 4217 code (e.g., "AED")
	Decimals int  // Number of decimal places (0-8)
}

// IsValid checks if the currency is valid.
func (c Currency) IsValid() bool {
	if c.Decimals < 0 || c.Decimals > 8 {
		return false
	}
	return c.Code.IsValid()
}

// String returns the currency code as a string.
func (c Currency) String() string { return string(c.Code) }

// Common currency instances.
var (
	AEDCurrency = Currency{Code: AED, Decimals: 2}
	USDCurrency = Currency{Code: USD, Decimals: 2}
)

// DefaultCurrency is the default currency (AED).
var DefaultCurrency = AEDCurrency

// DefaultCode is the default currency code (AED).
var DefaultCode = AED

// Money represents a monetary value in a specific currency.
// Invariants:
//   - Amount is always stored in the smallest currency unit (fils for AED).
//   - Currency must be valid (valid ISO 4217 code and valid decimal places).
//   - All arithmetic operations require matching currencies.
type Money struct {
	amount   Amount
	currency Currency
}

// Zero creates a Money object with zero amount in the specified currency.
func Zero(currency Currency) *Money {
	return &Money{amount: 0, currency: currency}
}

// New creates a new Money value object with the given amount and currency.
// The currency parameter can be either a Code, Currency, or string (e.g., "AED").
// Invariants enforced:
//   - Amount must be a finite float.
//   - Currency must be valid (valid ISO 4217 code and valid decimal places).
//   - Amount is converted to the smallest currency unit, rounding half away
//     from zero at the smallest-unit boundary.
//
// Returns Money or an error if any invariant is violated.
func New(amount float64, currency any) (*Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}

	var c Currency
	switch v := currency.(type) {
	case string:
		code := Code(v)
		if !code.IsValid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCurrency, v)
		}
		c = code.ToCurrency()
	case Code:
		c = v.ToCurrency()
	case Currency:
		c = v
	default:
		return nil, fmt.Errorf(
			"invalid currency type: %T, expected string, Code, or Currency",
			currency,
		)
	}

	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCurrency, c)
	}

	return &Money{
		amount:   convertToSmallestUnit(amount, c),
		currency: c,
	}, nil
}

// Must creates a Money object from the given amount and currency.
// Panics if any invariant is violated.
func Must(amount float64, currency any) *Money {
	m, err := New(amount, currency)
	if err != nil {
		panic(fmt.Sprintf("money.Must(%v, %v): %v", amount, currency, err))
	}
	return m
}

// NewFromSmallestUnit creates a new Money object from the smallest currency unit.
func NewFromSmallestUnit(amount int64, currency Currency) (*Money, error) {
	if !currency.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCurrency, currency)
	}
	return &Money{amount: Amount(amount), currency: currency}, nil
}

// Amount returns the amount of the Money object in the smallest currency unit.
func (m *Money) Amount() Amount {
	return m.amount
}

// AmountFloat returns the amount as a float64 in the main currency unit
// (e.g., dirhams for AED).
func (m *Money) AmountFloat() float64 {
	amount := new(big.Rat).SetInt64(int64(m.amount))
	divisor := new(big.Rat).SetFloat64(math.Pow10(m.currency.Decimals))
	result := new(big.Rat).Quo(amount, divisor)

	floatResult, _ := result.Float64()
	return floatResult
}

// Currency returns the currency of the Money object.
func (m *Money) Currency() Currency {
	return m.currency
}

// CurrencyCode returns the currency code of the Money object.
func (m *Money) CurrencyCode() Code {
	return m.currency.Code
}

// Add returns a new Money object with the sum of amounts.
// Invariants enforced:
//   - Currencies must match.
func (m *Money) Add(other *Money) (*Money, error) {
	if m.currency != other.currency {
		return nil, fmt.Errorf(
			"cannot add different currencies: %s and %s",
			m.currency.Code,
			other.currency.Code,
		)
	}
	return &Money{
		amount:   m.amount + other.amount,
		currency: m.currency,
	}, nil
}

// Subtract returns a new Money object with the difference of amounts.
// The result can be negative if the subtrahend is larger than the minuend.
// Invariants enforced:
//   - Currencies must match.
func (m *Money) Subtract(other *Money) (*Money, error) {
	if m.currency != other.currency {
		return nil, fmt.Errorf(
			"cannot subtract different currencies: %s and %s",
			m.currency.Code,
			other.currency.Code,
		)
	}
	return &Money{
		amount:   m.amount - other.amount,
		currency: m.currency,
	}, nil
}

// Multiply multiplies the Money amount by a scalar factor.
// The result is rounded half away from zero to the nearest smallest unit.
// Invariants enforced:
//   - Factor must not be negative.
//   - Result must not overflow int64.
//
// Returns a new Money object or an error if the factor is invalid or would
// cause overflow.
func (m *Money) Multiply(factor float64) (*Money, error) {
	if factor < 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("factor cannot be negative")
	}

	amount := new(big.Rat).SetInt64(int64(m.amount))
	f := new(big.Rat).SetFloat64(factor)
	result := new(big.Rat).Mul(amount, f)

	resultFloat, _ := result.Float64()
	if resultFloat > float64(math.MaxInt64) || resultFloat < float64(math.MinInt64) {
		return nil, fmt.Errorf("multiplication result would overflow")
	}

	return &Money{
		amount:   Amount(math.Round(resultFloat)),
		currency: m.currency,
	}, nil
}

// Equals checks if the current Money object is equal to another Money object.
func (m *Money) Equals(other *Money) bool {
	if m == nil || other == nil {
		return false
	}
	return m.currency == other.currency && m.amount == other.amount
}

// GreaterThan checks if the current Money object is greater than another
// Money object. Returns an error if currencies do not match.
func (m *Money) GreaterThan(other *Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, ErrInvalidCurrency
	}
	return m.amount > other.amount, nil
}

// LessThan checks if the current Money object is less than another Money
// object. Returns an error if currencies do not match.
func (m *Money) LessThan(other *Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, ErrInvalidCurrency
	}
	return m.amount < other.amount, nil
}

// IsSameCurrency checks if the current Money object has the same currency as
// another Money object.
func (m *Money) IsSameCurrency(other *Money) bool {
	return m.currency == other.currency
}

// IsPositive returns true if the Money is not nil and its amount is greater than zero.
func (m *Money) IsPositive() bool {
	return m != nil && m.amount > 0
}

// IsNegative returns true if the Money is not nil and its amount is less than zero.
func (m *Money) IsNegative() bool {
	return m != nil && m.amount < 0
}

// IsZero returns true if the Money is nil or its amount is zero.
func (m *Money) IsZero() bool {
	return m == nil || m.amount == 0
}

// Negate negates the current Money object.
func (m *Money) Negate() *Money {
	return &Money{amount: -m.amount, currency: m.currency}
}

// String returns a string representation of the Money object.
func (m *Money) String() string {
	return fmt.Sprintf("%.*f %s", m.currency.Decimals, m.AmountFloat(), m.currency.Code)
}

// convertToSmallestUnit converts a float64 amount to the smallest currency
// unit. This ensures precision by avoiding floating-point arithmetic issues.
func convertToSmallestUnit(amount float64, currency Currency) int64 {
	factor := new(big.Rat).SetFloat64(math.Pow10(currency.Decimals))
	amountRat := new(big.Rat).SetFloat64(amount)
	result := new(big.Rat).Mul(amountRat, factor)

	resultFloat, _ := result.Float64()
	return int64(math.Round(resultFloat))
}
