package engine

import "github.com/shopspring/decimal"

// =============================================================================
// MONEY - Decimal currency amount
// =============================================================================

// Money is a currency amount. No rounding is applied by the engine;
// formatting and rounding are presentation concerns (see the currency
// package). The currency itself lives in settings and is display-only.
type Money struct {
	Value decimal.Decimal
}

func NewMoney(value float64) Money        { return Money{Value: decimal.NewFromFloat(value)} }
func NewMoneyFromInt(value int) Money     { return Money{Value: decimal.NewFromInt(int64(value))} }

// ParseMoney parses a decimal string. Invalid input yields zero.
func ParseMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{Value: decimal.Zero}
	}
	return Money{Value: d}
}

func (m Money) Add(o Money) Money           { return Money{Value: m.Value.Add(o.Value)} }
func (m Money) Sub(o Money) Money           { return Money{Value: m.Value.Sub(o.Value)} }
func (m Money) Neg() Money                  { return Money{Value: m.Value.Neg()} }
func (m Money) Mul(o Money) Money           { return Money{Value: m.Value.Mul(o.Value)} }
func (m Money) MulInt(n int) Money          { return Money{Value: m.Value.Mul(decimal.NewFromInt(int64(n)))} }
func (m Money) DivInt(n int) Money          { return Money{Value: m.Value.Div(decimal.NewFromInt(int64(n)))} }
func (m Money) IsZero() bool                { return m.Value.IsZero() }
func (m Money) IsNegative() bool            { return m.Value.IsNegative() }
func (m Money) IsPositive() bool            { return m.Value.IsPositive() }
func (m Money) GreaterThan(o Money) bool    { return m.Value.GreaterThan(o.Value) }
func (m Money) LessThan(o Money) bool       { return m.Value.LessThan(o.Value) }
func (m Money) Equal(o Money) bool          { return m.Value.Equal(o.Value) }

func (m Money) Float64() float64 {
	f, _ := m.Value.Float64()
	return f
}

func (m Money) String() string { return m.Value.String() }
