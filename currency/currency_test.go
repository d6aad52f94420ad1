package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Piyushhbhutoria/House-help/currency"
	"github.com/Piyushhbhutoria/House-help/engine"
)

func TestFormatNumber_IndianGrouping(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "0.00"},
		{999, "999.00"},
		{1000, "1,000.00"},
		{100000, "1,00,000.00"},
		{1234567, "12,34,567.00"},
		{12345678.9, "1,23,45,678.90"},
		{-1234567, "-12,34,567.00"},
	}
	for _, tc := range cases {
		got := currency.FormatNumber(engine.NewMoney(tc.amount), "INR")
		assert.Equal(t, tc.want, got, "amount %v", tc.amount)
	}
}

func TestFormatNumber_StandardGrouping(t *testing.T) {
	assert.Equal(t, "1,234,567.00", currency.FormatNumber(engine.NewMoney(1234567), "USD"))
	assert.Equal(t, "999.50", currency.FormatNumber(engine.NewMoney(999.5), "EUR"))
	assert.Equal(t, "-1,000.00", currency.FormatNumber(engine.NewMoney(-1000), "GBP"))
}

func TestFormatNumber_YenHasNoMinorUnit(t *testing.T) {
	assert.Equal(t, "1,235", currency.FormatNumber(engine.NewMoney(1234.6), "JPY"))
	assert.Equal(t, "1,000,000", currency.FormatNumber(engine.NewMoney(1000000), "JPY"))
}

func TestFormatNumber_NegativeYen(t *testing.T) {
	// Advances exceeding base pay make negative totals legal, so the
	// sign must survive grouping intact.
	assert.Equal(t, "-123,456", currency.FormatNumber(engine.NewMoney(-123456), "JPY"))
	assert.Equal(t, "-500", currency.FormatNumber(engine.NewMoney(-500), "JPY"))
}

func TestFormat_UsesSettingsCurrency(t *testing.T) {
	settings := engine.DefaultSettings()
	assert.Equal(t, "₹1,00,000.00", currency.Format(engine.NewMoney(100000), settings))

	settings.Currency = "USD"
	assert.Equal(t, "$100,000.00", currency.Format(engine.NewMoney(100000), settings))
}

func TestSymbolAndName_DefaultToRupee(t *testing.T) {
	assert.Equal(t, "₹", currency.Symbol("XYZ"))
	assert.Equal(t, "Indian Rupee", currency.Name("XYZ"))
	assert.Equal(t, "$", currency.Symbol("USD"))
	assert.True(t, currency.Supported("JPY"))
	assert.False(t, currency.Supported("BTC"))
}

func TestParse_StripsFormatting(t *testing.T) {
	assert.True(t, currency.Parse("₹1,23,456.78").Equal(engine.NewMoney(123456.78)))
	assert.True(t, currency.Parse("$-250.00").Equal(engine.NewMoney(-250)))
	assert.True(t, currency.Parse("garbage").IsZero())
}
