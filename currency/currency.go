/*
Package currency formats monetary amounts for display.

Formatting and rounding live here, on the presentation side; the engine
itself never rounds. INR uses the Indian digit grouping (last three
digits, then groups of two), JPY drops decimals entirely, everything
else gets standard three-digit grouping.
*/
package currency

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Piyushhbhutoria/House-help/engine"
)

var symbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

var names = map[string]string{
	"INR": "Indian Rupee",
	"USD": "US Dollar",
	"EUR": "Euro",
	"GBP": "British Pound",
	"JPY": "Japanese Yen",
}

// Symbol returns the display symbol for a currency code, defaulting to ₹.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return "₹"
}

// Name returns the display name for a currency code.
func Name(code string) string {
	if n, ok := names[code]; ok {
		return n
	}
	return "Indian Rupee"
}

// Supported reports whether the currency code is a known one.
func Supported(code string) bool {
	_, ok := symbols[code]
	return ok
}

// Format renders an amount with the symbol and grouping conventions of
// the settings' currency.
func Format(amount engine.Money, settings engine.Settings) string {
	return Symbol(settings.Currency) + FormatNumber(amount, settings.Currency)
}

// FormatNumber renders the amount without a symbol.
func FormatNumber(amount engine.Money, code string) string {
	v := amount.Float64()
	switch code {
	case "INR":
		return indianGrouping(v, 2)
	case "JPY":
		// Yen has no minor unit.
		return groupThousands(strconv.FormatInt(int64(math.Round(v)), 10))
	default:
		return standardGrouping(v, 2)
	}
}

// Parse extracts a numeric amount from a formatted currency string.
// Unparseable input yields zero.
func Parse(s string) engine.Money {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return engine.ParseMoney(b.String())
}

func standardGrouping(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	intPart, decPart, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	grouped := groupThousands(intPart)
	if neg {
		grouped = "-" + grouped
	}
	if decPart == "" {
		return grouped
	}
	return grouped + "." + decPart
}

func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")
	if len(digits) > 3 {
		var parts []string
		for len(digits) > 3 {
			parts = append([]string{digits[len(digits)-3:]}, parts...)
			digits = digits[:len(digits)-3]
		}
		parts = append([]string{digits}, parts...)
		digits = strings.Join(parts, ",")
	}
	if neg {
		return "-" + digits
	}
	return digits
}

// indianGrouping applies the lakh/crore convention: the last three
// digits form one group, every group before that has two digits.
func indianGrouping(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	intPart, decPart, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var grouped string
	if len(intPart) <= 3 {
		grouped = intPart
	} else {
		grouped = intPart[len(intPart)-3:]
		remaining := intPart[:len(intPart)-3]
		for len(remaining) > 2 {
			grouped = remaining[len(remaining)-2:] + "," + grouped
			remaining = remaining[:len(remaining)-2]
		}
		grouped = remaining + "," + grouped
	}

	if neg {
		grouped = "-" + grouped
	}
	if decimals > 0 {
		return fmt.Sprintf("%s.%s", grouped, decPart)
	}
	return grouped
}
