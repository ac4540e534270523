// Package format renders report values for presentation.
//
// Rounding happens only here. Aggregation keeps full precision so that
// chained values such as per-person spend are computed from unrounded inputs.
package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nao1215/pymoli/internal/model"
)

// NotAvailable is rendered in place of an undefined quotient.
const NotAvailable = "N/A"

// ErrInvalidCurrency is returned by ParseCurrency for malformed input.
var ErrInvalidCurrency = errors.New("invalid currency string")

// printer groups thousands the way an en-US reader expects.
var printer = message.NewPrinter(language.English)

// Currency renders amount as "$1,234.56", or "-$1,234.56" when negative.
// Negative amounts that round to zero render as "$0.00".
func Currency(amount float64) string {
	if amount < 0 {
		s := printer.Sprintf("%.2f", -amount)
		// Amounts that round to zero carry no sign.
		if s == "0.00" {
			return "$" + s
		}
		return "-$" + s
	}
	if amount == 0 {
		amount = 0 // drops the sign of negative zero
	}
	return "$" + printer.Sprintf("%.2f", amount)
}

// Percent renders value with exactly two decimals and no percent sign.
func Percent(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// CurrencyOf renders a quotient as currency, or NotAvailable when undefined.
func CurrencyOf(q model.Quotient) string {
	if !q.Defined {
		return NotAvailable
	}
	return Currency(q.Value)
}

// PercentOf renders a quotient as a percentage, or NotAvailable when undefined.
func PercentOf(q model.Quotient) string {
	if !q.Defined {
		return NotAvailable
	}
	return Percent(q.Value)
}

// ParseCurrency parses a string produced by Currency back into a number.
func ParseCurrency(s string) (float64, error) {
	negative := false
	rest := strings.TrimSpace(s)
	if strings.HasPrefix(rest, "-") {
		negative = true
		rest = rest[1:]
	}

	rest, ok := strings.CutPrefix(rest, "$")
	if !ok {
		return 0, fmt.Errorf("%w: %q: missing $ sign", ErrInvalidCurrency, s)
	}
	rest = strings.ReplaceAll(rest, ",", "")

	v, err := strconv.ParseFloat(rest, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCurrency, s)
	}

	if negative {
		return -v, nil
	}
	return v, nil
}
