package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatCurrency renders value as Brazilian Real, e.g. "R$ 1.234,56". The
// symbol is followed by a plain space, not a no-break space.
func FormatCurrency(value float64) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}
	p := message.NewPrinter(language.BrazilianPortuguese)
	return sign + "R$ " + p.Sprintf("%v", number.Decimal(value, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
