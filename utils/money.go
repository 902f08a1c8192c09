package utils

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is the locale product prices are shown in
var DefaultLocale = language.MustParse("id-ID")

// DefaultCurrency is the currency catalog prices are stored in
var DefaultCurrency = currency.IDR

// FormatIDR formats an amount in whole Rupiah like "Rp 150.000"
// with a non-breaking space after the symbol.
func FormatIDR(amount int64) string {
	return FormatPrice(amount, DefaultLocale, DefaultCurrency)
}

// FormatPrice formats a whole amount with the locale's digit grouping and the
// currency's narrow symbol. Catalog prices are whole units, so no fraction
// digits are shown.
func FormatPrice(amount int64, tag language.Tag, cur currency.Unit) string {
	p := message.NewPrinter(tag)

	symbol := p.Sprint(currency.NarrowSymbol(cur))

	neg := amount < 0
	if neg {
		amount = -amount
	}

	number := p.Sprintf("%d", amount)

	// Non-breaking space keeps symbol and amount on one line
	if neg {
		return fmt.Sprintf("-%s\u00a0%s", symbol, number)
	}
	return fmt.Sprintf("%s\u00a0%s", symbol, number)
}
