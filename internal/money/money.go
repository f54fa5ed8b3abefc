// Package money formats whole-rupee amounts for display.
package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount as "₹" followed by the locale-grouped
// integer, e.g. 12999 -> "₹12,999".
func FormatINR(amount int) string {
	return printer.Sprintf("₹%d", amount)
}

// Group renders the bare grouped integer without the currency sign.
func Group(amount int) string {
	return printer.Sprintf("%d", amount)
}

// Discount returns the rounded percentage saved when price is sold
// against originalPrice. It returns 0 unless originalPrice > price > 0.
func Discount(price, originalPrice int) int {
	if originalPrice <= 0 || price <= 0 || price >= originalPrice {
		return 0
	}
	return int(math.Round((1 - float64(price)/float64(originalPrice)) * 100))
}
