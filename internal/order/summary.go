// Package order serializes cart contents into the human-readable
// message handed to the WhatsApp checkout collaborator.
package order

import (
	"fmt"
	"strings"

	"nestcrm-web/internal/cart"
	"nestcrm-web/internal/money"
)

// Summary renders the deterministic order listing: one line per item
// as "- {title}: ₹{price}" with grouped digits, then the total and a
// closing line. Item order follows cart insertion order.
func Summary(c cart.Cart) string {
	lines := make([]string, 0, len(c.Items()))
	for _, item := range c.Items() {
		lines = append(lines, fmt.Sprintf("- %s: %s", item.Title, money.FormatINR(item.Price)))
	}

	return fmt.Sprintf("*New Data Order Request*\n\nItems in cart:\n%s\n\nTotal: %s\n\nI'd like to proceed with my purchase.",
		strings.Join(lines, "\n"), money.FormatINR(c.Total()))
}
