package checkout

import (
	"fmt"
	"strings"

	"storefront/internal/cart"
)

// FormatMessage renders the order summary sent through the handoff
// channel. Output depends only on its arguments.
func FormatMessage(items []cart.LineItem, c Customer, footer string) string {
	var b strings.Builder

	b.WriteString("*New Order*\n\n")
	fmt.Fprintf(&b, "*Name:* %s\n", c.Name)
	fmt.Fprintf(&b, "*Phone:* %s\n", c.Phone)
	if c.OrderType != "" {
		fmt.Fprintf(&b, "*Order Type:* %s\n", capitalize(c.OrderType))
	}

	b.WriteString("\n*Items:*\n")
	for i, li := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, li.Dish.Name)
		fmt.Fprintf(&b, "   Qty: %d | Spice: %d/5 | ₹%s\n",
			li.SelectedQuantity,
			li.SelectedSpiceLevel,
			li.LineTotal().StringFixed(2),
		)
	}

	fmt.Fprintf(&b, "\n*Total: ₹%s*\n", cart.TotalPrice(items).StringFixed(2))

	if c.SpecialInstructions != "" {
		fmt.Fprintf(&b, "\n*Special Instructions:*\n%s\n", c.SpecialInstructions)
	}

	if footer != "" {
		fmt.Fprintf(&b, "\n%s", footer)
	}

	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
