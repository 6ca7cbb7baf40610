package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fenzolabs/fenzo-backend/internal/cart"
	"github.com/fenzolabs/fenzo-backend/internal/pricing"
	"github.com/fenzolabs/fenzo-backend/pkg/db/models"
)

const currencySymbol = "৳"

// CustomerInfo is the buyer detail block included in the order message.
type CustomerInfo struct {
	Name          string
	Phone         string
	Address       string
	PaymentMethod string
}

// BuildOrderMessage renders the WhatsApp order text. The layout is the one
// the seller's staff already parse by eye: numbered products, an order
// summary, then customer info.
func BuildOrderMessage(groups []cart.Group, totals pricing.Totals, customer CustomerInfo, settings *models.Settings) string {
	var b strings.Builder
	b.WriteString("*New Order from Fenzo*\n\n")

	for i, group := range groups {
		fmt.Fprintf(&b, "Product %d:\n", i+1)
		fmt.Fprintf(&b, "Name: %s\n", valueOrNA(group.Name))
		fmt.Fprintf(&b, "Code: %s\n", valueOrNA(group.Code))
		fmt.Fprintf(&b, "Price: %s\n", priceDisplay(group))
		if group.SelectedSize != "" {
			fmt.Fprintf(&b, "Size: %s\n", group.SelectedSize)
		}
		if group.SelectedColor != "" {
			fmt.Fprintf(&b, "Color: %s\n", group.SelectedColor)
		}
		fmt.Fprintf(&b, "Quantity: %d\n\n", group.Quantity)
	}

	b.WriteString("*Order Summary:*\n")
	fmt.Fprintf(&b, "Subtotal: %s%d\n", currencySymbol, totals.Subtotal)
	fmt.Fprintf(&b, "Delivery Charge: %s%d\n", currencySymbol, totals.DeliveryCharge)
	fmt.Fprintf(&b, "Grand Total: %s%d\n\n", currencySymbol, totals.GrandTotal)

	b.WriteString("*Customer Info:*\n")
	fmt.Fprintf(&b, "Name: %s\n", customer.Name)
	fmt.Fprintf(&b, "Phone: %s\n", customer.Phone)
	fmt.Fprintf(&b, "Address: %s\n", customer.Address)
	fmt.Fprintf(&b, "Payment Method: %s\n", customer.PaymentMethod)

	if totals.DeliveryCharge == 0 && settings != nil && settings.FreeDeliveryEnabled {
		b.WriteString("\n🎉 Free Delivery Applied!")
	}

	return b.String()
}

// HandoffURL builds the wa.me link that opens WhatsApp with the order text
// prefilled.
func HandoffURL(whatsAppNumber, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", whatsAppNumber, url.QueryEscape(message))
}

func priceDisplay(group cart.Group) string {
	if group.UnitPrice < group.BasePrice {
		return fmt.Sprintf("~%s%d~ %s%d", currencySymbol, group.BasePrice, currencySymbol, group.UnitPrice)
	}
	return fmt.Sprintf("%s%d", currencySymbol, group.UnitPrice)
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
